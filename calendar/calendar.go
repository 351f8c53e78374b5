// Package calendar is the Gregorian calendar service behind the date
// helpers and formatters: component extraction, date arithmetic and
// comparison in a configurable location.
package calendar

import (
	"time"

	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/locale"
)

// Calendar is an immutable Gregorian calendar configuration.
type Calendar struct {
	location     *time.Location
	locale       locale.Locale
	firstWeekday time.Weekday
	minDays      int
	clock        func() time.Time
}

// Option configures a Calendar.
type Option = internal.Option[Calendar]

// New returns a calendar using the local time zone and the current locale,
// then applies options in order.
func New(options ...Option) Calendar {
	loc := locale.Current()
	c := Calendar{
		location:     time.Local,
		locale:       loc,
		firstWeekday: loc.FirstWeekday(),
		minDays:      loc.MinimumDaysInFirstWeek(),
		clock:        time.Now,
	}

	internal.ApplyOptions(&c, options...)

	return c
}

// Current returns the calendar of the running process.
func Current() Calendar {
	return New()
}

// WithLocation sets the time zone. A nil location means UTC.
func WithLocation(loc *time.Location) Option {
	return internal.OptionFunc[Calendar](func(c *Calendar) {
		if loc == nil {
			loc = time.UTC
		}
		c.location = loc
	})
}

// WithLocale sets the locale along with its week conventions. Options
// applied afterwards can still override the week conventions.
func WithLocale(l locale.Locale) Option {
	return internal.OptionFunc[Calendar](func(c *Calendar) {
		c.locale = l
		c.firstWeekday = l.FirstWeekday()
		c.minDays = l.MinimumDaysInFirstWeek()
	})
}

// WithFirstWeekday sets the first day of the week.
func WithFirstWeekday(day time.Weekday) Option {
	return internal.OptionFunc[Calendar](func(c *Calendar) {
		c.firstWeekday = ((day % 7) + 7) % 7
	})
}

// WithMinimumDaysInFirstWeek sets how many days the first week of a year or
// month must have, clamped to 1...7.
func WithMinimumDaysInFirstWeek(days int) Option {
	return internal.OptionFunc[Calendar](func(c *Calendar) {
		c.minDays = min(max(days, 1), 7)
	})
}

// WithClock replaces the source of the current time.
func WithClock(clock func() time.Time) Option {
	return internal.OptionFunc[Calendar](func(c *Calendar) {
		if clock == nil {
			clock = time.Now
		}
		c.clock = clock
	})
}

func (c Calendar) loc() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Location returns the calendar time zone.
func (c Calendar) Location() *time.Location { return c.loc() }

// Locale returns the calendar locale.
func (c Calendar) Locale() locale.Locale { return c.locale }

// FirstWeekday returns the first day of the week.
func (c Calendar) FirstWeekday() time.Weekday { return c.firstWeekday }

// MinimumDaysInFirstWeek returns the first-week threshold.
func (c Calendar) MinimumDaysInFirstWeek() int {
	if c.minDays == 0 {
		return 1
	}
	return c.minDays
}

// Now returns the current time in the calendar's location.
func (c Calendar) Now() time.Time {
	if c.clock == nil {
		return time.Now().In(c.loc())
	}
	return c.clock().In(c.loc())
}

// Component returns the value of a single unit for t.
func (c Calendar) Component(unit Unit, t time.Time) int {
	t = t.In(c.loc())
	year, month, day := t.Date()

	switch unit {
	case Era:
		if year > 0 {
			return 1
		}
		return 0
	case Year:
		if year > 0 {
			return year
		}
		return 1 - year
	case Month:
		return int(month)
	case Day:
		return day
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Nanosecond:
		return t.Nanosecond()
	case Weekday:
		return int(t.Weekday()) + 1
	case WeekdayOrdinal:
		return (day-1)/7 + 1
	case Quarter:
		return (int(month)-1)/3 + 1
	case WeekOfMonth:
		return c.weekOfMonth(t)
	case WeekOfYear:
		week, _ := c.weekOfYear(t)
		return week
	case YearForWeekOfYear:
		_, weekYear := c.weekOfYear(t)
		return weekYear
	}

	return 0
}

// Components returns the requested component values of t.
func (c Calendar) Components(units Unit, t time.Time) Components {
	var out Components
	units.Each(func(u Unit) {
		if u.index() < unitCount {
			out.Set(u, c.Component(u, t))
		}
	})
	return out
}

// Date builds a time from components. Unset fields default to the start of
// their range. It reports false for out-of-range weekday, quarter, week or
// ordinal values.
func (c Calendar) Date(comps Components) (time.Time, bool) {
	loc := c.loc()

	if wd, ok := comps.Value(Weekday); ok && (wd < 1 || wd > 7) {
		return time.Time{}, false
	}
	if q, ok := comps.Value(Quarter); ok && (q < 1 || q > 4) {
		return time.Time{}, false
	}
	if w, ok := comps.Value(WeekOfYear); ok && (w < 1 || w > 53) {
		return time.Time{}, false
	}
	if o, ok := comps.Value(WeekdayOrdinal); ok && (o < 1 || o > 5) {
		return time.Time{}, false
	}

	hour := comps.Get(Hour)
	minute := comps.Get(Minute)
	second := comps.Get(Second)
	nanos := comps.Get(Nanosecond)

	if weekYear, ok := comps.Value(YearForWeekOfYear); ok && comps.Has(WeekOfYear) && !comps.Has(Year) {
		start := c.firstWeekStart(weekYear) + int64(comps.Get(WeekOfYear)-1)*7
		if wd, ok := comps.Value(Weekday); ok {
			start += int64((wd - 1 - int(c.firstWeekday) + 7) % 7)
		}
		y, m, d := fromCivil(start)
		return time.Date(y, m, d, hour, minute, second, nanos, loc), true
	}

	year := 1
	if y, ok := comps.Value(Year); ok {
		year = y
		if era, ok := comps.Value(Era); ok && era == 0 {
			year = 1 - y
		}
	}

	month := 1
	if m, ok := comps.Value(Month); ok {
		month = m
	} else if q, ok := comps.Value(Quarter); ok {
		month = (q-1)*3 + 1
	}

	day := 1
	if d, ok := comps.Value(Day); ok {
		day = d
	} else if wd, ok := comps.Value(Weekday); ok {
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		offset := (wd - 1 - int(first.Weekday()) + 7) % 7
		switch {
		case comps.Has(WeekdayOrdinal):
			day = 1 + offset + (comps.Get(WeekdayOrdinal)-1)*7
		case comps.Has(WeekOfMonth):
			weekStart := 1 - (int(first.Weekday())-int(c.firstWeekday)+7)%7
			if 7-(1-weekStart) < c.MinimumDaysInFirstWeek() {
				weekStart += 7
			}
			day = weekStart + (comps.Get(WeekOfMonth)-1)*7 + (wd-1-int(c.firstWeekday)+7)%7
		default:
			day = 1 + offset
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc), true
}

// IsSame reports whether a and b fall in the same granularity unit, e.g.
// the same day or the same month of the same year.
func (c Calendar) IsSame(a, b time.Time, granularity Unit) bool {
	switch granularity {
	case Nanosecond:
		return a.Equal(b)
	case Weekday:
		return c.Component(Weekday, a) == c.Component(Weekday, b)
	case Era:
		return c.Component(Era, a) == c.Component(Era, b)
	}

	startA, okA := c.StartOf(granularity, a)
	startB, okB := c.StartOf(granularity, b)
	return okA && okB && startA.Equal(startB)
}

// IsInToday reports whether t falls on the current day.
func (c Calendar) IsInToday(t time.Time) bool {
	return c.IsSame(t, c.Now(), Day)
}

// IsInYesterday reports whether t falls on the day before today.
func (c Calendar) IsInYesterday(t time.Time) bool {
	return c.isDayOffset(t, -1)
}

// IsInTomorrow reports whether t falls on the day after today.
func (c Calendar) IsInTomorrow(t time.Time) bool {
	return c.isDayOffset(t, 1)
}

func (c Calendar) isDayOffset(t time.Time, days int) bool {
	return civil(t.In(c.loc()))-civil(c.Now()) == int64(days)
}

// IsInWeekend reports whether t is a Saturday or Sunday.
func (c Calendar) IsInWeekend(t time.Time) bool {
	wd := t.In(c.loc()).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
