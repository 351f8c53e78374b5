package calendar

import (
	"time"

	"github.com/jinzhu/now"

	"yoth.dev/onekit-go/internal"
)

// MatchingPolicy decides what SetTime does when the requested wall clock
// time does not exist, e.g. inside a daylight saving gap.
type MatchingPolicy int

const (
	NextTime MatchingPolicy = iota
	NextTimePreservingSmallerComponents
	PreviousTimePreservingSmallerComponents
	Strict
)

// RepeatedTimePolicy picks between the two instants of a repeated wall clock
// time.
type RepeatedTimePolicy int

const (
	First RepeatedTimePolicy = iota
	Last
)

// Matching holds the policies used by SetTime.
type Matching struct {
	Policy   MatchingPolicy
	Repeated RepeatedTimePolicy
}

// MatchingOption configures SetTime.
type MatchingOption = internal.Option[Matching]

// WithMatchingPolicy sets the policy for nonexistent times.
func WithMatchingPolicy(p MatchingPolicy) MatchingOption {
	return internal.OptionFunc[Matching](func(m *Matching) {
		m.Policy = p
	})
}

// WithRepeatedTimePolicy sets the policy for repeated times.
func WithRepeatedTimePolicy(p RepeatedTimePolicy) MatchingOption {
	return internal.OptionFunc[Matching](func(m *Matching) {
		m.Repeated = p
	})
}

// Add returns t with value units added. Month and year arithmetic clamps the
// day to the end of the target month. With wrapping, the unit rolls over
// inside its range without touching larger units. It reports false for units
// that cannot be added.
func (c Calendar) Add(unit Unit, value int, t time.Time, wrapping bool) (time.Time, bool) {
	t = t.In(c.loc())

	if wrapping {
		if out, ok := c.addWrapping(unit, value, t); ok {
			return out, true
		}
	}

	switch unit {
	case Year, YearForWeekOfYear:
		return addMonths(t, value*12), true
	case Quarter:
		return addMonths(t, value*3), true
	case Month:
		return addMonths(t, value), true
	case WeekOfYear, WeekOfMonth, WeekdayOrdinal:
		return t.AddDate(0, 0, value*7), true
	case Day, Weekday:
		return t.AddDate(0, 0, value), true
	case Hour:
		return t.Add(time.Duration(value) * time.Hour), true
	case Minute:
		return t.Add(time.Duration(value) * time.Minute), true
	case Second:
		return t.Add(time.Duration(value) * time.Second), true
	case Nanosecond:
		return t.Add(time.Duration(value)), true
	}

	return time.Time{}, false
}

func (c Calendar) addWrapping(unit Unit, value int, t time.Time) (time.Time, bool) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	nanos := t.Nanosecond()
	loc := c.loc()

	switch unit {
	case Month:
		m := time.Month(floorMod(int(month)-1+value, 12) + 1)
		return time.Date(year, m, min(day, daysIn(year, m)), hour, minute, second, nanos, loc), true
	case Day:
		d := floorMod(day-1+value, daysIn(year, month)) + 1
		return time.Date(year, month, d, hour, minute, second, nanos, loc), true
	case Weekday:
		idx := (int(t.Weekday()) - int(c.firstWeekday) + 7) % 7
		return t.AddDate(0, 0, floorMod(idx+value, 7)-idx), true
	case Hour:
		return time.Date(year, month, day, floorMod(hour+value, 24), minute, second, nanos, loc), true
	case Minute:
		return time.Date(year, month, day, hour, floorMod(minute+value, 60), second, nanos, loc), true
	case Second:
		return time.Date(year, month, day, hour, minute, floorMod(second+value, 60), nanos, loc), true
	case Nanosecond:
		return time.Date(year, month, day, hour, minute, second, floorMod(nanos+value, int(time.Second)), loc), true
	}

	return time.Time{}, false
}

// Set returns t with a single component replaced, keeping smaller
// components. It reports false for out-of-range values and unsupported
// units.
func (c Calendar) Set(unit Unit, value int, t time.Time) (time.Time, bool) {
	t = t.In(c.loc())
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	nanos := t.Nanosecond()
	loc := c.loc()

	switch unit {
	case Year:
		if value < 1 {
			return time.Time{}, false
		}
		return time.Date(value, month, min(day, daysIn(value, month)), hour, minute, second, nanos, loc), true
	case Month:
		if value < 1 || value > 12 {
			return time.Time{}, false
		}
		m := time.Month(value)
		return time.Date(year, m, min(day, daysIn(year, m)), hour, minute, second, nanos, loc), true
	case Day:
		if value < 1 || value > daysIn(year, month) {
			return time.Time{}, false
		}
		return time.Date(year, month, value, hour, minute, second, nanos, loc), true
	case Hour:
		if value < 0 || value > 23 {
			return time.Time{}, false
		}
		return time.Date(year, month, day, value, minute, second, nanos, loc), true
	case Minute:
		if value < 0 || value > 59 {
			return time.Time{}, false
		}
		return time.Date(year, month, day, hour, value, second, nanos, loc), true
	case Second:
		if value < 0 || value > 59 {
			return time.Time{}, false
		}
		return time.Date(year, month, day, hour, minute, value, nanos, loc), true
	case Nanosecond:
		if value < 0 || value >= int(time.Second) {
			return time.Time{}, false
		}
		return time.Date(year, month, day, hour, minute, second, value, loc), true
	case Weekday:
		if value < 1 || value > 7 {
			return time.Time{}, false
		}
		from := (int(t.Weekday()) - int(c.firstWeekday) + 7) % 7
		to := (value - 1 - int(c.firstWeekday) + 7) % 7
		return t.AddDate(0, 0, to-from), true
	}

	return time.Time{}, false
}

// SetTime returns the instant on t's day with the given wall clock time.
func (c Calendar) SetTime(t time.Time, hour, minute, second int, options ...MatchingOption) (time.Time, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, false
	}

	matching := Matching{}
	internal.ApplyOptions(&matching, options...)

	loc := c.loc()
	year, month, day := t.In(loc).Date()
	candidate := time.Date(year, month, day, hour, minute, second, 0, loc)

	sameWall := func(other time.Time) bool {
		return other.Hour() == hour && other.Minute() == minute && other.Second() == second
	}

	if !sameWall(candidate) {
		if matching.Policy == Strict {
			return time.Time{}, false
		}
		return skipGap(candidate, time.Date(year, month, day, hour, minute, second, 0, time.UTC), matching.Policy), true
	}

	switch matching.Repeated {
	case Last:
		if later := candidate.Add(time.Hour); sameWall(later) {
			return later, true
		}
	default:
		if earlier := candidate.Add(-time.Hour); sameWall(earlier) {
			return earlier, true
		}
	}

	return candidate, true
}

// skipGap resolves a wall clock time that a forward transition skipped.
// candidate is what time.Date normalized it to and wall is the requested
// wall clock read as UTC.
func skipGap(candidate, wall time.Time, policy MatchingPolicy) time.Time {
	loc := candidate.Location()
	start, end := candidate.ZoneBounds()

	got := time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
		candidate.Hour(), candidate.Minute(), candidate.Second(), 0, time.UTC)
	transition := start
	if got.Before(wall) {
		transition = end
	}
	if transition.IsZero() {
		return candidate
	}

	_, before := transition.Add(-time.Second).Zone()
	_, after := transition.Zone()

	switch policy {
	case NextTimePreservingSmallerComponents:
		return wall.Add(-time.Duration(before) * time.Second).In(loc)
	case PreviousTimePreservingSmallerComponents:
		return wall.Add(-time.Duration(after) * time.Second).In(loc)
	default:
		return transition.In(loc)
	}
}

// StartOfDay returns the first moment of t's day.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	start, _ := c.StartOf(Day, t)
	return start
}

// StartOf returns the first moment of the unit containing t. It reports
// false for units without a natural start.
func (c Calendar) StartOf(unit Unit, t time.Time) (time.Time, bool) {
	config := &now.Config{
		WeekStartDay: c.firstWeekday,
		TimeLocation: c.loc(),
	}
	n := config.With(t.In(c.loc()))

	switch unit {
	case Year, YearForWeekOfYear:
		return n.BeginningOfYear(), true
	case Quarter:
		return n.BeginningOfQuarter(), true
	case Month:
		return n.BeginningOfMonth(), true
	case WeekOfYear, WeekOfMonth:
		return n.BeginningOfWeek(), true
	case Day:
		return n.BeginningOfDay(), true
	case Hour:
		return n.BeginningOfHour(), true
	case Minute:
		return n.BeginningOfMinute(), true
	case Second:
		return n.Time.Truncate(time.Second), true
	}

	return time.Time{}, false
}

// ComponentsBetween returns the difference from one time to another,
// expressed in the given units, largest first. Negative intervals produce
// negative values.
func (c Calendar) ComponentsBetween(units Unit, from, to time.Time) Components {
	loc := c.loc()
	from, to = from.In(loc), to.In(loc)

	negative := to.Before(from)
	if negative {
		from, to = to, from
	}

	var out Components
	cursor := from

	if units.Contains(Era) {
		out.Set(Era, c.Component(Era, to)-c.Component(Era, from))
	}

	for _, s := range []struct {
		unit Unit
		step int
	}{
		{Year, 12},
		{Quarter, 3},
		{Month, 1},
	} {
		if units.Contains(s.unit) {
			n := wholeMonths(cursor, to) / s.step
			cursor = addMonths(cursor, n*s.step)
			out.Set(s.unit, n)
		}
	}

	for _, u := range []Unit{WeekOfYear, WeekOfMonth} {
		if units.Contains(u) {
			n := wholeDays(cursor, to) / 7
			cursor = cursor.AddDate(0, 0, n*7)
			out.Set(u, n)
		}
	}

	if units.Contains(Day) {
		n := wholeDays(cursor, to)
		cursor = cursor.AddDate(0, 0, n)
		out.Set(Day, n)
	}

	for _, d := range []struct {
		unit Unit
		size time.Duration
	}{
		{Hour, time.Hour},
		{Minute, time.Minute},
		{Second, time.Second},
		{Nanosecond, time.Nanosecond},
	} {
		if units.Contains(d.unit) {
			n := to.Sub(cursor) / d.size
			cursor = cursor.Add(n * d.size)
			out.Set(d.unit, int(n))
		}
	}

	if negative {
		return out.Negated()
	}
	return out
}

// DaysInMonth returns the number of days in t's month.
func (c Calendar) DaysInMonth(t time.Time) int {
	year, month, _ := t.In(c.loc()).Date()
	return daysIn(year, month)
}

func (c Calendar) weekOfMonth(t time.Time) int {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.loc())
	offset := (int(first.Weekday()) - int(c.firstWeekday) + 7) % 7
	week := (day - 1 + offset) / 7
	if 7-offset >= c.MinimumDaysInFirstWeek() {
		week++
	}
	return week
}

func (c Calendar) weekOfYear(t time.Time) (week, weekYear int) {
	weekYear = t.Year()
	day := civil(t)

	start := c.firstWeekStart(weekYear)
	if day < start {
		weekYear--
		start = c.firstWeekStart(weekYear)
	} else if next := c.firstWeekStart(weekYear + 1); day >= next {
		return 1, weekYear + 1
	}

	return int((day-start)/7) + 1, weekYear
}

// firstWeekStart returns the civil day number on which week 1 of year starts.
func (c Calendar) firstWeekStart(year int) int64 {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := int64((int(jan1.Weekday()) - int(c.firstWeekday) + 7) % 7)
	base := civil(jan1)
	if 7-offset >= int64(c.MinimumDaysInFirstWeek()) {
		return base - offset
	}
	return base + 7 - offset
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	total := int(month) - 1 + n
	y := year + floorDiv(total, 12)
	m := time.Month(floorMod(total, 12) + 1)

	return time.Date(y, m, min(day, daysIn(y, m)), hour, minute, second, t.Nanosecond(), t.Location())
}

// wholeMonths counts complete months from a to b, a not after b.
func wholeMonths(a, b time.Time) int {
	n := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	for n > 0 && addMonths(a, n).After(b) {
		n--
	}
	return max(n, 0)
}

// wholeDays counts complete calendar days from a to b, a not after b.
func wholeDays(a, b time.Time) int {
	n := int(civil(b) - civil(a))
	for n > 0 && a.AddDate(0, 0, n).After(b) {
		n--
	}
	return max(n, 0)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// civil returns the day number of t's wall clock date, counted from
// 1970-01-01.
func civil(t time.Time) int64 {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func fromCivil(day int64) (int, time.Month, int) {
	return time.Unix(day*86400, 0).UTC().Date()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
