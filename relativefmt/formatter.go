// Package relativefmt describes a date relative to another, as in "in 2 days"
// or "yesterday".
package relativefmt

import (
	"strings"
	"time"

	"github.com/divan/num2words"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/locale"
)

// Style selects how units are labelled.
type Style int

const (
	Full Style = iota
	SpellOut
	Short
	Abbreviated
)

var styleNames = [...]string{"full", "spellOut", "short", "abbreviated"}

func (s Style) String() string {
	if s < Full || s > Abbreviated {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle looks a units style up by name, ignoring case.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), true
		}
	}
	return Full, false
}

// Phrasing selects numeric phrases ("in 1 day") or named ones ("tomorrow")
// where a name exists.
type Phrasing int

const (
	Numeric Phrasing = iota
	Named
)

func (s Phrasing) String() string {
	if s == Named {
		return "named"
	}
	return "numeric"
}

// ParseDateTimeStyle looks a date-time style up by name, ignoring case.
func ParseDateTimeStyle(name string) (Phrasing, bool) {
	switch strings.ToLower(name) {
	case "numeric":
		return Numeric, true
	case "named":
		return Named, true
	}
	return Numeric, false
}

// Formatter produces relative phrases. A Formatter is not safe for
// concurrent use.
type Formatter struct {
	cal           calendar.Calendar
	locale        locale.Locale
	unitsStyle    Style
	dateTimeStyle Phrasing
}

// Option configures a Formatter.
type Option = internal.Option[Formatter]

// New returns a numeric, full style formatter on the current calendar, then
// applies options in order.
func New(options ...Option) *Formatter {
	cal := calendar.Current()
	f := &Formatter{cal: cal, locale: cal.Locale()}
	f.Apply(options...)
	return f
}

// Apply applies options in order.
func (f *Formatter) Apply(options ...Option) {
	internal.ApplyOptions(f, options...)
}

// Calendar sets the calendar that measures the distance between dates.
func Calendar(c calendar.Calendar) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetCalendar(c) })
}

// Locale sets the locale used for number grouping.
func Locale(l locale.Locale) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetLocale(l) })
}

// UnitsStyle sets how unit names are written, e.g. "in 2 days" or "in 2d".
func UnitsStyle(s Style) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetUnitsStyle(s) })
}

// DateTimeStyle chooses between numeric phrases and named ones such as
// "yesterday".
func DateTimeStyle(s Phrasing) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetDateTimeStyle(s) })
}

// Custom wraps an arbitrary change to the formatter.
func Custom(effect func(*Formatter)) Option {
	return internal.Make(effect)
}

// SetCalendar sets the calendar that measures the distance between dates.
func (f *Formatter) SetCalendar(c calendar.Calendar) { f.cal = c }

// SetLocale sets the locale used for number grouping.
func (f *Formatter) SetLocale(l locale.Locale) { f.locale = l }

// SetUnitsStyle sets how unit names are written.
func (f *Formatter) SetUnitsStyle(s Style) { f.unitsStyle = s }

// SetDateTimeStyle chooses between numeric and named phrases.
func (f *Formatter) SetDateTimeStyle(s Phrasing) { f.dateTimeStyle = s }

// Calendar returns the calendar that measures the distance between dates.
func (f *Formatter) Calendar() calendar.Calendar { return f.cal }

// Locale returns the locale used for number grouping.
func (f *Formatter) Locale() locale.Locale { return f.locale }

// UnitsStyle returns how unit names are written.
func (f *Formatter) UnitsStyle() Style { return f.unitsStyle }

// DateTimeStyle returns whether named phrases are used.
func (f *Formatter) DateTimeStyle() Phrasing { return f.dateTimeStyle }

const measuredUnits = calendar.Year | calendar.Month | calendar.WeekOfMonth |
	calendar.Day | calendar.Hour | calendar.Minute | calendar.Second

// String describes date relative to reference using the largest calendar
// unit in which they differ.
func (f *Formatter) String(date, reference time.Time) string {
	return f.phrase(f.cal.ComponentsBetween(measuredUnits, reference, date))
}

// StringFromDuration describes the instant d away from now.
func (f *Formatter) StringFromDuration(d time.Duration) string {
	now := f.cal.Now()
	return f.String(now.Add(d), now)
}

// StringFromComponents describes the largest non-zero component, e.g.
// {day: -2} as "2 days ago".
func (f *Formatter) StringFromComponents(c calendar.Components) string {
	return f.phrase(c)
}

func (f *Formatter) phrase(c calendar.Components) string {
	for _, label := range labels {
		v := c.Get(label.unit)
		if label.unit == calendar.WeekOfMonth && v == 0 {
			v = c.Get(calendar.WeekOfYear)
		}
		if v != 0 {
			return f.describe(label, v)
		}
	}

	if f.dateTimeStyle == Named {
		return "now"
	}
	return "in " + f.quantity(labels[len(labels)-1], 0)
}

func (f *Formatter) describe(label unitLabel, v int) string {
	if f.dateTimeStyle == Named && (v == 1 || v == -1) {
		if name, ok := label.named(v, f.unitsStyle); ok {
			return name
		}
	}

	if v < 0 {
		return f.quantity(label, -v) + " ago"
	}
	return "in " + f.quantity(label, v)
}

func (f *Formatter) quantity(label unitLabel, n int) string {
	number := f.locale.FormatInt(int64(n))

	switch f.unitsStyle {
	case Abbreviated:
		return number + label.abbreviated
	case Short:
		if label.unit == calendar.Day {
			break
		}
		return number + " " + label.short
	case SpellOut:
		number = num2words.Convert(n)
	}

	if n == 1 {
		return number + " " + label.full
	}
	return number + " " + label.full + "s"
}

type unitLabel struct {
	unit        calendar.Unit
	full        string
	short       string
	abbreviated string
}

var labels = []unitLabel{
	{calendar.Year, "year", "yr.", "y"},
	{calendar.Month, "month", "mo.", "mo"},
	{calendar.WeekOfMonth, "week", "wk.", "w"},
	{calendar.Day, "day", "day", "d"},
	{calendar.Hour, "hour", "hr.", "h"},
	{calendar.Minute, "minute", "min.", "m"},
	{calendar.Second, "second", "sec.", "s"},
}

// named returns phrases such as "tomorrow" or "last week" for a value of
// plus or minus one. Clock units have no names.
func (l unitLabel) named(v int, style Style) (string, bool) {
	if l.unit == calendar.Day {
		if v > 0 {
			return "tomorrow", true
		}
		return "yesterday", true
	}

	switch l.unit {
	case calendar.Hour, calendar.Minute, calendar.Second:
		return "", false
	}

	word := l.full
	if style == Short || style == Abbreviated {
		word = l.short
	}
	if v > 0 {
		return "next " + word, true
	}
	return "last " + word, true
}
