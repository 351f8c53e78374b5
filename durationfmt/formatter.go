// Package durationfmt renders calendar intervals such as "3 days, 4 hours".
package durationfmt

import (
	"strings"
	"time"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/internal"
)

// Unit is a set of calendar units a duration may be expressed in.
type Unit = calendar.Unit

const (
	Year   = calendar.Year
	Month  = calendar.Month
	Week   = calendar.WeekOfMonth
	Day    = calendar.Day
	Hour   = calendar.Hour
	Minute = calendar.Minute
	Second = calendar.Second

	supportedUnits = Year | Month | Week | Day | Hour | Minute | Second

	// DefaultUnits is the allowed set of a new formatter.
	DefaultUnits = Year | Month | Day | Hour | Minute | Second
)

// Style selects how units are labelled.
type Style int

const (
	Positional Style = iota
	Abbreviated
	Short
	Full
	SpellOut
	Brief
)

var styleNames = [...]string{"positional", "abbreviated", "short", "full", "spellOut", "brief"}

func (s Style) String() string {
	if s < Positional || s > Brief {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle looks a style up by name, ignoring case.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), true
		}
	}
	return Positional, false
}

// ZeroBehavior controls which zero valued units are shown.
type ZeroBehavior uint

const (
	// Default drops every zero unit for labelled styles and leading zero
	// units for the positional style.
	Default      ZeroBehavior = 0
	DropLeading  ZeroBehavior = 1 << 0
	DropMiddle   ZeroBehavior = 1 << 1
	DropTrailing ZeroBehavior = 1 << 2
	DropAll      ZeroBehavior = DropLeading | DropMiddle | DropTrailing
	// Pad zero-pads the first positional field.
	Pad ZeroBehavior = 1 << 3
	// DropNone keeps every zero unit.
	DropNone ZeroBehavior = 1 << 4
)

// Formatter renders intervals. A Formatter is not safe for concurrent use.
type Formatter struct {
	cal          calendar.Calendar
	allowed      Unit
	fractional   bool
	collapses    bool
	approximate  bool
	remaining    bool
	maxUnitCount int
	style        Style
	zero         ZeroBehavior
}

// Option configures a Formatter.
type Option = internal.Option[Formatter]

// New returns a positional formatter over DefaultUnits on the current
// calendar, then applies options in order.
func New(options ...Option) *Formatter {
	f := &Formatter{
		cal:     calendar.Current(),
		allowed: DefaultUnits,
	}
	f.Apply(options...)
	return f
}

// Apply applies options in order.
func (f *Formatter) Apply(options ...Option) {
	internal.ApplyOptions(f, options...)
}

// AllowedUnits sets the units output may use. Larger units are expressed
// in the largest allowed one, e.g. "76 hours" with only Hour allowed.
func AllowedUnits(units Unit) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetAllowedUnits(units) })
}

// AllowsFractionalUnits shows the remainder of the smallest unit as a
// fraction, e.g. "1.5 minutes", instead of dropping it.
func AllowsFractionalUnits(enabled bool) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetAllowsFractionalUnits(enabled) })
}

// Calendar sets the calendar that measures intervals and supplies the locale.
func Calendar(c calendar.Calendar) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetCalendar(c) })
}

// CollapsesLargestUnit folds a largest unit of one into the next unit,
// e.g. "65 seconds" rather than "1 minute, 5 seconds".
func CollapsesLargestUnit(enabled bool) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetCollapsesLargestUnit(enabled) })
}

// IncludesApproximationPhrase prefixes output with "About".
func IncludesApproximationPhrase(enabled bool) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetIncludesApproximationPhrase(enabled) })
}

// IncludesTimeRemainingPhrase suffixes output with "remaining".
func IncludesTimeRemainingPhrase(enabled bool) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetIncludesTimeRemainingPhrase(enabled) })
}

// MaximumUnitCount limits how many units are shown, counted from the first
// non-zero unit. Zero means no limit.
func MaximumUnitCount(n int) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetMaximumUnitCount(n) })
}

// UnitsStyle sets how unit names are written.
func UnitsStyle(s Style) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetUnitsStyle(s) })
}

// ZeroFormattingBehavior sets which zero valued units are shown.
func ZeroFormattingBehavior(z ZeroBehavior) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetZeroFormattingBehavior(z) })
}

// Custom wraps an arbitrary change to the formatter.
func Custom(effect func(*Formatter)) Option {
	return internal.Make(effect)
}

// SetAllowedUnits sets the units output may use.
func (f *Formatter) SetAllowedUnits(units Unit) { f.allowed = units }

// SetAllowsFractionalUnits enables a fractional smallest unit.
func (f *Formatter) SetAllowsFractionalUnits(enabled bool) { f.fractional = enabled }

// SetCalendar sets the calendar that measures intervals.
func (f *Formatter) SetCalendar(c calendar.Calendar) { f.cal = c }

// SetCollapsesLargestUnit enables folding a largest unit of one.
func (f *Formatter) SetCollapsesLargestUnit(enabled bool) { f.collapses = enabled }

// SetIncludesApproximationPhrase enables the "About" prefix.
func (f *Formatter) SetIncludesApproximationPhrase(on bool) { f.approximate = on }

// SetIncludesTimeRemainingPhrase enables the "remaining" suffix.
func (f *Formatter) SetIncludesTimeRemainingPhrase(on bool) { f.remaining = on }

// SetMaximumUnitCount limits the number of units shown; zero means no limit.
func (f *Formatter) SetMaximumUnitCount(n int) { f.maxUnitCount = n }

// SetUnitsStyle sets how unit names are written.
func (f *Formatter) SetUnitsStyle(s Style) { f.style = s }

// SetZeroFormattingBehavior sets which zero valued units are shown.
func (f *Formatter) SetZeroFormattingBehavior(z ZeroBehavior) { f.zero = z }

// AllowedUnits returns the units output may use.
func (f *Formatter) AllowedUnits() Unit { return f.allowed }

// AllowsFractionalUnits reports whether the smallest unit may be fractional.
func (f *Formatter) AllowsFractionalUnits() bool { return f.fractional }

// Calendar returns the calendar that measures intervals.
func (f *Formatter) Calendar() calendar.Calendar { return f.cal }

// CollapsesLargestUnit reports whether a largest unit of one is folded.
func (f *Formatter) CollapsesLargestUnit() bool { return f.collapses }

// IncludesApproximationPhrase reports whether output starts with "About".
func (f *Formatter) IncludesApproximationPhrase() bool { return f.approximate }

// IncludesTimeRemainingPhrase reports whether output ends with "remaining".
func (f *Formatter) IncludesTimeRemainingPhrase() bool { return f.remaining }

// MaximumUnitCount returns the unit limit; zero means no limit.
func (f *Formatter) MaximumUnitCount() int { return f.maxUnitCount }

// UnitsStyle returns how unit names are written.
func (f *Formatter) UnitsStyle() Style { return f.style }

// ZeroFormattingBehavior returns which zero valued units are shown.
func (f *Formatter) ZeroFormattingBehavior() ZeroBehavior { return f.zero }

// ReferenceDate anchors component and duration input: 2001-01-01 UTC.
var ReferenceDate = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// StringBetween formats the interval from start to end. It reports false
// when no supported unit is allowed or the unit limit is negative.
func (f *Formatter) StringBetween(start, end time.Time) (string, bool) {
	fields, negative, ok := f.measure(start, end)
	if !ok {
		return "", false
	}
	return f.decorate(f.render(fields), negative), true
}

// StringFromDuration formats d as the interval starting at ReferenceDate.
func (f *Formatter) StringFromDuration(d time.Duration) (string, bool) {
	return f.StringBetween(ReferenceDate, ReferenceDate.Add(d))
}

// StringFromComponents formats components as the interval starting at
// ReferenceDate.
func (f *Formatter) StringFromComponents(c calendar.Components) (string, bool) {
	end := ReferenceDate
	for _, unit := range []calendar.Unit{
		calendar.Year, calendar.Quarter, calendar.Month, calendar.WeekOfYear,
		calendar.WeekOfMonth, calendar.Day, calendar.Hour, calendar.Minute,
		calendar.Second, calendar.Nanosecond,
	} {
		v, ok := c.Value(unit)
		if !ok || v == 0 {
			continue
		}
		if end, ok = f.cal.Add(unit, v, end, false); !ok {
			return "", false
		}
	}
	return f.StringBetween(ReferenceDate, end)
}

func (f *Formatter) decorate(s string, negative bool) string {
	if negative {
		s = "-" + s
	}
	if f.approximate {
		s = "About " + s
	}
	if f.remaining {
		s += " remaining"
	}
	return s
}
