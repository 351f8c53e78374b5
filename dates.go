package onekit

import (
	"time"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/datefmt"
	"yoth.dev/onekit-go/durationfmt"
	"yoth.dev/onekit-go/locale"
	"yoth.dev/onekit-go/relativefmt"
)

// DefaultDateFormat is the pattern Format uses for an empty layout.
const DefaultDateFormat = "dd/MM/yyyy"

// Dates runs the date helpers on one calendar. The package level functions
// use the current calendar.
type Dates struct {
	cal calendar.Calendar
}

// On returns the date helpers for cal.
func On(cal calendar.Calendar) Dates {
	return Dates{cal: cal}
}

func current() Dates { return On(calendar.Current()) }

func (d Dates) Calendar() calendar.Calendar { return d.cal }

// FromComponents builds a date from component values. It reports false
// when the components do not name a valid date.
func (d Dates) FromComponents(c calendar.Components) (time.Time, bool) {
	return d.cal.Date(c)
}

// Component returns a single component of t, e.g. its weekday.
func (d Dates) Component(t time.Time, unit calendar.Unit) int {
	return d.cal.Component(unit, t)
}

func (d Dates) Yesterday(t time.Time) (time.Time, bool) {
	return d.cal.Add(calendar.Day, -1, t, false)
}

func (d Dates) Tomorrow(t time.Time) (time.Time, bool) {
	return d.cal.Add(calendar.Day, 1, t, false)
}

// StartOfDay returns the first moment of t's day.
func (d Dates) StartOfDay(t time.Time) time.Time {
	return d.cal.StartOfDay(t)
}

// Adding adds value units to t. With wrapping the unit rolls over without
// changing larger units.
func (d Dates) Adding(t time.Time, unit calendar.Unit, value int, wrapping bool) (time.Time, bool) {
	return d.cal.Add(unit, value, t, wrapping)
}

// Setting sets one component of t, keeping smaller components where
// possible.
func (d Dates) Setting(t time.Time, unit calendar.Unit, value int) (time.Time, bool) {
	return d.cal.Set(unit, value, t)
}

// SettingTime moves t to the given wall clock time on the same day.
func (d Dates) SettingTime(t time.Time, hour, minute, second int, options ...calendar.MatchingOption) (time.Time, bool) {
	return d.cal.SetTime(t, hour, minute, second, options...)
}

func (d Dates) IsInToday(t time.Time) bool     { return d.cal.IsInToday(t) }
func (d Dates) IsInYesterday(t time.Time) bool { return d.cal.IsInYesterday(t) }
func (d Dates) IsInTomorrow(t time.Time) bool  { return d.cal.IsInTomorrow(t) }
func (d Dates) IsInWeekend(t time.Time) bool   { return d.cal.IsInWeekend(t) }

func (d Dates) IsInCurrentWeek(t time.Time) bool {
	return d.cal.IsSame(t, d.cal.Now(), calendar.WeekOfYear)
}

func (d Dates) IsInCurrentMonth(t time.Time) bool {
	return d.cal.IsSame(t, d.cal.Now(), calendar.Month)
}

func (d Dates) IsInCurrentYear(t time.Time) bool {
	return d.cal.IsSame(t, d.cal.Now(), calendar.Year)
}

// Format renders t with an LDML pattern; an empty pattern means
// DefaultDateFormat.
func (d Dates) Format(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	return d.FormatOptions(t, datefmt.DateFormat(pattern))
}

// FormatStyle renders t with the calendar locale's date and time styles.
func (d Dates) FormatStyle(t time.Time, dateStyle, timeStyle datefmt.Style) string {
	return d.FormatOptions(t, datefmt.DateStyle(dateStyle), datefmt.TimeStyle(timeStyle))
}

// FormatTemplate renders t with the pattern loc derives from template,
// e.g. "yMMMMd" is "MMMM d, y" in en_US and "d MMMM y" in en_GB.
func (d Dates) FormatTemplate(t time.Time, template string, loc locale.Locale) string {
	return d.FormatOptions(t, datefmt.Locale(loc), datefmt.DateFormatTemplate(template))
}

// FormatOptions renders t with a formatter on this calendar configured by
// options.
func (d Dates) FormatOptions(t time.Time, options ...datefmt.Option) string {
	base := []datefmt.Option{datefmt.Calendar(d.cal), datefmt.Locale(d.cal.Locale())}
	return datefmt.New(append(base, options...)...).String(t)
}

// QuantitiesTo describes the interval from t to end, e.g. "3 days, 4 hours".
func (d Dates) QuantitiesTo(t, end time.Time, options ...durationfmt.Option) (string, bool) {
	return d.durations(options).StringBetween(t, end)
}

// QuantitiesFrom describes the interval from start to t.
func (d Dates) QuantitiesFrom(t, start time.Time, options ...durationfmt.Option) (string, bool) {
	return d.durations(options).StringBetween(start, t)
}

// FormatComponents describes a set of components as an interval.
func (d Dates) FormatComponents(c calendar.Components, options ...durationfmt.Option) (string, bool) {
	return d.durations(options).StringFromComponents(c)
}

func (d Dates) durations(options []durationfmt.Option) *durationfmt.Formatter {
	return durationfmt.New(append([]durationfmt.Option{durationfmt.Calendar(d.cal)}, options...)...)
}

// RelativeTo describes t relative to end, e.g. "in 2 days".
func (d Dates) RelativeTo(t, end time.Time, options ...relativefmt.Option) string {
	base := []relativefmt.Option{relativefmt.Calendar(d.cal), relativefmt.Locale(d.cal.Locale())}
	return relativefmt.New(append(base, options...)...).String(t, end)
}

// ComponentsTo returns the difference from t to end in units.
func (d Dates) ComponentsTo(t time.Time, units calendar.Unit, end time.Time) calendar.Components {
	return d.cal.ComponentsBetween(units, t, end)
}

// ComponentsFrom returns the difference from start to t in units.
func (d Dates) ComponentsFrom(t time.Time, units calendar.Unit, start time.Time) calendar.Components {
	return d.cal.ComponentsBetween(units, start, t)
}

func FromComponents(c calendar.Components) (time.Time, bool) { return current().FromComponents(c) }
func Yesterday(t time.Time) (time.Time, bool)                 { return current().Yesterday(t) }
func Tomorrow(t time.Time) (time.Time, bool)                  { return current().Tomorrow(t) }
func StartOfDay(t time.Time) time.Time                        { return current().StartOfDay(t) }

func Adding(t time.Time, unit calendar.Unit, value int, wrapping bool) (time.Time, bool) {
	return current().Adding(t, unit, value, wrapping)
}

func Setting(t time.Time, unit calendar.Unit, value int) (time.Time, bool) {
	return current().Setting(t, unit, value)
}

func SettingTime(t time.Time, hour, minute, second int, options ...calendar.MatchingOption) (time.Time, bool) {
	return current().SettingTime(t, hour, minute, second, options...)
}

func IsInToday(t time.Time) bool        { return current().IsInToday(t) }
func IsInCurrentWeek(t time.Time) bool  { return current().IsInCurrentWeek(t) }
func IsInCurrentMonth(t time.Time) bool { return current().IsInCurrentMonth(t) }
func IsInCurrentYear(t time.Time) bool  { return current().IsInCurrentYear(t) }

// Format renders t in the current calendar; see Dates.Format.
func Format(t time.Time, pattern string) string { return current().Format(t, pattern) }

func FormatStyle(t time.Time, dateStyle, timeStyle datefmt.Style) string {
	return current().FormatStyle(t, dateStyle, timeStyle)
}

func FormatTemplate(t time.Time, template string, loc locale.Locale) string {
	return current().FormatTemplate(t, template, loc)
}

func FormatOptions(t time.Time, options ...datefmt.Option) string {
	return current().FormatOptions(t, options...)
}

func QuantitiesTo(t, end time.Time, options ...durationfmt.Option) (string, bool) {
	return current().QuantitiesTo(t, end, options...)
}

func QuantitiesFrom(t, start time.Time, options ...durationfmt.Option) (string, bool) {
	return current().QuantitiesFrom(t, start, options...)
}

func FormatComponents(c calendar.Components, options ...durationfmt.Option) (string, bool) {
	return current().FormatComponents(c, options...)
}

func RelativeTo(t, end time.Time, options ...relativefmt.Option) string {
	return current().RelativeTo(t, end, options...)
}

func ComponentsTo(t time.Time, units calendar.Unit, end time.Time) calendar.Components {
	return current().ComponentsTo(t, units, end)
}

func ComponentsFrom(t time.Time, units calendar.Unit, start time.Time) calendar.Components {
	return current().ComponentsFrom(t, units, start)
}
