// Package datefmt formats and parses dates with locale-aware styles, LDML
// patterns and format templates.
package datefmt

import (
	"strings"
	"time"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/locale"
)

// Style selects a predefined date or time representation.
type Style int

const (
	None Style = iota
	Short
	Medium
	Long
	Full
)

var styleNames = [...]string{"none", "short", "medium", "long", "full"}

func (s Style) String() string {
	if s < None || s > Full {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle looks a style up by name.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), true
		}
	}
	return None, false
}

// Formatter converts between times and their textual representations. A
// Formatter is not safe for concurrent use.
type Formatter struct {
	cal       calendar.Calendar
	locale    locale.Locale
	dateStyle Style
	timeStyle Style
	format    string
	explicit  bool
	relative  bool
}

// Option configures a Formatter.
type Option = internal.Option[Formatter]

// New returns a formatter on the current calendar and its locale with no
// style and no format, then applies options in order.
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

// Calendar sets the calendar used for time zone, clock and week rules.
func Calendar(c calendar.Calendar) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetCalendar(c) })
}

// Locale sets the locale for names and style patterns.
func Locale(l locale.Locale) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetLocale(l) })
}

// DateStyle sets the date style and discards any explicit format.
func DateStyle(s Style) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetDateStyle(s) })
}

// TimeStyle sets the time style and discards any explicit format.
func TimeStyle(s Style) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetTimeStyle(s) })
}

// DateFormat sets an explicit LDML pattern such as "yyyy/MM/dd".
func DateFormat(pattern string) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetDateFormat(pattern) })
}

// DateFormatTemplate resolves a template such as "yMMMMd" against the
// formatter locale at the time the option is applied.
func DateFormatTemplate(template string) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetLocalizedDateFormatFromTemplate(template) })
}

// DoesRelativeDateFormatting toggles words such as "Today" for dates near now.
func DoesRelativeDateFormatting(enabled bool) Option {
	return internal.OptionFunc[Formatter](func(f *Formatter) { f.SetDoesRelativeDateFormatting(enabled) })
}

// Custom wraps an arbitrary change to the formatter.
func Custom(effect func(*Formatter)) Option {
	return internal.Make(effect)
}

func (f *Formatter) SetCalendar(c calendar.Calendar) { f.cal = c }

func (f *Formatter) SetLocale(l locale.Locale) { f.locale = l }

func (f *Formatter) SetDateStyle(s Style) {
	f.dateStyle = s
	f.format, f.explicit = "", false
}

func (f *Formatter) SetTimeStyle(s Style) {
	f.timeStyle = s
	f.format, f.explicit = "", false
}

func (f *Formatter) SetDateFormat(pattern string) {
	f.format, f.explicit = pattern, true
}

func (f *Formatter) SetLocalizedDateFormatFromTemplate(template string) {
	f.SetDateFormat(resolveTemplate(template, f.locale))
}

func (f *Formatter) SetDoesRelativeDateFormatting(enabled bool) { f.relative = enabled }

func (f *Formatter) Calendar() calendar.Calendar { return f.cal }

func (f *Formatter) Locale() locale.Locale { return f.locale }

func (f *Formatter) DateStyle() Style { return f.dateStyle }

func (f *Formatter) TimeStyle() Style { return f.timeStyle }

func (f *Formatter) DoesRelativeDateFormatting() bool { return f.relative }

// DateFormat returns the effective pattern: the explicit format when one is
// set, otherwise the locale pattern for the current styles.
func (f *Formatter) DateFormat() string {
	if f.explicit {
		return f.format
	}
	return f.stylePattern(stylePart(f.locale.Symbols().DatePatterns, f.dateStyle))
}

func stylePart(patterns [4]string, s Style) string {
	if s <= None || s > Full {
		return ""
	}
	return patterns[s-1]
}

func (f *Formatter) stylePattern(datePart string) string {
	sym := f.locale.Symbols()
	timePart := stylePart(sym.TimePatterns, f.timeStyle)

	switch {
	case datePart != "" && timePart != "":
		join := sym.JoinPatterns[max(f.dateStyle, Short)-1]
		return strings.NewReplacer("{1}", datePart, "{0}", timePart).Replace(join)
	case datePart != "":
		return datePart
	default:
		return timePart
	}
}

func (f *Formatter) renderer() renderer {
	return renderer{cal: f.cal, locale: f.locale}
}

// String formats t. A formatter with neither styles nor a format yields "".
func (f *Formatter) String(t time.Time) string {
	pattern := f.DateFormat()
	if f.relative && !f.explicit && f.dateStyle != None {
		if word, ok := f.relativeWord(t); ok {
			pattern = f.stylePattern(quoteLiteral(word))
		}
	}
	if pattern == "" {
		return ""
	}
	return f.renderer().render(compile(pattern), t)
}

func (f *Formatter) relativeWord(t time.Time) (string, bool) {
	sym := f.locale.Symbols()
	switch {
	case f.cal.IsInToday(t):
		return sym.Today, true
	case f.cal.IsInYesterday(t):
		return sym.Yesterday, true
	case f.cal.IsInTomorrow(t):
		return sym.Tomorrow, true
	}
	return "", false
}

// Parse reads s with the effective pattern. Relative words are recognized
// when relative formatting is on. It reports false when s does not match.
func (f *Formatter) Parse(s string) (time.Time, bool) {
	if f.relative && !f.explicit && f.dateStyle != None {
		if t, ok := f.parseRelative(s); ok {
			return t, true
		}
	}

	pattern := f.DateFormat()
	if pattern == "" {
		return time.Time{}, false
	}
	return f.renderer().parse(compile(pattern), s)
}

func (f *Formatter) parseRelative(s string) (time.Time, bool) {
	sym := f.locale.Symbols()
	today := f.cal.StartOfDay(f.cal.Now())

	for _, candidate := range []struct {
		word string
		days int
	}{{sym.Today, 0}, {sym.Yesterday, -1}, {sym.Tomorrow, 1}} {
		if !hasFoldPrefix(s, candidate.word) {
			continue
		}
		day, ok := f.cal.Add(calendar.Day, candidate.days, today, false)
		if !ok {
			return time.Time{}, false
		}
		rest := strings.TrimSpace(s[len(candidate.word):])
		if rest == "" || f.timeStyle == None {
			return day, rest == ""
		}

		timeTokens := compile(stylePart(sym.TimePatterns, f.timeStyle))
		clock, ok := f.renderer().parse(timeTokens, trimJoin(rest))
		if !ok {
			return time.Time{}, false
		}
		return f.cal.SetTime(day, clock.Hour(), clock.Minute(), clock.Second())
	}
	return time.Time{}, false
}

// trimJoin drops the separator between the relative word and the time.
func trimJoin(s string) string {
	s = strings.TrimLeft(s, ", ")
	return strings.TrimPrefix(s, "at ")
}
