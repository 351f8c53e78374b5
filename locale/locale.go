// Package locale resolves locale identifiers to the small set of locales the
// formatters carry symbol tables for, and formats numbers for them.
package locale

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnknownLocale is returned when an identifier matches no supported locale.
var ErrUnknownLocale = errors.New("locale: unknown locale")

// Locale identifies one supported locale. The zero value behaves as EnUS.
type Locale struct {
	sym *Symbols
}

var (
	EnUS = Locale{sym: &enUS}
	EnGB = Locale{sym: &enGB}
	FrFR = Locale{sym: &frFR}
	DeDE = Locale{sym: &deDE}
	EsES = Locale{sym: &esES}
	JaJP = Locale{sym: &jaJP}
	ZhCN = Locale{sym: &zhCN}

	// Default is used when nothing else is configured.
	Default = EnUS
)

var (
	supported = []Locale{EnUS, EnGB, FrFR, DeDE, EsES, JaJP, ZhCN}
	matcher   language.Matcher
)

func init() {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.sym.Tag
	}
	matcher = language.NewMatcher(tags)
}

// Supported returns every locale with symbol tables, EnUS first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse resolves identifiers such as "en_US", "en-GB", "fr" or
// "de_DE.UTF-8" to the closest supported locale.
func Parse(id string) (Locale, error) {
	cleaned := strings.TrimSpace(id)
	if i := strings.IndexAny(cleaned, ".@"); i >= 0 {
		cleaned = cleaned[:i]
	}
	if cleaned == "" || cleaned == "C" || cleaned == "POSIX" {
		return Default, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(cleaned, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, id, err)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}

	return supported[index], nil
}

// MustParse is like Parse but panics on unknown identifiers. It is meant for
// package-level variables and tests.
func MustParse(id string) Locale {
	l, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return l
}

// Current returns the locale named by LC_ALL, LC_TIME or LANG, falling back
// to Default.
func Current() Locale {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if l, err := Parse(value); err == nil {
			return l
		}
	}
	return Default
}

func (l Locale) symbols() *Symbols {
	if l.sym == nil {
		return Default.sym
	}
	return l.sym
}

// Identifier returns the POSIX style identifier, e.g. "en_US".
func (l Locale) Identifier() string { return l.symbols().ID }

func (l Locale) String() string { return l.Identifier() }

// Tag returns the BCP 47 tag.
func (l Locale) Tag() language.Tag { return l.symbols().Tag }

// Symbols exposes the locale's pattern and word tables.
func (l Locale) Symbols() *Symbols { return l.symbols() }

// Equal reports whether both values name the same locale.
func (l Locale) Equal(other Locale) bool { return l.symbols() == other.symbols() }

// FirstWeekday is the first day of the week in this locale.
func (l Locale) FirstWeekday() time.Weekday { return l.symbols().FirstWeekday }

// MinimumDaysInFirstWeek is the number of days the first week of a year or
// month must contain.
func (l Locale) MinimumDaysInFirstWeek() int { return l.symbols().MinimumDaysInFirstWeek }

// Translate renders t with a Go layout and replaces English month, weekday
// and day period names with this locale's names.
func (l Locale) Translate(t time.Time, layout string) string {
	return monday.Format(t, layout, l.symbols().Monday)
}

// FormatInt formats n with the locale's digit grouping.
func (l Locale) FormatInt(n int64) string {
	return message.NewPrinter(l.Tag()).Sprintf("%d", n)
}

// FormatDecimal formats v with at most maxFraction fraction digits.
func (l Locale) FormatDecimal(v float64, maxFraction int) string {
	printer := message.NewPrinter(l.Tag())
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFraction)))
}
