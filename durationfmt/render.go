package durationfmt

import (
	"math"
	"strings"

	"github.com/divan/num2words"
)

func (f *Formatter) render(fields []field) string {
	if f.style == Positional {
		return f.renderPositional(fields)
	}

	parts := make([]string, 0, len(fields))
	for _, fl := range fields {
		parts = append(parts, f.renderLabelled(fl))
	}

	separator := ", "
	if f.style == Abbreviated || f.style == Brief {
		separator = " "
	}
	return strings.Join(parts, separator)
}

func (f *Formatter) renderLabelled(fl field) string {
	one := fl.value == 1 && !fl.fractional
	number := f.number(fl)

	switch f.style {
	case Abbreviated:
		return number + fl.spec.abbreviated
	case Brief:
		return number + fl.spec.brief
	case Short:
		if one {
			return number + " " + fl.spec.short[0]
		}
		return number + " " + fl.spec.short[1]
	case SpellOut:
		if !fl.fractional {
			number = num2words.Convert(int(fl.value))
		}
	}

	if one {
		return number + " " + fl.spec.full
	}
	return number + " " + fl.spec.full + "s"
}

// renderPositional writes calendar units abbreviated and clock units as
// colon separated fields, e.g. "3d 4:00:00". A lone clock field has nothing
// to be positioned against and keeps its abbreviation, e.g. "3d 4h".
func (f *Formatter) renderPositional(fields []field) string {
	var parts []string
	var clock []field
	for _, fl := range fields {
		if fl.spec.isClock() {
			clock = append(clock, fl)
			continue
		}
		parts = append(parts, f.number(fl)+fl.spec.abbreviated)
	}

	switch len(clock) {
	case 0:
	case 1:
		parts = append(parts, f.number(clock[0])+clock[0].spec.abbreviated)
	default:
		clockParts := make([]string, 0, len(clock))
		for i, fl := range clock {
			number := f.number(fl)
			if i > 0 || f.zero&Pad != 0 {
				number = padTwo(number)
			}
			clockParts = append(clockParts, number)
		}
		parts = append(parts, strings.Join(clockParts, ":"))
	}
	return strings.Join(parts, " ")
}

func padTwo(number string) string {
	digits := strings.IndexFunc(number, func(r rune) bool { return r < '0' || r > '9' })
	if digits < 0 {
		digits = len(number)
	}
	if digits < 2 {
		return strings.Repeat("0", 2-digits) + number
	}
	return number
}

func (f *Formatter) number(fl field) string {
	loc := f.cal.Locale()
	if fl.fractional {
		return loc.FormatDecimal(fl.value, 2)
	}
	return loc.FormatInt(int64(math.Round(fl.value)))
}
