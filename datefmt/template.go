package datefmt

import (
	"strings"

	"yoth.dev/onekit-go/locale"
)

// skeleton is the field inventory of a format template, e.g. "yMMMMd".
type skeleton struct {
	year, month, day, weekday int
	hour                      byte
	minute, second, zone      int
}

func parseSkeleton(template string) skeleton {
	var s skeleton
	for _, tok := range compile(template) {
		if !tok.isField() {
			continue
		}
		switch tok.letter {
		case 'y', 'Y', 'u':
			s.year += tok.count
		case 'M', 'L':
			s.month += tok.count
		case 'd':
			s.day += tok.count
		case 'E', 'c', 'e':
			s.weekday += tok.count
		case 'j', 'h', 'H', 'k', 'K':
			s.hour = tok.letter
		case 'm':
			s.minute += tok.count
		case 's':
			s.second += tok.count
		case 'z', 'v', 'V', 'O':
			s.zone += tok.count
		}
	}
	return s
}

func (s skeleton) hasDate() bool {
	return s.year+s.month+s.day+s.weekday > 0
}

func (s skeleton) hasTime() bool {
	return s.hour != 0 || s.minute+s.second > 0
}

// dateKey builds the lookup key for the date part. With exact set the
// month keeps its requested width.
func (s skeleton) dateKey(exact bool) string {
	var b strings.Builder
	if s.year > 0 {
		b.WriteByte('y')
	}
	switch {
	case s.month == 0:
	case exact:
		b.WriteString(strings.Repeat("M", s.month))
	case s.month >= 3:
		b.WriteString("MMM")
	default:
		b.WriteByte('M')
	}
	if s.weekday > 0 && (s.day > 0 || s.month == 0 && s.year == 0) {
		b.WriteByte('E')
	}
	if s.day > 0 {
		b.WriteByte('d')
	}
	return b.String()
}

func (s skeleton) timeKey(sym *locale.Symbols) string {
	var b strings.Builder
	switch s.hour {
	case 'j':
		if sym.Hour12 {
			b.WriteByte('h')
		} else {
			b.WriteByte('H')
		}
	case 'h', 'K':
		b.WriteByte('h')
	case 'H', 'k':
		b.WriteByte('H')
	}
	if s.minute > 0 {
		b.WriteByte('m')
	}
	if s.second > 0 {
		b.WriteByte('s')
	}
	return b.String()
}

// resolveTemplate returns the localized pattern for a template. Fields the
// locale has no skeleton for are laid out in template order.
func resolveTemplate(template string, loc locale.Locale) string {
	s := parseSkeleton(template)
	sym := loc.Symbols()

	var datePart, timePart string

	if s.hasDate() {
		pattern, ok := sym.Skeletons[s.dateKey(true)]
		if !ok {
			pattern, ok = sym.Skeletons[s.dateKey(false)]
		}
		if !ok {
			pattern = fallbackPattern(s, sym)
		}
		datePart = serialize(s.adjust(compile(pattern)))
	}

	if s.hasTime() {
		key := s.timeKey(sym)
		pattern, ok := sym.Skeletons[key]
		if !ok {
			pattern = strings.Join(strings.Split(key, ""), ":")
		}
		timePart = serialize(s.adjust(compile(pattern)))
		if s.zone >= 4 {
			timePart += " zzzz"
		} else if s.zone > 0 {
			timePart += " z"
		}
	}

	switch {
	case datePart != "" && timePart != "":
		return strings.NewReplacer("{1}", datePart, "{0}", timePart).Replace(sym.TemplateJoin)
	case datePart != "":
		return datePart
	default:
		return timePart
	}
}

func fallbackPattern(s skeleton, sym *locale.Symbols) string {
	month := ""
	switch {
	case s.month >= 3:
		month = "MMM"
	case s.month > 0:
		month = "M"
	}

	var parts []string
	for _, key := range []string{
		strings.Repeat("E", min(s.weekday, 1)),
		strings.Repeat("d", min(s.day, 1)),
		month,
		strings.Repeat("y", min(s.year, 1)),
	} {
		if key == "" {
			continue
		}
		if p, ok := sym.Skeletons[key]; ok {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// adjust widens the fields of a locale pattern to the widths requested by
// the template.
func (s skeleton) adjust(tokens []token) []token {
	out := make([]token, len(tokens))
	copy(out, tokens)

	for i, tok := range out {
		switch tok.letter {
		case 'M', 'L':
			switch {
			case tok.count >= 3 && s.month >= 3:
				out[i].count = s.month
			case tok.count <= 2 && s.month <= 2:
				out[i].count = max(tok.count, s.month)
			}
		case 'd':
			out[i].count = max(tok.count, s.day)
		case 'y':
			if s.year == 2 {
				out[i].count = 2
			}
		case 'E', 'c':
			if s.weekday >= 4 {
				out[i].count = s.weekday
			}
		case 'H', 'h', 'k', 'K':
			if s.hour != 'j' {
				out[i].count = max(tok.count, 1)
			}
		case 'm', 's':
			out[i].count = max(tok.count, 2)
		}
	}
	return out
}
