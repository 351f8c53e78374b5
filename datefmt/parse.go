package datefmt

import (
	"strings"
	"time"
	"unicode/utf8"
)

// parsed collects field values while scanning input.
type parsed struct {
	year, month, day            int
	hour, minute, second, nanos int
	pm, hasPeriod, hour12       bool
	bc                          bool
	offset                      *int
}

func isNumericField(tok token) bool {
	switch tok.letter {
	case 'y', 'Y', 'u', 'd', 'D', 'H', 'h', 'K', 'k', 'm', 's', 'S':
		return true
	case 'M', 'L':
		return tok.count <= 2
	}
	return false
}

// parse reads input according to tokens. It reports false when the input
// does not match or a field is not supported for parsing.
func (r renderer) parse(tokens []token, input string) (time.Time, bool) {
	p := parsed{year: 1970, month: 1, day: 1}
	rest := input

	for i, tok := range tokens {
		if !tok.isField() {
			if !strings.HasPrefix(rest, tok.literal) {
				trimmed := strings.TrimSpace(tok.literal)
				if trimmed == "" || !strings.HasPrefix(strings.TrimLeft(rest, " "), trimmed) {
					return time.Time{}, false
				}
				rest = strings.TrimLeft(rest, " ")[len(trimmed):]
				continue
			}
			rest = rest[len(tok.literal):]
			continue
		}

		width := 0
		if i+1 < len(tokens) && isNumericField(tokens[i+1]) {
			width = tok.count
			if tok.letter == 'y' && tok.count == 1 {
				width = 4
			}
		}

		var ok bool
		if isNumericField(tok) {
			var v int
			v, rest, ok = readNumber(rest, width)
			if !ok {
				return time.Time{}, false
			}
			ok = r.assignNumber(&p, tok, v)
		} else {
			rest, ok = r.readText(&p, tok, rest)
		}
		if !ok {
			return time.Time{}, false
		}
	}

	if strings.TrimSpace(rest) != "" {
		return time.Time{}, false
	}

	if p.hour12 && p.hasPeriod {
		p.hour %= 12
		if p.pm {
			p.hour += 12
		}
	}
	if p.bc {
		p.year = 1 - p.year
	}

	loc := r.cal.Location()
	if p.offset != nil {
		loc = time.FixedZone("", *p.offset)
	}

	out := time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, p.nanos, loc)
	if out.Month() != time.Month(p.month) || out.Day() != p.day {
		return time.Time{}, false
	}
	return out, true
}

func readNumber(s string, width int) (int, string, bool) {
	limit := len(s)
	if width > 0 && width < limit {
		limit = width
	}
	if limit > 9 {
		limit = 9
	}

	n, v := 0, 0
	for n < limit && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	if n == 0 || (width > 0 && n != width) {
		return 0, s, false
	}
	return v, s[n:], true
}

func (r renderer) assignNumber(p *parsed, tok token, v int) bool {
	switch tok.letter {
	case 'y', 'Y', 'u':
		if tok.count == 2 {
			v = r.expandTwoDigitYear(v)
		}
		p.year = v
	case 'M', 'L':
		if v < 1 || v > 12 {
			return false
		}
		p.month = v
	case 'd':
		p.day = v
	case 'D':
		p.month, p.day = 1, v
	case 'H', 'k':
		if v > 24 {
			return false
		}
		p.hour = v % 24
	case 'h', 'K':
		if v > 12 {
			return false
		}
		p.hour = v
		p.hour12 = true
	case 'm':
		if v > 59 {
			return false
		}
		p.minute = v
	case 's':
		if v > 60 {
			return false
		}
		p.second = v
	case 'S':
		nanos := v
		for digits := tok.count; digits < 9; digits++ {
			nanos *= 10
		}
		p.nanos = nanos
	default:
		return false
	}
	return true
}

// expandTwoDigitYear places a two digit year within 80 years before and 20
// years after the calendar's current year.
func (r renderer) expandTwoDigitYear(v int) int {
	current := r.cal.Now().Year()
	year := current/100*100 + v
	switch {
	case year > current+20:
		year -= 100
	case year <= current-80:
		year += 100
	}
	return year
}

func (r renderer) readText(p *parsed, tok token, s string) (string, bool) {
	switch tok.letter {
	case 'M', 'L':
		names := r.monthNames(tok.count)
		for i, name := range names {
			if hasFoldPrefix(s, name) {
				p.month = i + 1
				return s[len(name):], true
			}
		}
		return s, false
	case 'E', 'c', 'e':
		for _, name := range r.weekdayNames(tok.count) {
			if hasFoldPrefix(s, name) {
				return s[len(name):], true
			}
		}
		return s, false
	case 'a':
		for _, candidate := range []struct {
			t  time.Time
			pm bool
		}{
			{time.Date(2001, 1, 1, 9, 0, 0, 0, time.UTC), false},
			{time.Date(2001, 1, 1, 21, 0, 0, 0, time.UTC), true},
		} {
			name := r.locale.Translate(candidate.t, "PM")
			if hasFoldPrefix(s, name) {
				p.pm, p.hasPeriod = candidate.pm, true
				return s[len(name):], true
			}
		}
		return s, false
	case 'G':
		for _, era := range []struct {
			name string
			bc   bool
		}{{"Anno Domini", false}, {"Before Christ", true}, {"AD", false}, {"BC", true}} {
			if hasFoldPrefix(s, era.name) {
				p.bc = era.bc
				return s[len(era.name):], true
			}
		}
		return s, false
	case 'Z', 'X', 'x':
		return readOffset(p, s)
	case 'z':
		n := 0
		for n < len(s) && ((s[n] >= 'A' && s[n] <= 'Z') || s[n] == '+' || s[n] == '-' || (s[n] >= '0' && s[n] <= '9') || s[n] == ':') {
			n++
		}
		if n == 0 {
			return s, false
		}
		return s[n:], true
	}
	return s, false
}

func readOffset(p *parsed, s string) (string, bool) {
	if strings.HasPrefix(s, "Z") {
		zero := 0
		p.offset = &zero
		return s[1:], true
	}
	s = strings.TrimPrefix(s, "GMT")
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return s, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	s = s[1:]

	hours, rest, ok := readNumber(s, 2)
	if !ok {
		return s, false
	}
	rest = strings.TrimPrefix(rest, ":")
	minutes := 0
	if m, after, ok := readNumber(rest, 2); ok {
		minutes, rest = m, after
	}

	offset := sign * (hours*3600 + minutes*60)
	p.offset = &offset
	return rest, true
}

func (r renderer) monthNames(count int) []string {
	layout := "January"
	if count == 3 {
		layout = "Jan"
	}
	names := make([]string, 12)
	for i := range names {
		names[i] = r.locale.Translate(time.Date(2001, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC), layout)
	}
	return names
}

func (r renderer) weekdayNames(count int) []string {
	layout := "Monday"
	if count <= 3 {
		layout = "Mon"
	}
	names := make([]string, 7)
	for i := range names {
		// 2001-01-07 is a Sunday.
		names[i] = r.locale.Translate(time.Date(2001, time.January, 7+i, 0, 0, 0, 0, time.UTC), layout)
	}
	return names
}

func hasFoldPrefix(s, prefix string) bool {
	if prefix == "" || len(s) < len(prefix) {
		return false
	}
	if !utf8.ValidString(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
