package datefmt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/locale"
)

// token is one piece of a compiled LDML pattern: either a field (letter
// repeated count times) or literal text.
type token struct {
	letter  byte
	count   int
	literal string
}

func (t token) isField() bool { return t.letter != 0 }

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// compile splits an LDML pattern into tokens. Text inside single quotes is
// literal and two adjacent quotes produce one quote.
func compile(pattern string) []token {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{literal: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			i++
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						lit.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteRune(runes[i])
				i++
			}
		case isPatternLetter(r):
			flush()
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, token{letter: byte(r), count: j - i})
			i = j
		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()

	return tokens
}

// serialize turns tokens back into a pattern, quoting literals that would
// otherwise read as fields.
func serialize(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.isField() {
			b.WriteString(strings.Repeat(string(t.letter), t.count))
			continue
		}
		b.WriteString(quoteLiteral(t.literal))
	}
	return b.String()
}

// quoteLiteral quotes each run of letters so the text reads back as a
// literal, e.g. " de " becomes " 'de' ".
func quoteLiteral(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !isPatternLetter(runes[i]) && runes[i] != '\'' {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j, letters := i, false
		for j < len(runes) && (isPatternLetter(runes[j]) || runes[j] == '\'') {
			letters = letters || runes[j] != '\''
			j++
		}
		run := string(runes[i:j])
		if letters {
			b.WriteString("'" + strings.ReplaceAll(run, "'", "''") + "'")
		} else {
			b.WriteString(strings.Repeat("''", j-i))
		}
		i = j
	}
	return b.String()
}

// renderer formats a time with compiled tokens.
type renderer struct {
	cal    calendar.Calendar
	locale locale.Locale
}

func (r renderer) render(tokens []token, t time.Time) string {
	t = t.In(r.cal.Location())

	var b strings.Builder
	for _, tok := range tokens {
		if !tok.isField() {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteString(r.field(tok, t))
	}
	return b.String()
}

func pad(v, width int) string {
	if v < 0 {
		return "-" + pad(-v, width)
	}
	return fmt.Sprintf("%0*d", width, v)
}

func narrow(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(r)
}

func (r renderer) field(tok token, t time.Time) string {
	n := tok.count

	switch tok.letter {
	case 'G':
		ad := r.cal.Component(calendar.Era, t) == 1
		switch {
		case n == 4 && ad:
			return "Anno Domini"
		case n == 4:
			return "Before Christ"
		case n == 5 && ad:
			return "A"
		case n == 5:
			return "B"
		case ad:
			return "AD"
		default:
			return "BC"
		}
	case 'y':
		return formatYear(r.cal.Component(calendar.Year, t), n)
	case 'Y':
		return formatYear(r.cal.Component(calendar.YearForWeekOfYear, t), n)
	case 'u':
		return pad(t.Year(), n)
	case 'Q', 'q':
		q := r.cal.Component(calendar.Quarter, t)
		switch {
		case n <= 2:
			return pad(q, n)
		case n == 3:
			return fmt.Sprintf("Q%d", q)
		case n == 4:
			return ordinal(q) + " quarter"
		default:
			return pad(q, 1)
		}
	case 'M', 'L':
		switch {
		case n <= 2:
			return pad(int(t.Month()), n)
		case n == 3:
			return r.locale.Translate(t, "Jan")
		case n == 4:
			return r.locale.Translate(t, "January")
		default:
			return narrow(r.locale.Translate(t, "January"))
		}
	case 'd':
		return pad(t.Day(), n)
	case 'D':
		return pad(t.YearDay(), n)
	case 'F':
		return pad(r.cal.Component(calendar.WeekdayOrdinal, t), n)
	case 'E':
		return r.weekdayName(t, n)
	case 'e', 'c':
		if n <= 2 {
			local := (int(t.Weekday())-int(r.cal.FirstWeekday())+7)%7 + 1
			return pad(local, n)
		}
		return r.weekdayName(t, n)
	case 'a', 'b', 'B':
		return r.locale.Translate(t, "PM")
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n)
	case 'H':
		return pad(t.Hour(), n)
	case 'K':
		return pad(t.Hour()%12, n)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	case 'S':
		digits := fmt.Sprintf("%09d", t.Nanosecond())
		if n <= 9 {
			return digits[:n]
		}
		return digits + strings.Repeat("0", n-9)
	case 'A':
		ms := ((t.Hour()*60+t.Minute())*60+t.Second())*1000 + t.Nanosecond()/int(time.Millisecond)
		return pad(ms, n)
	case 'w':
		return pad(r.cal.Component(calendar.WeekOfYear, t), n)
	case 'W':
		return pad(r.cal.Component(calendar.WeekOfMonth, t), n)
	case 'z', 'v', 'V':
		if n >= 4 {
			_, offset := t.Zone()
			return gmtOffset(offset)
		}
		return t.Format("MST")
	case 'O':
		_, offset := t.Zone()
		return gmtOffset(offset)
	case 'Z':
		_, offset := t.Zone()
		switch {
		case n <= 3:
			return t.Format("-0700")
		case n == 4:
			return gmtOffset(offset)
		case offset == 0:
			return "Z"
		default:
			return t.Format("-07:00")
		}
	case 'X', 'x':
		_, offset := t.Zone()
		if tok.letter == 'X' && offset == 0 {
			return "Z"
		}
		switch n {
		case 1:
			if offset%3600 == 0 {
				return t.Format("-07")
			}
			return t.Format("-0700")
		case 2, 4:
			return t.Format("-0700")
		default:
			return t.Format("-07:00")
		}
	}

	return strings.Repeat(string(tok.letter), n)
}

func (r renderer) weekdayName(t time.Time, n int) string {
	switch {
	case n <= 3:
		return r.locale.Translate(t, "Mon")
	case n == 4:
		return r.locale.Translate(t, "Monday")
	case n == 5:
		return narrow(r.locale.Translate(t, "Monday"))
	default:
		full := []rune(r.locale.Translate(t, "Monday"))
		return string(full[:min(2, len(full))])
	}
}

func formatYear(year, n int) string {
	if n == 2 {
		return pad(year%100, 2)
	}
	return pad(year, n)
}

func gmtOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("GMT%c%02d:%02d", sign, offset/3600, offset%3600/60)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
