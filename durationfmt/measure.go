package durationfmt

import (
	"time"
)

// unitSpec describes one displayable unit, largest first in unitSpecs.
type unitSpec struct {
	unit  Unit
	fixed time.Duration

	abbreviated string
	brief       string
	short       [2]string
	full        string
}

var unitSpecs = []unitSpec{
	{unit: Year, abbreviated: "y", brief: "yr", short: [2]string{"yr", "yrs"}, full: "year"},
	{unit: Month, abbreviated: "mo", brief: "mth", short: [2]string{"mth", "mths"}, full: "month"},
	{unit: Week, fixed: 7 * 24 * time.Hour, abbreviated: "w", brief: "wk", short: [2]string{"wk", "wks"}, full: "week"},
	{unit: Day, fixed: 24 * time.Hour, abbreviated: "d", brief: "d", short: [2]string{"day", "days"}, full: "day"},
	{unit: Hour, fixed: time.Hour, abbreviated: "h", brief: "hr", short: [2]string{"hr", "hr"}, full: "hour"},
	{unit: Minute, fixed: time.Minute, abbreviated: "m", brief: "min", short: [2]string{"min", "min"}, full: "minute"},
	{unit: Second, fixed: time.Second, abbreviated: "s", brief: "sec", short: [2]string{"sec", "sec"}, full: "second"},
}

func (s unitSpec) isClock() bool {
	return s.unit == Hour || s.unit == Minute || s.unit == Second
}

type field struct {
	spec       unitSpec
	value      float64
	fractional bool
}

// measure splits the interval into allowed units, then applies collapsing,
// the unit limit, fractions and zero dropping.
func (f *Formatter) measure(start, end time.Time) ([]field, bool, bool) {
	allowed := f.allowed & supportedUnits
	if allowed == 0 || f.maxUnitCount < 0 {
		return nil, false, false
	}

	loc := f.cal.Location()
	start, end = start.In(loc), end.In(loc)
	negative := end.Before(start)
	if negative {
		start, end = end, start
	}

	comps := f.cal.ComponentsBetween(allowed, start, end)
	fields := make([]field, 0, len(unitSpecs))
	for _, spec := range unitSpecs {
		if allowed.Contains(spec.unit) {
			fields = append(fields, field{spec: spec, value: float64(comps.Get(spec.unit))})
		}
	}

	if f.collapses {
		collapse(fields)
	}

	if f.maxUnitCount > 0 {
		first := firstNonZero(fields)
		if first < len(fields) {
			fields = fields[:min(first+f.maxUnitCount, len(fields))]
		}
	}

	if f.fractional {
		f.addFraction(fields, start, end)
	}

	return f.dropZeros(fields), negative, true
}

// collapse folds a largest unit of exactly one into the next unit when the
// two have a fixed ratio, e.g. 1 minute 5 seconds into 65 seconds.
func collapse(fields []field) {
	first := firstNonZero(fields)
	if first+1 >= len(fields) || fields[first].value != 1 {
		return
	}

	from, to := fields[first].spec, fields[first+1].spec
	var ratio float64
	switch {
	case from.unit == Year && to.unit == Month:
		ratio = 12
	case from.fixed > 0 && to.fixed > 0:
		ratio = float64(from.fixed / to.fixed)
	default:
		return
	}

	fields[first+1].value += ratio
	fields[first].value = 0
}

// addFraction adds what is left of the interval past the kept units to the
// last kept unit as a fraction of that unit's length.
func (f *Formatter) addFraction(fields []field, start, end time.Time) {
	if len(fields) == 0 {
		return
	}

	cursor := start
	for _, fl := range fields {
		next, ok := f.cal.Add(fl.spec.unit, int(fl.value), cursor, false)
		if !ok {
			return
		}
		cursor = next
	}

	rest := end.Sub(cursor)
	if rest <= 0 {
		return
	}

	last := &fields[len(fields)-1]
	length := last.spec.fixed
	if length == 0 {
		next, ok := f.cal.Add(last.spec.unit, 1, cursor, false)
		if !ok {
			return
		}
		length = next.Sub(cursor)
	}

	last.value += float64(rest) / float64(length)
	last.fractional = true
}

func (f *Formatter) dropZeros(fields []field) []field {
	behavior := f.zero
	if behavior == Default {
		behavior = DropAll
		if f.style == Positional {
			behavior = DropLeading
		}
	}
	if behavior&DropNone != 0 {
		return fields
	}

	first, last := firstNonZero(fields), -1
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].value != 0 {
			last = i
			break
		}
	}

	if last < 0 {
		if len(fields) == 0 || behavior&DropAll == 0 {
			return fields
		}
		return fields[len(fields)-1:]
	}

	kept := make([]field, 0, len(fields))
	for i, fl := range fields {
		if fl.value == 0 {
			switch {
			case i < first && behavior&DropLeading != 0:
				if !f.keepPositionalMinute(fields, i, first) {
					continue
				}
			case i > last && behavior&DropTrailing != 0:
				continue
			case i > first && i < last && behavior&DropMiddle != 0:
				continue
			}
		}
		kept = append(kept, fl)
	}
	return kept
}

// keepPositionalMinute keeps a zero minute in front of seconds so the
// positional style shows "0:30" rather than "30".
func (f *Formatter) keepPositionalMinute(fields []field, i, first int) bool {
	return f.style == Positional &&
		fields[i].spec.unit == Minute &&
		fields[first].spec.unit == Second &&
		i == first-1
}

func firstNonZero(fields []field) int {
	for i, fl := range fields {
		if fl.value != 0 {
			return i
		}
	}
	return len(fields)
}
