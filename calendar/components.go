package calendar

import (
	"math/bits"
	"strconv"
	"strings"
)

// Unit is a calendar component. Units combine as a bit set.
type Unit uint32

const (
	Era Unit = 1 << iota
	Year
	Month
	Day
	Hour
	Minute
	Second
	Nanosecond
	Weekday
	WeekdayOrdinal
	Quarter
	WeekOfMonth
	WeekOfYear
	YearForWeekOfYear

	unitCount = iota
)

var unitNames = [unitCount]string{
	"era", "year", "month", "day", "hour", "minute", "second", "nanosecond",
	"weekday", "weekdayOrdinal", "quarter", "weekOfMonth", "weekOfYear", "yearForWeekOfYear",
}

// Contains reports whether every unit of other is in u.
func (u Unit) Contains(other Unit) bool {
	return other != 0 && u&other == other
}

// Each calls fn for every single unit in u, in declaration order.
func (u Unit) Each(fn func(Unit)) {
	for rest := u; rest != 0; rest &= rest - 1 {
		fn(Unit(1) << bits.TrailingZeros32(uint32(rest)))
	}
}

func (u Unit) String() string {
	if u == 0 {
		return "none"
	}
	var names []string
	u.Each(func(single Unit) {
		if i := single.index(); i < unitCount {
			names = append(names, unitNames[i])
		}
	})
	return strings.Join(names, "|")
}

// ParseUnit looks a single unit up by name, ignoring case.
func ParseUnit(name string) (Unit, bool) {
	for i, n := range unitNames {
		if strings.EqualFold(n, name) {
			return Unit(1) << i, true
		}
	}
	return 0, false
}

func (u Unit) index() int {
	return bits.TrailingZeros32(uint32(u))
}

// Components is a set of calendar component values. Only units that were set
// carry meaning; the zero value has none.
type Components struct {
	values [unitCount]int
	set    Unit
}

// With returns a copy of c with unit set to value.
func (c Components) With(unit Unit, value int) Components {
	c.Set(unit, value)
	return c
}

// Set assigns value to a single unit. Multi-unit masks are ignored.
func (c *Components) Set(unit Unit, value int) {
	if bits.OnesCount32(uint32(unit)) != 1 || unit.index() >= unitCount {
		return
	}
	c.values[unit.index()] = value
	c.set |= unit
}

// Clear removes unit from the set.
func (c *Components) Clear(unit Unit) {
	c.set &^= unit
	unit.Each(func(single Unit) {
		if i := single.index(); i < unitCount {
			c.values[i] = 0
		}
	})
}

// Value returns the unit's value and whether it was set.
func (c Components) Value(unit Unit) (int, bool) {
	if !c.Has(unit) {
		return 0, false
	}
	return c.values[unit.index()], true
}

// Get returns the unit's value, or zero when unset.
func (c Components) Get(unit Unit) int {
	v, _ := c.Value(unit)
	return v
}

// Has reports whether unit was set.
func (c Components) Has(unit Unit) bool {
	return c.set.Contains(unit)
}

// Units returns the set of units carrying a value.
func (c Components) Units() Unit {
	return c.set
}

// IsZero reports whether every set value is zero.
func (c Components) IsZero() bool {
	zero := true
	c.set.Each(func(u Unit) {
		if c.values[u.index()] != 0 {
			zero = false
		}
	})
	return zero
}

// Negated returns the components with every value negated.
func (c Components) Negated() Components {
	out := c
	c.set.Each(func(u Unit) {
		out.values[u.index()] = -c.values[u.index()]
	})
	return out
}

func (c Components) String() string {
	if c.set == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	c.set.Each(func(u Unit) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(unitNames[u.index()])
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(c.values[u.index()]))
	})
	b.WriteByte('}')
	return b.String()
}
