package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yoth.dev/onekit-go/locale"
)

func utcCalendar(options ...Option) Calendar {
	base := []Option{WithLocation(time.UTC), WithLocale(locale.EnUS)}
	return New(append(base, options...)...)
}

func TestComponent(t *testing.T) {
	cal := utcCalendar()
	date := time.Date(2020, time.June, 20, 20, 5, 9, 42, time.UTC)

	tests := []struct {
		unit Unit
		want int
	}{
		{Era, 1},
		{Year, 2020},
		{Month, 6},
		{Day, 20},
		{Hour, 20},
		{Minute, 5},
		{Second, 9},
		{Nanosecond, 42},
		{Weekday, 7}, // Saturday
		{WeekdayOrdinal, 3},
		{Quarter, 2},
		{WeekOfMonth, 3},
		{WeekOfYear, 25},
		{YearForWeekOfYear, 2020},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Component(tt.unit, date))
		})
	}
}

func TestComponentUsesCalendarLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cal := utcCalendar(WithLocation(tokyo))

	date := time.Date(2020, time.June, 20, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 21, cal.Component(Day, date))
	assert.Equal(t, 5, cal.Component(Hour, date))
}

func TestWeekOfYearFollowsWeekRules(t *testing.T) {
	iso := utcCalendar(WithFirstWeekday(time.Monday), WithMinimumDaysInFirstWeek(4))
	us := utcCalendar()

	// 2021-01-01 is a Friday.
	jan1 := time.Date(2021, time.January, 1, 12, 0, 0, 0, time.UTC)

	year, week := jan1.ISOWeek()
	assert.Equal(t, week, iso.Component(WeekOfYear, jan1))
	assert.Equal(t, year, iso.Component(YearForWeekOfYear, jan1))
	assert.Equal(t, 1, us.Component(WeekOfYear, jan1))
	assert.Equal(t, 2021, us.Component(YearForWeekOfYear, jan1))

	// 2024-12-30 is a Monday and belongs to ISO week 1 of 2025.
	dec30 := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, iso.Component(WeekOfYear, dec30))
	assert.Equal(t, 2025, iso.Component(YearForWeekOfYear, dec30))
}

func TestWeekOfYearMatchesISOAcrossYears(t *testing.T) {
	iso := utcCalendar(WithLocale(locale.EnGB))

	day := time.Date(2015, time.December, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3*366; i++ {
		year, week := day.ISOWeek()
		require.Equal(t, week, iso.Component(WeekOfYear, day), day.String())
		require.Equal(t, year, iso.Component(YearForWeekOfYear, day), day.String())
		day = day.AddDate(0, 0, 1)
	}
}

func TestLocaleWeekConventionsCanBeOverridden(t *testing.T) {
	cal := New(WithLocale(locale.EnGB), WithFirstWeekday(time.Sunday))
	assert.Equal(t, time.Sunday, cal.FirstWeekday())
	assert.Equal(t, 4, cal.MinimumDaysInFirstWeek())

	cal = New(WithFirstWeekday(time.Sunday), WithLocale(locale.EnGB))
	assert.Equal(t, time.Monday, cal.FirstWeekday())
}

func TestDateFromComponents(t *testing.T) {
	cal := utcCalendar()

	date, ok := cal.Date(Components{}.With(Year, 2018).With(Month, 5).With(Day, 16))
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, time.May, 16, 0, 0, 0, 0, time.UTC), date)

	date, ok = cal.Date(Components{}.
		With(Year, 2020).With(Month, 6).With(Weekday, 2).With(WeekdayOrdinal, 2))
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.June, 8, 0, 0, 0, 0, time.UTC), date, "second Monday of June")

	date, ok = cal.Date(Components{}.With(Era, 0).With(Year, 1))
	require.True(t, ok)
	assert.Equal(t, 0, date.Year())

	_, ok = cal.Date(Components{}.With(Weekday, 9))
	assert.False(t, ok)
	_, ok = cal.Date(Components{}.With(Quarter, 5))
	assert.False(t, ok)
}

func TestDateFromWeekOfYear(t *testing.T) {
	iso := utcCalendar(WithLocale(locale.EnGB))

	date, ok := iso.Date(Components{}.
		With(YearForWeekOfYear, 2025).With(WeekOfYear, 1).With(Weekday, 2))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), date)
}

func TestComponentsRoundTrip(t *testing.T) {
	cal := utcCalendar()
	date := time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC)

	comps := cal.Components(Year|Month|Day|Hour|Minute|Second, date)
	rebuilt, ok := cal.Date(comps)
	require.True(t, ok)
	assert.True(t, rebuilt.Equal(date))
}

func TestAdd(t *testing.T) {
	cal := utcCalendar()
	jan31 := time.Date(2020, time.January, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		unit     Unit
		value    int
		wrapping bool
		want     time.Time
	}{
		{"month clamps to leap day", Month, 1, false, time.Date(2020, time.February, 29, 10, 0, 0, 0, time.UTC)},
		{"year", Year, -1, false, time.Date(2019, time.January, 31, 10, 0, 0, 0, time.UTC)},
		{"day", Day, 1, false, time.Date(2020, time.February, 1, 10, 0, 0, 0, time.UTC)},
		{"week", WeekOfYear, 1, false, time.Date(2020, time.February, 7, 10, 0, 0, 0, time.UTC)},
		{"hours", Hour, 20, false, time.Date(2020, time.February, 1, 6, 0, 0, 0, time.UTC)},
		{"wrapping hours", Hour, 20, true, time.Date(2020, time.January, 31, 6, 0, 0, 0, time.UTC)},
		{"wrapping day", Day, 1, true, time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{"wrapping month", Month, 11, true, time.Date(2020, time.December, 31, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cal.Add(tt.unit, tt.value, jan31, tt.wrapping)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := cal.Add(Era, 1, jan31, false)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	cal := utcCalendar()
	date := time.Date(2020, time.March, 31, 8, 30, 0, 0, time.UTC)

	got, ok := cal.Set(Month, 2, date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.February, 29, 8, 30, 0, 0, time.UTC), got)

	got, ok = cal.Set(Hour, 23, date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.March, 31, 23, 30, 0, 0, time.UTC), got)

	// 2020-03-31 is a Tuesday; Sunday of the same week is the 29th.
	got, ok = cal.Set(Weekday, 1, date)
	require.True(t, ok)
	assert.Equal(t, 29, got.Day())

	_, ok = cal.Set(Day, 32, date)
	assert.False(t, ok)
	_, ok = cal.Set(Quarter, 1, date)
	assert.False(t, ok)
}

func TestSetTime(t *testing.T) {
	cal := utcCalendar()
	date := time.Date(2020, time.June, 20, 20, 5, 0, 0, time.UTC)

	got, ok := cal.SetTime(date, 7, 30, 15)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.June, 20, 7, 30, 15, 0, time.UTC), got)

	_, ok = cal.SetTime(date, 24, 0, 0)
	assert.False(t, ok)
}

func TestSetTimeInDaylightSavingGap(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := utcCalendar(WithLocation(newYork))
	// Clocks jumped from 02:00 EST to 03:00 EDT on 2021-03-14.
	day := time.Date(2021, time.March, 14, 12, 0, 0, 0, newYork)

	tests := []struct {
		name   string
		policy MatchingPolicy
		want   time.Time
	}{
		{"next time", NextTime, time.Date(2021, time.March, 14, 7, 0, 0, 0, time.UTC)},
		{"next preserving smaller", NextTimePreservingSmallerComponents, time.Date(2021, time.March, 14, 7, 30, 15, 0, time.UTC)},
		{"previous preserving smaller", PreviousTimePreservingSmallerComponents, time.Date(2021, time.March, 14, 6, 30, 15, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cal.SetTime(day, 2, 30, 15, WithMatchingPolicy(tt.policy))
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, newYork, got.Location())
		})
	}

	local, ok := cal.SetTime(day, 2, 30, 15, WithMatchingPolicy(NextTimePreservingSmallerComponents))
	require.True(t, ok)
	assert.Equal(t, "03:30:15 EDT", local.Format("15:04:05 MST"))

	local, ok = cal.SetTime(day, 2, 30, 15, WithMatchingPolicy(PreviousTimePreservingSmallerComponents))
	require.True(t, ok)
	assert.Equal(t, "01:30:15 EST", local.Format("15:04:05 MST"))

	_, ok = cal.SetTime(day, 2, 30, 0, WithMatchingPolicy(Strict))
	assert.False(t, ok)
}

func TestSetTimeInRepeatedHour(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := utcCalendar(WithLocation(newYork))
	// 01:00 to 02:00 happened twice on 2021-11-07.
	day := time.Date(2021, time.November, 7, 12, 0, 0, 0, newYork)

	first, ok := cal.SetTime(day, 1, 30, 0)
	require.True(t, ok)
	assert.Equal(t, "01:30 EDT", first.Format("15:04 MST"))

	last, ok := cal.SetTime(day, 1, 30, 0, WithRepeatedTimePolicy(Last))
	require.True(t, ok)
	assert.Equal(t, "01:30 EST", last.Format("15:04 MST"))
	assert.Equal(t, time.Hour, last.Sub(first))
}

func TestStartOf(t *testing.T) {
	cal := utcCalendar(WithFirstWeekday(time.Monday))
	date := time.Date(2020, time.June, 20, 20, 5, 9, 0, time.UTC)

	assert.Equal(t, time.Date(2020, time.June, 20, 0, 0, 0, 0, time.UTC), cal.StartOfDay(date))

	start, ok := cal.StartOf(WeekOfYear, date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC), start)

	start, ok = cal.StartOf(Quarter, date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC), start)

	_, ok = cal.StartOf(Weekday, date)
	assert.False(t, ok)
}

func TestRelativeDayChecks(t *testing.T) {
	fixed := time.Date(2020, time.June, 20, 10, 0, 0, 0, time.UTC)
	cal := utcCalendar(WithClock(func() time.Time { return fixed }))

	assert.True(t, cal.IsInToday(fixed.Add(13*time.Hour)))
	assert.False(t, cal.IsInToday(fixed.Add(14*time.Hour)))
	assert.True(t, cal.IsInYesterday(fixed.Add(-11*time.Hour)))
	assert.True(t, cal.IsInTomorrow(fixed.Add(14*time.Hour)))
	assert.True(t, cal.IsInWeekend(fixed))
	assert.False(t, cal.IsInWeekend(fixed.AddDate(0, 0, 2)))
}

func TestIsSame(t *testing.T) {
	cal := utcCalendar()
	a := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2020, time.June, 30, 23, 0, 0, 0, time.UTC)

	assert.True(t, cal.IsSame(a, b, Month))
	assert.True(t, cal.IsSame(a, b, Year))
	assert.False(t, cal.IsSame(a, b, Day))
	assert.False(t, cal.IsSame(a, a.AddDate(1, 0, 0), Month))
}

func TestComponentsBetween(t *testing.T) {
	cal := utcCalendar()
	start := time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, time.March, 3, 4, 30, 0, 0, time.UTC)

	diff := cal.ComponentsBetween(Year|Month|Day|Hour|Minute, start, end)
	assert.Equal(t, 1, diff.Get(Year))
	assert.Equal(t, 1, diff.Get(Month))
	assert.Equal(t, 3, diff.Get(Day))
	assert.Equal(t, 4, diff.Get(Hour))
	assert.Equal(t, 30, diff.Get(Minute))

	reversed := cal.ComponentsBetween(Day|Hour, end, start)
	forward := cal.ComponentsBetween(Day|Hour, start, end)
	assert.Equal(t, forward.Negated(), reversed)

	onlyHours := cal.ComponentsBetween(Hour, start, start.Add(76*time.Hour))
	assert.Equal(t, 76, onlyHours.Get(Hour))
	assert.False(t, onlyHours.Has(Day))
}

func TestComponentsHelpers(t *testing.T) {
	c := Components{}.With(Day, 3).With(Hour, 4)

	assert.True(t, c.Has(Day))
	assert.False(t, c.Has(Minute))
	assert.Equal(t, Day|Hour, c.Units())
	assert.Equal(t, "{day: 3, hour: 4}", c.String())
	assert.False(t, c.IsZero())

	c.Clear(Day)
	_, ok := c.Value(Day)
	assert.False(t, ok)

	var multi Components
	multi.Set(Day|Hour, 1)
	assert.Equal(t, Unit(0), multi.Units())
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name string
		want Unit
		ok   bool
	}{
		{"day", Day, true},
		{"HOUR", Hour, true},
		{"weekOfYear", WeekOfYear, true},
		{"weekofmonth", WeekOfMonth, true},
		{"yearForWeekOfYear", YearForWeekOfYear, true},
		{"fortnight", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseUnit(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
