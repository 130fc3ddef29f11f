package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.March, 5, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.Local)
	c := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestParseWeekStart(t *testing.T) {
	assert.Equal(t, WeekStartSunday, ParseWeekStart("sunday"))
	assert.Equal(t, WeekStartSunday, ParseWeekStart("Sunday"))
	assert.Equal(t, WeekStartMonday, ParseWeekStart("monday"))
	assert.Equal(t, WeekStartMonday, ParseWeekStart(""))
	assert.Equal(t, WeekStartMonday, ParseWeekStart("banana"))
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday, 2024-03-06
	wed := time.Date(2024, time.March, 6, 15, 30, 0, 0, time.Local)

	mon := StartOfWeek(wed, WeekStartMonday)
	assert.Equal(t, time.Monday, mon.Weekday())
	assert.Equal(t, 4, mon.Day())
	assert.Equal(t, 0, mon.Hour())

	sun := StartOfWeek(wed, WeekStartSunday)
	assert.Equal(t, time.Sunday, sun.Weekday())
	assert.Equal(t, 3, sun.Day())
}

func TestStartOfWeekOnTheStartDay(t *testing.T) {
	mon := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	got := StartOfWeek(mon, WeekStartMonday)
	assert.True(t, SameDay(mon, got))
}

func TestWeekStripLengthAndSpill(t *testing.T) {
	wed := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local)
	strip := WeekStrip(wed, WeekStartMonday)

	require.Len(t, strip, WeekStripLen)
	assert.Equal(t, time.Monday, strip[0].Weekday())
	// Cell 8 spills into the following week
	assert.Equal(t, time.Monday, strip[7].Weekday())
	assert.Equal(t, 11, strip[7].Day())

	for i := 1; i < len(strip); i++ {
		assert.Equal(t, strip[i-1].AddDate(0, 0, 1), strip[i])
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Len(t, DaysInMonth(time.February, 2024), 29)
	assert.Len(t, DaysInMonth(time.February, 2023), 28)
	assert.Len(t, DaysInMonth(time.January, 2024), 31)
	assert.Len(t, DaysInMonth(time.April, 2024), 30)

	days := DaysInMonth(time.February, 2024)
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 29, days[len(days)-1].Day())
}

func TestDaysInYear(t *testing.T) {
	assert.Len(t, DaysInYear(2024), 366)
	assert.Len(t, DaysInYear(2023), 365)
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
}
