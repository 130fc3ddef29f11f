package stats

import (
	"testing"
	"time"

	"daybook/internal/dates"
	"daybook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habitDoneOn(name string, days ...time.Time) model.Habit {
	h := model.NewHabit(name)
	for _, d := range days {
		h.Toggle(d)
	}
	return h
}

func TestForHabitCounts(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	today := dates.Midnight(now)

	h := habitDoneOn("run",
		today,
		today.AddDate(0, 0, -1),
		today.AddDate(0, 0, -2),
		today.AddDate(0, 0, -10),
		today.AddDate(0, 0, -40), // outside the 30-day window
	)

	st := ForHabit(h, now)
	assert.Equal(t, "run", st.Name)
	assert.Equal(t, 5, st.TotalDone)
	assert.Equal(t, 3, st.Done7d)
	assert.Equal(t, 4, st.Done30d)
	assert.InDelta(t, 4.0/30, st.Rate30d, 1e-9)
	assert.Equal(t, 3, st.CurrentStreak)
}

func TestCurrentStreakSurvivesUntoggledToday(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	today := dates.Midnight(now)

	// Done yesterday and the day before, not yet today
	h := habitDoneOn("run", today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))

	st := ForHabit(h, now)
	assert.Equal(t, 2, st.CurrentStreak)
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	today := dates.Midnight(now)

	h := habitDoneOn("run", today, today.AddDate(0, 0, -3))

	st := ForHabit(h, now)
	assert.Equal(t, 1, st.CurrentStreak)
}

func TestBestStreakUnaffectedByToggleOrder(t *testing.T) {
	today := dates.Midnight(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))

	// Five-day run logged out of order, plus a detached earlier day
	h := habitDoneOn("run",
		today.AddDate(0, 0, -2),
		today.AddDate(0, 0, -6),
		today.AddDate(0, 0, -4),
		today.AddDate(0, 0, -3),
		today.AddDate(0, 0, -5),
		today.AddDate(0, 0, -20),
	)

	st := ForHabit(h, today)
	assert.Equal(t, 5, st.BestStreak)
}

func TestBestStreakIgnoresToggledOffDays(t *testing.T) {
	today := dates.Midnight(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))

	h := habitDoneOn("run", today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))
	h.Toggle(today.AddDate(0, 0, -1)) // un-done the middle day

	st := ForHabit(h, today)
	assert.Equal(t, 1, st.BestStreak)
	assert.Equal(t, 1, st.CurrentStreak)
}

func TestAggregateDailyCompletion(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	today := dates.Midnight(now)

	a := habitDoneOn("a", today, today.AddDate(0, 0, -1))
	b := habitDoneOn("b", today)

	series := AggregateDailyCompletion([]model.Habit{a, b}, 3, now)
	require.Len(t, series, 3)

	// Oldest first
	assert.True(t, dates.SameDay(series[0].Date, today.AddDate(0, 0, -2)))
	assert.True(t, dates.SameDay(series[2].Date, today))

	assert.Equal(t, 0, series[0].Done)
	assert.Equal(t, 1, series[1].Done)
	assert.Equal(t, 2, series[2].Done)
	assert.InDelta(t, 1.0, series[2].Rate, 1e-9)
}

func TestAggregateDailyCompletionEmpty(t *testing.T) {
	assert.Nil(t, AggregateDailyCompletion(nil, 7, time.Now()))
	assert.Nil(t, AggregateDailyCompletion([]model.Habit{model.NewHabit("x")}, 0, time.Now()))
}

func TestWeekRowMatchesStrip(t *testing.T) {
	wed := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local)
	strip := dates.WeekStrip(wed, dates.WeekStartMonday)

	h := habitDoneOn("run", strip[0], strip[2], strip[7])

	row := WeekRow(h, wed, dates.WeekStartMonday)
	require.Len(t, row, dates.WeekStripLen)
	assert.Equal(t, []bool{true, false, true, false, false, false, false, true}, row)
}

func TestMonthGrid(t *testing.T) {
	h := habitDoneOn("run",
		time.Date(2024, time.February, 1, 8, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 8, 0, 0, 0, time.Local),
	)

	grid := MonthGrid(h, time.February, 2024)
	require.Len(t, grid, 29)
	assert.True(t, grid[0])
	assert.True(t, grid[28])
	assert.False(t, grid[14])
}

func TestSummarizeCaloriesUnderGoal(t *testing.T) {
	s := SummarizeCalories(model.CalorieData{Goal: 2000, Consumed: 1500, Burned: 300})

	assert.Equal(t, 800, s.Remaining)
	assert.False(t, s.Over)
	assert.InDelta(t, 0.6, s.Progress, 1e-9)
}

func TestSummarizeCaloriesOverGoalClampsAtDisplay(t *testing.T) {
	s := SummarizeCalories(model.CalorieData{Goal: 2000, Consumed: 2600, Burned: 100})

	assert.Equal(t, 0, s.Remaining)
	assert.True(t, s.Over)
	assert.InDelta(t, 1.0, s.Progress, 1e-9)
}

func TestSummarizeCaloriesBurnExceedsIntake(t *testing.T) {
	s := SummarizeCalories(model.CalorieData{Goal: 2000, Consumed: 200, Burned: 700})

	assert.Equal(t, 2500, s.Remaining)
	assert.False(t, s.Over)
	assert.Zero(t, s.Progress)
}

func TestSummarizeCaloriesZeroGoal(t *testing.T) {
	s := SummarizeCalories(model.CalorieData{Consumed: 500})
	assert.Zero(t, s.Progress)
}
