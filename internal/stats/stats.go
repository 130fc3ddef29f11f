// Package stats computes aggregate views over tracked entities: per-habit
// streaks and completion, daily completion series, and the calorie summary.
// All functions are pure; persistence lives in the store.
package stats

import (
	"sort"
	"time"

	"daybook/internal/dates"
	"daybook/internal/model"
)

// HabitStats holds aggregate numbers for a single habit.
type HabitStats struct {
	HabitID       string
	Name          string
	TotalDone     int
	Done7d        int
	Done30d       int
	CurrentStreak int
	BestStreak    int
	Rate30d       float64 // share of the last 30 days done, 0..1
}

// ForHabit computes stats for one habit as of now.
func ForHabit(h model.Habit, now time.Time) HabitStats {
	st := HabitStats{
		HabitID:   h.ID,
		Name:      h.Name,
		TotalDone: h.InteractionCount(),
	}

	today := dates.Midnight(now)
	for i := 0; i < 30; i++ {
		day := today.AddDate(0, 0, -i)
		if !h.InteractedOn(day) {
			continue
		}
		st.Done30d++
		if i < 7 {
			st.Done7d++
		}
	}
	st.Rate30d = float64(st.Done30d) / 30

	st.CurrentStreak = currentStreak(h, today)
	st.BestStreak = bestStreak(h)

	return st
}

// currentStreak counts consecutive done-days ending at today. A streak that
// is merely missing today (not yet toggled) still counts from yesterday.
func currentStreak(h model.Habit, today time.Time) int {
	day := today
	if !h.InteractedOn(day) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for h.InteractedOn(day) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// bestStreak scans the full interaction history for the longest run of
// consecutive done-days.
func bestStreak(h model.Habit) int {
	var done []time.Time
	for _, di := range h.DailyInteractions {
		if di.Interacted {
			done = append(done, dates.Midnight(di.Day))
		}
	}
	if len(done) == 0 {
		return 0
	}

	// Interactions are appended in toggle order, not calendar order.
	sort.Slice(done, func(i, j int) bool { return done[i].Before(done[j]) })

	best, run := 1, 1
	for i := 1; i < len(done); i++ {
		if dates.SameDay(done[i], done[i-1]) {
			continue
		}
		if dates.SameDay(done[i], done[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// DailyCompletion holds the share of habits done on one calendar day.
type DailyCompletion struct {
	Date  time.Time
	Done  int
	Total int
	Rate  float64
}

// AggregateDailyCompletion computes the completion series for the given
// number of days ending at now, oldest first.
func AggregateDailyCompletion(habits []model.Habit, days int, now time.Time) []DailyCompletion {
	if days <= 0 || len(habits) == 0 {
		return nil
	}

	today := dates.Midnight(now)
	out := make([]DailyCompletion, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dc := DailyCompletion{Date: day, Total: len(habits)}
		for _, h := range habits {
			if h.InteractedOn(day) {
				dc.Done++
			}
		}
		dc.Rate = float64(dc.Done) / float64(dc.Total)
		out = append(out, dc)
	}
	return out
}

// WeekRow returns the week-strip cells for a habit: one done-flag per strip
// day (8 cells, the last spilling into the next week).
func WeekRow(h model.Habit, t time.Time, ws dates.WeekStart) []bool {
	strip := dates.WeekStrip(t, ws)
	row := make([]bool, len(strip))
	for i, day := range strip {
		row[i] = h.InteractedOn(day)
	}
	return row
}

// MonthGrid returns a done-flag per day of the given month.
func MonthGrid(h model.Habit, month time.Month, year int) []bool {
	days := dates.DaysInMonth(month, year)
	grid := make([]bool, len(days))
	for i, day := range days {
		grid[i] = h.InteractedOn(day)
	}
	return grid
}

// CalorieSummary is the presentation view of the calorie record. Remaining
// is clamped to zero here, at the display boundary; the stored value is not.
type CalorieSummary struct {
	Goal      int
	Consumed  int
	Burned    int
	Remaining int  // clamped, for display
	Over      bool // true when the unclamped remaining went negative
	Progress  float64
}

// SummarizeCalories derives the display summary from a calorie record.
func SummarizeCalories(c model.CalorieData) CalorieSummary {
	s := CalorieSummary{
		Goal:     c.Goal,
		Consumed: c.Consumed,
		Burned:   c.Burned,
	}

	remaining := c.Remaining()
	if remaining < 0 {
		s.Over = true
		s.Remaining = 0
	} else {
		s.Remaining = remaining
	}

	if c.Goal > 0 {
		s.Progress = float64(c.Consumed-c.Burned) / float64(c.Goal)
		if s.Progress < 0 {
			s.Progress = 0
		}
		if s.Progress > 1 {
			s.Progress = 1
		}
	}

	return s
}
