package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewHabitHasIDAndNoInteractions(t *testing.T) {
	h := NewHabit("read")
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "read", h.Name)
	assert.Empty(t, h.DailyInteractions)
}

func TestToggleIsInvolutionPerDay(t *testing.T) {
	h := NewHabit("run")
	d := day(2024, time.March, 5)

	h.Toggle(d)
	assert.True(t, h.InteractedOn(d))

	h.Toggle(d)
	assert.False(t, h.InteractedOn(d))

	h.Toggle(d)
	assert.True(t, h.InteractedOn(d))

	// Repeated toggles flip the existing entry, never add a duplicate
	require.Len(t, h.DailyInteractions, 1)
}

func TestToggleMatchesByCalendarDay(t *testing.T) {
	h := NewHabit("run")
	morning := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 5, 21, 30, 0, 0, time.Local)

	h.Toggle(morning)
	h.Toggle(evening)

	assert.False(t, h.InteractedOn(day(2024, time.March, 5)))
	require.Len(t, h.DailyInteractions, 1)
}

func TestToggleDifferentDaysAreIndependent(t *testing.T) {
	h := NewHabit("run")
	d1 := day(2024, time.March, 5)
	d2 := day(2024, time.March, 6)

	h.Toggle(d1)
	h.Toggle(d2)
	h.Toggle(d1)

	assert.False(t, h.InteractedOn(d1))
	assert.True(t, h.InteractedOn(d2))
	assert.Equal(t, 1, h.InteractionCount())
}

func TestCloneDoesNotShareInteractions(t *testing.T) {
	h := NewHabit("run")
	h.Toggle(day(2024, time.March, 5))

	cp := h.Clone()
	cp.Toggle(day(2024, time.March, 5))

	assert.True(t, h.InteractedOn(day(2024, time.March, 5)))
	assert.False(t, cp.InteractedOn(day(2024, time.March, 5)))
}

func TestCalorieDataRemaining(t *testing.T) {
	c := CalorieData{Goal: 2000, Consumed: 1800, Burned: 300}
	assert.Equal(t, 500, c.Remaining())

	// Unclamped: over-consumption goes negative here
	over := CalorieData{Goal: 2000, Consumed: 2600, Burned: 100}
	assert.Equal(t, -500, over.Remaining())
}
