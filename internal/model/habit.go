// Package model defines the entities tracked by daybook.
package model

import (
	"time"

	"daybook/internal/dates"

	"github.com/google/uuid"
)

// DailyInteraction records whether a habit happened on one calendar day.
// It exists only as a child of a Habit.
type DailyInteraction struct {
	Day        time.Time `json:"day"`
	Interacted bool      `json:"interacted"`
}

// Habit is a user-defined recurring activity tracked per calendar day.
// Invariant: at most one DailyInteraction per distinct calendar day
// (same-day matching ignores time-of-day).
type Habit struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	DailyInteractions []DailyInteraction `json:"dailyInteractions"`
}

// NewHabit creates a habit with a fresh ID and an empty interaction list.
func NewHabit(name string) Habit {
	return Habit{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// InteractedOn reports whether the habit was done on the given calendar day.
func (h Habit) InteractedOn(day time.Time) bool {
	for _, di := range h.DailyInteractions {
		if dates.SameDay(di.Day, day) && di.Interacted {
			return true
		}
	}
	return false
}

// Toggle flips the interaction state for the given calendar day.
// The first toggle on a day appends an entry with Interacted=true;
// later toggles on the same day flip the existing entry in place.
func (h *Habit) Toggle(day time.Time) {
	for i, di := range h.DailyInteractions {
		if dates.SameDay(di.Day, day) {
			h.DailyInteractions[i].Interacted = !di.Interacted
			return
		}
	}
	h.DailyInteractions = append(h.DailyInteractions, DailyInteraction{
		Day:        day,
		Interacted: true,
	})
}

// InteractionCount returns the number of days the habit was done.
func (h Habit) InteractionCount() int {
	n := 0
	for _, di := range h.DailyInteractions {
		if di.Interacted {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers never share the interaction slice.
func (h Habit) Clone() Habit {
	cp := h
	cp.DailyInteractions = make([]DailyInteraction, len(h.DailyInteractions))
	copy(cp.DailyInteractions, h.DailyInteractions)
	return cp
}
