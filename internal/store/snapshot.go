package store

import (
	"encoding/json"
	"fmt"
	"os"

	"daybook/internal/model"
)

// Snapshot is a whole-state export of all five collections. It is a plain
// backup format, not a sync mechanism.
type Snapshot struct {
	Habits        []model.Habit       `json:"habits"`
	Tasks         []model.Task        `json:"tasks"`
	CalorieGoal   model.CalorieGoal   `json:"calorieGoal"`
	CalorieData   model.CalorieData   `json:"calorieData"`
	FinancialData model.FinancialData `json:"financialData"`
}

// Snapshot captures the current in-memory state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Habits:        s.Habits(),
		Tasks:         s.Tasks(),
		CalorieGoal:   s.calorieGoal,
		CalorieData:   s.calorieData,
		FinancialData: s.financial,
	}
}

// Export writes the snapshot as indented JSON to path.
func (s *Store) Export(path string) error {
	raw, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Import replaces all five collections with the snapshot at path and
// persists each. Unlike hydration, a malformed snapshot is an error: the
// caller asked for it explicitly and the current state must not be clobbered
// by garbage.
func (s *Store) Import(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	s.habits = snap.Habits
	s.persist(CollectionHabits, s.habits)
	s.tasks = snap.Tasks
	s.persist(CollectionTasks, s.tasks)
	s.calorieGoal = snap.CalorieGoal
	s.persist(CollectionCalorieGoal, s.calorieGoal)
	s.calorieData = snap.CalorieData
	s.persist(CollectionCalorieData, s.calorieData)
	s.financial = snap.FinancialData
	s.persist(CollectionFinancialData, s.financial)

	return nil
}
