package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"time"

	"daybook/internal/model"
)

// Collection names the five persisted entity sets. Each is one key in the
// key-value area.
type Collection string

const (
	CollectionHabits        Collection = "habits"
	CollectionTasks         Collection = "tasks"
	CollectionCalorieGoal   Collection = "calorieGoal"
	CollectionFinancialData Collection = "financialData"
	CollectionCalorieData   Collection = "calorieData"
)

// Collections lists all persisted collections in hydration order.
var Collections = []Collection{
	CollectionHabits,
	CollectionTasks,
	CollectionCalorieGoal,
	CollectionFinancialData,
	CollectionCalorieData,
}

// LoadReport records how one collection was hydrated at startup.
// Defaulted means the persisted blob was missing or failed to decode and the
// collection was left at its zero value; Err holds the decode failure cause
// (nil when the key simply did not exist yet).
type LoadReport struct {
	Collection Collection
	Defaulted  bool
	Err        error
}

// Subscriber is notified synchronously after every mutation with the
// collection that changed.
type Subscriber func(Collection)

// Store owns the five in-memory collections and mirrors each to the
// key-value area on every mutation. It is constructed once at startup and
// injected into whichever surface consumes it. Single-threaded by design:
// all mutations happen on the caller's goroutine and block until the
// persistence write completes.
type Store struct {
	kv  *KV
	log *slog.Logger

	habits      []model.Habit
	tasks       []model.Task
	calorieGoal model.CalorieGoal
	calorieData model.CalorieData
	financial   model.FinancialData

	subs    []Subscriber
	reports []LoadReport
}

// Open hydrates a store from the key-value area. Decode failures are logged
// and replaced with zero-value defaults; they never fail the open.
func Open(kv *KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, log: logger}

	s.reports = []LoadReport{
		s.hydrate(CollectionHabits, &s.habits),
		s.hydrate(CollectionTasks, &s.tasks),
		s.hydrate(CollectionCalorieGoal, &s.calorieGoal),
		s.hydrate(CollectionFinancialData, &s.financial),
		s.hydrate(CollectionCalorieData, &s.calorieData),
	}

	return s
}

// hydrate reads one collection from the key-value area into dst.
func (s *Store) hydrate(col Collection, dst any) LoadReport {
	raw, err := s.kv.Get(string(col))
	if errors.Is(err, ErrNotFound) {
		return LoadReport{Collection: col, Defaulted: true}
	}
	if err != nil {
		s.log.Warn("reading collection failed, using default",
			"collection", col, "error", err)
		return LoadReport{Collection: col, Defaulted: true, Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("decoding collection failed, using default",
			"collection", col, "error", err)
		return LoadReport{Collection: col, Defaulted: true, Err: err}
	}
	return LoadReport{Collection: col}
}

// LoadReports returns the per-collection hydration outcomes from Open.
func (s *Store) LoadReports() []LoadReport {
	out := make([]LoadReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// Subscribe registers fn to run synchronously after every mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// persist re-encodes the named collection and overwrites its key, then
// notifies subscribers. Encode/write failures are logged and swallowed: the
// in-memory state stays correct, the change is simply lost on restart.
func (s *Store) persist(col Collection, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding collection failed, write dropped",
			"collection", col, "error", err)
	} else if err := s.kv.Put(string(col), raw); err != nil {
		s.log.Error("writing collection failed, write dropped",
			"collection", col, "error", err)
	}

	for _, fn := range s.subs {
		fn(col)
	}
}

// ─── Habits ─────────────────────────────────────────────────────

// Habits returns a deep copy of the habit list.
func (s *Store) Habits() []model.Habit {
	out := make([]model.Habit, len(s.habits))
	for i, h := range s.habits {
		out[i] = h.Clone()
	}
	return out
}

// HabitByID returns a copy of the habit with the given ID.
func (s *Store) HabitByID(id string) (model.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h.Clone(), true
		}
	}
	return model.Habit{}, false
}

// AddHabit appends a new habit with an empty interaction list.
func (s *Store) AddHabit(name string) model.Habit {
	h := model.NewHabit(name)
	s.habits = append(s.habits, h)
	s.persist(CollectionHabits, s.habits)
	return h
}

// ToggleInteraction flips the interaction state of a habit for the calendar
// day containing date. Unknown habit IDs are a no-op.
func (s *Store) ToggleInteraction(habitID string, date time.Time) {
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits[i].Toggle(date)
			s.persist(CollectionHabits, s.habits)
			return
		}
	}
}

// DeleteHabit removes the habit with the given ID if present.
func (s *Store) DeleteHabit(habitID string) {
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			s.persist(CollectionHabits, s.habits)
			return
		}
	}
}

// ─── Tasks ──────────────────────────────────────────────────────

// Tasks returns a copy of the task list.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// AddTask appends a new task.
func (s *Store) AddTask(title, note string) model.Task {
	t := model.NewTask(title, note)
	s.tasks = append(s.tasks, t)
	s.persist(CollectionTasks, s.tasks)
	return t
}

// RemoveTasks removes the tasks at the given ordinal positions. The batch is
// order-independent: indices are deduplicated and removed from the end so
// earlier removals never shift later ones. Out-of-range indices are ignored.
func (s *Store) RemoveTasks(indices []int) {
	if len(indices) == 0 {
		return
	}

	uniq := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.tasks) {
			uniq[idx] = struct{}{}
		}
	}
	if len(uniq) == 0 {
		return
	}

	sorted := make([]int, 0, len(uniq))
	for idx := range uniq {
		sorted = append(sorted, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, idx := range sorted {
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	}
	s.persist(CollectionTasks, s.tasks)
}

// UpdateTask replaces the task with a matching ID wholesale. Unknown IDs are
// a no-op.
func (s *Store) UpdateTask(task model.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			s.persist(CollectionTasks, s.tasks)
			return
		}
	}
}

// ─── Calories ───────────────────────────────────────────────────

// CalorieData returns the current calorie record.
func (s *Store) CalorieData() model.CalorieData {
	return s.calorieData
}

// CalorieGoal returns the legacy goal record.
func (s *Store) CalorieGoal() model.CalorieGoal {
	return s.calorieGoal
}

// SetCalorieGoal sets the daily goal in both the legacy record and the
// calorie data, persisting each.
func (s *Store) SetCalorieGoal(goal int) {
	s.calorieGoal.DailyGoal = goal
	s.persist(CollectionCalorieGoal, s.calorieGoal)

	s.calorieData.Goal = goal
	s.persist(CollectionCalorieData, s.calorieData)
}

// AddConsumedCalories adds n to the consumed total. No validation: negative
// values subtract.
func (s *Store) AddConsumedCalories(n int) {
	s.calorieData.Consumed += n
	s.persist(CollectionCalorieData, s.calorieData)
}

// AddBurnedCalories adds n to the burned total.
func (s *Store) AddBurnedCalories(n int) {
	s.calorieData.Burned += n
	s.persist(CollectionCalorieData, s.calorieData)
}

// ResetToday zeroes consumed and burned, leaving the goal untouched.
func (s *Store) ResetToday() {
	s.calorieData.Consumed = 0
	s.calorieData.Burned = 0
	s.persist(CollectionCalorieData, s.calorieData)
}

// ─── Finances ───────────────────────────────────────────────────

// FinancialData returns the current financial record.
func (s *Store) FinancialData() model.FinancialData {
	return s.financial
}

// SetMonthlyIncome replaces the monthly income.
func (s *Store) SetMonthlyIncome(amount float64) {
	s.financial.MonthlyIncome = amount
	s.persist(CollectionFinancialData, s.financial)
}
