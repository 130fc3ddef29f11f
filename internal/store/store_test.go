package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"daybook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(newTestKV(t), quietLogger())
}

func TestOpenEmptyDefaultsEverything(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Habits())
	assert.Empty(t, s.Tasks())
	assert.Zero(t, s.CalorieData())
	assert.Zero(t, s.CalorieGoal())
	assert.Zero(t, s.FinancialData())

	reports := s.LoadReports()
	require.Len(t, reports, len(Collections))
	for _, r := range reports {
		assert.True(t, r.Defaulted, "collection %s", r.Collection)
		assert.NoError(t, r.Err, "missing key is not a decode failure")
	}
}

func TestCorruptBlobDefaultsWithError(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Put(string(CollectionHabits), []byte("{not json")))

	s := Open(kv, quietLogger())

	assert.Empty(t, s.Habits())
	for _, r := range s.LoadReports() {
		if r.Collection == CollectionHabits {
			assert.True(t, r.Defaulted)
			assert.Error(t, r.Err)
		}
	}
}

func TestCorruptBlobDoesNotAffectOtherCollections(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Put(string(CollectionTasks), []byte("garbage")))
	require.NoError(t, kv.Put(string(CollectionCalorieData),
		[]byte(`{"goal":1800,"consumed":500,"burned":0}`)))

	s := Open(kv, quietLogger())

	assert.Empty(t, s.Tasks())
	assert.Equal(t, 1800, s.CalorieData().Goal)
	assert.Equal(t, 500, s.CalorieData().Consumed)
}

func TestMutationsSurviveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)

	s := Open(kv, quietLogger())
	h := s.AddHabit("read")
	s.ToggleInteraction(h.ID, time.Now())
	s.AddTask("water plants", "the ficus too")
	s.SetCalorieGoal(1800)
	s.AddConsumedCalories(450)
	s.SetMonthlyIncome(3200.50)
	require.NoError(t, kv.Close())

	kv2, err := OpenKV(path)
	require.NoError(t, err)
	defer kv2.Close()

	s2 := Open(kv2, quietLogger())

	habits := s2.Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "read", habits[0].Name)
	assert.True(t, habits[0].InteractedOn(time.Now()))

	tasks := s2.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "water plants", tasks[0].Title)
	assert.Equal(t, "the ficus too", tasks[0].Note)

	assert.Equal(t, 1800, s2.CalorieGoal().DailyGoal)
	assert.Equal(t, 1800, s2.CalorieData().Goal)
	assert.Equal(t, 450, s2.CalorieData().Consumed)
	assert.Equal(t, 3200.50, s2.FinancialData().MonthlyIncome)
}

func TestToggleInteractionIsPerHabit(t *testing.T) {
	s := newTestStore(t)
	a := s.AddHabit("run")
	b := s.AddHabit("read")
	today := time.Now()

	s.ToggleInteraction(a.ID, today)

	ha, ok := s.HabitByID(a.ID)
	require.True(t, ok)
	hb, ok := s.HabitByID(b.ID)
	require.True(t, ok)

	assert.True(t, ha.InteractedOn(today))
	assert.False(t, hb.InteractedOn(today))

	// Unknown IDs are a no-op
	s.ToggleInteraction("no-such-id", today)
}

func TestDeleteHabitLeavesOthers(t *testing.T) {
	s := newTestStore(t)
	a := s.AddHabit("run")
	b := s.AddHabit("read")
	c := s.AddHabit("stretch")

	s.DeleteHabit(b.ID)

	habits := s.Habits()
	require.Len(t, habits, 2)
	assert.Equal(t, a.ID, habits[0].ID)
	assert.Equal(t, c.ID, habits[1].ID)
}

func TestHabitsReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	h := s.AddHabit("run")

	got := s.Habits()
	got[0].Toggle(time.Now())

	fresh, ok := s.HabitByID(h.ID)
	require.True(t, ok)
	assert.False(t, fresh.InteractedOn(time.Now()))
}

func TestRemoveTasksBatchIsOrderIndependent(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("a", "")
	s.AddTask("b", "")
	s.AddTask("c", "")

	// Removing 0 and 2 must leave "b": earlier removals may not shift
	// later indices within the same batch.
	s.RemoveTasks([]int{0, 2})

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestRemoveTasksIgnoresDuplicatesAndOutOfRange(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("a", "")
	s.AddTask("b", "")

	s.RemoveTasks([]int{1, 1, 5, -3})

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestUpdateTask(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask("old", "note")

	task.Title = "new"
	task.Note = ""
	s.UpdateTask(task)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "new", tasks[0].Title)
	assert.Empty(t, tasks[0].Note)

	// Unknown IDs are a no-op
	s.UpdateTask(model.Task{ID: "no-such-id", Title: "x"})
	assert.Len(t, s.Tasks(), 1)
}

func TestSetCalorieGoalWritesBothRecords(t *testing.T) {
	s := newTestStore(t)
	s.SetCalorieGoal(2200)

	assert.Equal(t, 2200, s.CalorieGoal().DailyGoal)
	assert.Equal(t, 2200, s.CalorieData().Goal)
}

func TestResetTodayKeepsGoal(t *testing.T) {
	s := newTestStore(t)
	s.SetCalorieGoal(2000)
	s.AddConsumedCalories(1500)
	s.AddBurnedCalories(300)

	s.ResetToday()

	c := s.CalorieData()
	assert.Equal(t, 2000, c.Goal)
	assert.Zero(t, c.Consumed)
	assert.Zero(t, c.Burned)
}

func TestMutationsSurviveWriteFailure(t *testing.T) {
	kv := newTestKV(t)
	s := Open(kv, quietLogger())

	var notified []Collection
	s.Subscribe(func(c Collection) { notified = append(notified, c) })

	// With the database gone, every persist fails; mutations must still
	// update in-memory state and notify subscribers.
	require.NoError(t, kv.Close())

	h := s.AddHabit("run")
	s.ToggleInteraction(h.ID, time.Now())
	s.AddConsumedCalories(300)

	habits := s.Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "run", habits[0].Name)
	assert.True(t, habits[0].InteractedOn(time.Now()))
	assert.Equal(t, 300, s.CalorieData().Consumed)

	assert.Equal(t, []Collection{
		CollectionHabits,
		CollectionHabits,
		CollectionCalorieData,
	}, notified)
}

func TestSubscribeNotifiesPerMutation(t *testing.T) {
	s := newTestStore(t)

	var got []Collection
	s.Subscribe(func(c Collection) { got = append(got, c) })

	s.AddHabit("run")
	s.AddTask("a", "")
	s.SetMonthlyIncome(100)

	assert.Equal(t, []Collection{
		CollectionHabits,
		CollectionTasks,
		CollectionFinancialData,
	}, got)

	// SetCalorieGoal persists two collections, so it notifies twice
	got = nil
	s.SetCalorieGoal(1800)
	assert.Equal(t, []Collection{
		CollectionCalorieGoal,
		CollectionCalorieData,
	}, got)
}
