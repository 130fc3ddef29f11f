package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	h := src.AddHabit("run")
	src.ToggleInteraction(h.ID, time.Now())
	src.AddTask("water plants", "")
	src.SetCalorieGoal(1800)
	src.AddConsumedCalories(600)
	src.SetMonthlyIncome(2750)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, src.Export(path))

	dst := newTestStore(t)
	dst.AddHabit("stale habit that import replaces")
	require.NoError(t, dst.Import(path))

	habits := dst.Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "run", habits[0].Name)
	assert.True(t, habits[0].InteractedOn(time.Now()))

	tasks := dst.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "water plants", tasks[0].Title)

	assert.Equal(t, 1800, dst.CalorieGoal().DailyGoal)
	assert.Equal(t, 600, dst.CalorieData().Consumed)
	assert.Equal(t, 2750.0, dst.FinancialData().MonthlyIncome)
}

func TestImportPersistsReplacedState(t *testing.T) {
	src := newTestStore(t)
	src.AddHabit("run")

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, src.Export(path))

	dbPath := filepath.Join(t.TempDir(), "test.db")
	kv, err := OpenKV(dbPath)
	require.NoError(t, err)

	dst := Open(kv, quietLogger())
	require.NoError(t, dst.Import(path))
	require.NoError(t, kv.Close())

	kv2, err := OpenKV(dbPath)
	require.NoError(t, err)
	defer kv2.Close()

	reloaded := Open(kv2, quietLogger())
	require.Len(t, reloaded.Habits(), 1)
	assert.Equal(t, "run", reloaded.Habits()[0].Name)
}

func TestImportMalformedSnapshotFailsAndKeepsState(t *testing.T) {
	s := newTestStore(t)
	s.AddHabit("keep me")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	err := s.Import(path)
	require.Error(t, err)

	habits := s.Habits()
	require.Len(t, habits, 1)
	assert.Equal(t, "keep me", habits[0].Name)
}

func TestImportMissingFileFails(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Import(filepath.Join(t.TempDir(), "absent.json")))
}
