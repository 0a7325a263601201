package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/errors"
	"project-tracker/internal/ledger"
	"project-tracker/internal/registry"
)

func populatedState(t *testing.T) (*registry.Registry, *ledger.Ledger) {
	t.Helper()

	reg := registry.New()
	projectID := reg.Add("Website", nil)

	led := ledger.New()
	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	eventID := led.AddProjectEvent("Wireframes", nil, projectID, &start)
	end := start.Add(2 * time.Hour)
	require.NoError(t, led.Complete(eventID, &end))

	lunchStart := start.Add(3 * time.Hour)
	led.AddNonProjectEvent("Lunch", nil, &lunchStart)

	return reg, led
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	reg, led := populatedState(t)
	require.NoError(t, store.Save(Capture(reg, led)))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Len(t, loaded.Projects, 1)
	assert.Len(t, loaded.Events, 2)
	assert.Len(t, loaded.TimeRecords, 1)
	assert.Len(t, loaded.WeeklyReports, 0)

	restoredReg := registry.New()
	restoredLed := ledger.New()
	Restore(loaded, restoredReg, restoredLed)

	current, ok := restoredReg.Current()
	require.True(t, ok)
	assert.Equal(t, "Website", current.Name)
	assert.Equal(t, 2, restoredLed.EventCount())
	assert.Equal(t, 1, restoredLed.RecordCount())

	records := restoredLed.Records()
	require.Len(t, records, 1)
	assert.Equal(t, int64(120), records[0].DurationMinutes)
}

func TestStore_LoadMissingFileReturnsEmptySnapshot(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	snap, err := store.Load()
	require.NoError(t, err)

	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Events)
	assert.Empty(t, snap.TimeRecords)
}

func TestStore_SaveIsDeterministic(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	reg, led := populatedState(t)
	require.NoError(t, store.Save(Capture(reg, led)))
	first, err := os.ReadFile(store.DataFilePath())
	require.NoError(t, err)

	require.NoError(t, store.Save(Capture(reg, led)))
	second, err := os.ReadFile(store.DataFilePath())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_SnapshotFieldNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	reg, led := populatedState(t)
	require.NoError(t, store.Save(Capture(reg, led)))

	data, err := os.ReadFile(store.DataFilePath())
	require.NoError(t, err)

	content := string(data)
	for _, field := range []string{
		`"projects"`, `"events"`, `"time_records"`, `"weekly_reports"`,
		`"is_active"`, `"event_type"`, `"start_time"`, `"end_time"`,
		`"event_id"`, `"project_id"`, `"duration_minutes"`,
		`"ProjectRelated"`, `"NonProject"`,
	} {
		assert.Contains(t, content, field)
	}
}

func TestStore_Backups(t *testing.T) {
	t.Run("backup round-trips through restore", func(t *testing.T) {
		store, err := New(t.TempDir())
		require.NoError(t, err)

		reg, led := populatedState(t)
		path, err := store.CreateBackup(Capture(reg, led))
		require.NoError(t, err)
		assert.FileExists(t, path)

		snap, err := store.RestoreBackup(path)
		require.NoError(t, err)
		assert.Len(t, snap.Projects, 1)
		assert.Len(t, snap.Events, 2)
	})

	t.Run("missing backup returns not found", func(t *testing.T) {
		store, err := New(t.TempDir())
		require.NoError(t, err)

		_, err = store.RestoreBackup(filepath.Join(t.TempDir(), "backup_nope.json"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("list returns backups newest first", func(t *testing.T) {
		dir := t.TempDir()
		store, err := New(dir)
		require.NoError(t, err)

		// Fabricate timestamped names so ordering is deterministic
		older := filepath.Join(dir, "backup_20260801_090000.json")
		newer := filepath.Join(dir, "backup_20260802_090000.json")
		require.NoError(t, os.WriteFile(older, []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(newer, []byte("{}"), 0644))

		backups, err := store.ListBackups()
		require.NoError(t, err)
		require.Len(t, backups, 2)
		assert.Equal(t, newer, backups[0])
		assert.Equal(t, older, backups[1])
	})

	t.Run("cleanup keeps the most recent backups", func(t *testing.T) {
		dir := t.TempDir()
		store, err := New(dir)
		require.NoError(t, err)

		names := []string{
			"backup_20260801_090000.json",
			"backup_20260802_090000.json",
			"backup_20260803_090000.json",
		}
		for _, name := range names {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
		}

		removed, err := store.CleanupBackups(1)
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		backups, err := store.ListBackups()
		require.NoError(t, err)
		require.Len(t, backups, 1)
		assert.Equal(t, filepath.Join(dir, "backup_20260803_090000.json"), backups[0])
	})
}
