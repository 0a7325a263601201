package api

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/errors"
	"project-tracker/internal/storage"
)

func newTestAPI(t *testing.T) (API, *storage.Store) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	apiInstance, err := New(store)
	require.NoError(t, err)
	return apiInstance, store
}

func TestAPI_ProjectLifecycle(t *testing.T) {
	apiInstance, _ := newTestAPI(t)

	first, err := apiInstance.AddProject("Website", nil)
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := apiInstance.AddProject("Backend", nil)
	require.NoError(t, err)
	assert.False(t, second.IsActive)

	current, ok := apiInstance.CurrentProject()
	require.True(t, ok)
	assert.Equal(t, first.ID, current.ID)

	require.NoError(t, apiInstance.SwitchProject(second.ID))
	current, ok = apiInstance.CurrentProject()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)

	newName := "Backend v2"
	require.NoError(t, apiInstance.UpdateProject(second.ID, &newName, nil))
	updated, ok := apiInstance.GetProject(second.ID)
	require.True(t, ok)
	assert.Equal(t, "Backend v2", updated.Name)

	require.NoError(t, apiInstance.RemoveProject(second.ID))
	_, ok = apiInstance.CurrentProject()
	assert.False(t, ok)
	assert.Len(t, apiInstance.ListProjects(), 1)
}

func TestAPI_StartCurrentProjectEvent(t *testing.T) {
	t.Run("links to the current project", func(t *testing.T) {
		apiInstance, _ := newTestAPI(t)
		project, err := apiInstance.AddProject("Website", nil)
		require.NoError(t, err)

		event, err := apiInstance.StartCurrentProjectEvent("Wireframes", nil, nil)
		require.NoError(t, err)

		linked, ok := event.Kind.Project()
		require.True(t, ok)
		assert.Equal(t, project.ID, linked)
	})

	t.Run("fails without a current project", func(t *testing.T) {
		apiInstance, _ := newTestAPI(t)

		_, err := apiInstance.StartCurrentProjectEvent("Wireframes", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoActiveProject))
	})
}

func TestAPI_EventLifecycle(t *testing.T) {
	apiInstance, _ := newTestAPI(t)
	project, err := apiInstance.AddProject("Website", nil)
	require.NoError(t, err)

	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	event, err := apiInstance.StartProjectEvent("Wireframes", nil, project.ID, &start)
	require.NoError(t, err)

	lunchStart := start.Add(3 * time.Hour)
	lunch, err := apiInstance.StartNonProjectEvent("Lunch", nil, &lunchStart)
	require.NoError(t, err)

	active, err := apiInstance.ListEvents(FilterActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	end := start.Add(2 * time.Hour)
	require.NoError(t, apiInstance.CompleteEvent(event.ID, &end))

	completed, err := apiInstance.ListEvents(FilterCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, event.ID, completed[0].ID)

	nonProject, err := apiInstance.ListEvents(FilterNonProject)
	require.NoError(t, err)
	require.Len(t, nonProject, 1)
	assert.Equal(t, lunch.ID, nonProject[0].ID)

	_, err = apiInstance.ListEvents("bogus")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	records := apiInstance.ListRecords()
	require.Len(t, records, 1)
	assert.Equal(t, int64(120), records[0].DurationMinutes)

	require.NoError(t, apiInstance.DeleteEvent(event.ID))
	assert.Empty(t, apiInstance.ListRecords())
}

func TestAPI_WeeklyReport(t *testing.T) {
	apiInstance, _ := newTestAPI(t)
	project, err := apiInstance.AddProject("Website", nil)
	require.NoError(t, err)

	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	event, err := apiInstance.StartProjectEvent("Wireframes", nil, project.ID, &start)
	require.NoError(t, err)
	end := start.Add(2 * time.Hour)
	require.NoError(t, apiInstance.CompleteEvent(event.ID, &end))

	report := apiInstance.WeeklyReport(start)
	assert.Equal(t, int64(120), report.TotalProjectTimeMinutes)
	require.Len(t, report.ProjectBreakdown, 1)
	assert.Equal(t, "Website", report.ProjectBreakdown[0].ProjectName)

	summary := apiInstance.WeeklySummary(start)
	assert.Contains(t, summary, "=== Weekly Report ===")
	assert.Contains(t, summary, "Website")

	detailed := apiInstance.DetailedWeeklySummary(start)
	assert.Contains(t, detailed, "Daily totals:")

	monthly := apiInstance.MonthlySummary(2026, time.August)
	assert.Contains(t, monthly, "Period: August 2026")

	analysis := apiInstance.EfficiencyAnalysis(start.AddDate(0, 0, -1), start.AddDate(0, 0, 1))
	assert.Contains(t, analysis, "Time allocation:")
}

func TestAPI_SaveAndReload(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	apiInstance, err := New(store)
	require.NoError(t, err)

	project, err := apiInstance.AddProject("Website", nil)
	require.NoError(t, err)

	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	event, err := apiInstance.StartProjectEvent("Wireframes", nil, project.ID, &start)
	require.NoError(t, err)
	end := start.Add(time.Hour)
	require.NoError(t, apiInstance.CompleteEvent(event.ID, &end))
	require.NoError(t, apiInstance.Save())

	// A fresh instance over the same store sees the saved state
	reloaded, err := New(store)
	require.NoError(t, err)

	current, ok := reloaded.CurrentProject()
	require.True(t, ok)
	assert.Equal(t, project.ID, current.ID)

	records := reloaded.ListRecords()
	require.Len(t, records, 1)
	assert.Equal(t, int64(60), records[0].DurationMinutes)
	assert.Equal(t, event.ID, records[0].EventID)
}

func TestAPI_Backups(t *testing.T) {
	apiInstance, _ := newTestAPI(t)
	_, err := apiInstance.AddProject("Website", nil)
	require.NoError(t, err)

	path, err := apiInstance.CreateBackup()
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	backups, err := apiInstance.ListBackups()
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	// Wipe in-memory state, then restore from the backup
	projects := apiInstance.ListProjects()
	require.Len(t, projects, 1)
	require.NoError(t, apiInstance.RemoveProject(projects[0].ID))
	assert.Empty(t, apiInstance.ListProjects())

	require.NoError(t, apiInstance.RestoreBackup(path))
	assert.Len(t, apiInstance.ListProjects(), 1)
}

func TestAPI_CheckIntegrity(t *testing.T) {
	apiInstance, _ := newTestAPI(t)

	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	event, err := apiInstance.StartProjectEvent("Orphaned", nil, uuid.New(), &start)
	require.NoError(t, err)
	end := start.Add(time.Hour)
	require.NoError(t, apiInstance.CompleteEvent(event.ID, &end))

	issues := apiInstance.CheckIntegrity()
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0], "missing project")
}

func TestNewInMemory_SaveFails(t *testing.T) {
	apiInstance := NewInMemory()

	err := apiInstance.Save()
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}
