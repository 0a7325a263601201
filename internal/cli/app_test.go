package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/api"
	"project-tracker/internal/config"
	"project-tracker/internal/errors"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(api.NewInMemory(), config.NewConfig())
}

func TestParseTimeArg(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "rfc3339", input: "2026-08-03T09:00:00Z"},
		{name: "date and time", input: "2026-08-03 09:00:00"},
		{name: "date and minutes", input: "2026-08-03 09:00"},
		{name: "date only", input: "2026-08-03"},
		{name: "bare clock time", input: "09:30"},
		{name: "garbage", input: "tomorrowish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseTimeArg(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}

	t.Run("bare clock time lands on today", func(t *testing.T) {
		parsed, err := parseTimeArg("09:30")
		require.NoError(t, err)

		now := time.Now()
		local := parsed.Local()
		assert.Equal(t, now.Year(), local.Year())
		assert.Equal(t, now.Month(), local.Month())
		assert.Equal(t, now.Day(), local.Day())
		assert.Equal(t, 9, local.Hour())
		assert.Equal(t, 30, local.Minute())
	})
}

func TestApp_ResolveProject(t *testing.T) {
	app := newTestApp(t)
	project, err := app.api.AddProject("Website", nil)
	require.NoError(t, err)

	t.Run("by exact name", func(t *testing.T) {
		resolved, err := app.resolveProject("Website")
		require.NoError(t, err)
		assert.Equal(t, project.ID, resolved.ID)
	})

	t.Run("by id", func(t *testing.T) {
		resolved, err := app.resolveProject(project.ID.String())
		require.NoError(t, err)
		assert.Equal(t, project.ID, resolved.ID)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := app.resolveProject("Nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestApp_ResolveEvent(t *testing.T) {
	app := newTestApp(t)
	event, err := app.api.StartNonProjectEvent("Lunch", nil, nil)
	require.NoError(t, err)

	t.Run("by full id", func(t *testing.T) {
		resolved, err := app.resolveEvent(event.ID.String())
		require.NoError(t, err)
		assert.Equal(t, event.ID, resolved.ID)
	})

	t.Run("by unambiguous prefix", func(t *testing.T) {
		resolved, err := app.resolveEvent(event.ID.String()[:8])
		require.NoError(t, err)
		assert.Equal(t, event.ID, resolved.ID)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := app.resolveEvent("zzzzzzzz")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestApp_MostRecentActiveEvent(t *testing.T) {
	app := newTestApp(t)

	t.Run("no events", func(t *testing.T) {
		_, ok := app.mostRecentActiveEvent()
		assert.False(t, ok)
	})

	t.Run("latest start time wins", func(t *testing.T) {
		early := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
		late := early.Add(2 * time.Hour)

		_, err := app.api.StartNonProjectEvent("First", nil, &early)
		require.NoError(t, err)
		latest, err := app.api.StartNonProjectEvent("Second", nil, &late)
		require.NoError(t, err)

		found, ok := app.mostRecentActiveEvent()
		require.True(t, ok)
		assert.Equal(t, latest.ID, found.ID)
	})
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{name: "valid month", input: "2026-08", wantYear: 2026, wantMonth: time.August},
		{name: "december", input: "2025-12", wantYear: 2025, wantMonth: time.December},
		{name: "missing month", input: "2026", wantErr: true},
		{name: "month out of range", input: "2026-13", wantErr: true},
		{name: "non-numeric", input: "aug-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := parseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
