package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/api"
	"project-tracker/internal/config"
	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
	"project-tracker/internal/storage"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// NewAppWithDefaultStore creates a CLI application backed by the
// configured data directory. Used for production.
func NewAppWithDefaultStore(cfg *config.Config) (*App, error) {
	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	apiInstance, err := api.New(store)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved data: %w", err)
	}

	return NewApp(apiInstance, cfg), nil
}

// timeLayouts are the accepted formats for explicit time arguments.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeArg parses an explicit time argument. Bare clock times like
// "15:04" are interpreted as today.
func parseTimeArg(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.UTC(), nil
		}
	}

	if clock, err := time.Parse("15:04", value); err == nil {
		now := timeNow()
		t := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s", value)
}

// resolveProject finds a project by exact name or by id.
func (a *App) resolveProject(ref string) (domain.Project, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if project, ok := a.api.GetProject(id); ok {
			return project, nil
		}
		return domain.Project{}, errors.NewNotFoundError("project", ref)
	}

	for _, project := range a.api.ListProjects() {
		if project.Name == ref {
			return project, nil
		}
	}

	return domain.Project{}, errors.NewNotFoundError("project", ref)
}

// resolveEvent finds an event by full id or unambiguous id prefix.
func (a *App) resolveEvent(ref string) (domain.Event, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if event, ok := a.api.GetEvent(id); ok {
			return event, nil
		}
		return domain.Event{}, errors.NewNotFoundError("event", ref)
	}

	events, _ := a.api.ListEvents(api.FilterAll)
	var matches []domain.Event
	for _, event := range events {
		if strings.HasPrefix(event.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, event)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Event{}, errors.NewNotFoundError("event", ref)
	default:
		return domain.Event{}, errors.NewValidationError(fmt.Sprintf("event id prefix %q is ambiguous", ref), nil)
	}
}

// mostRecentActiveEvent returns the active event with the latest start
// time, used when stop is called without an id.
func (a *App) mostRecentActiveEvent() (domain.Event, bool) {
	active, _ := a.api.ListEvents(api.FilterActive)
	if len(active) == 0 {
		return domain.Event{}, false
	}

	latest := active[0]
	for _, event := range active[1:] {
		if event.StartTime.After(latest.StartTime) {
			latest = event
		}
	}
	return latest, true
}

// save persists the current state after a mutating command.
func (a *App) save() error {
	if err := a.api.Save(); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}

// optional converts a flag value to a pointer, treating the empty
// string as unset.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
