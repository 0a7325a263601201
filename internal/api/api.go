package api

import (
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
	"project-tracker/internal/ledger"
	"project-tracker/internal/registry"
	"project-tracker/internal/report"
	"project-tracker/internal/storage"
)

// EventFilter selects which events a listing returns.
type EventFilter string

const (
	FilterAll        EventFilter = "all"
	FilterActive     EventFilter = "active"
	FilterCompleted  EventFilter = "completed"
	FilterNonProject EventFilter = "non-project"
)

// API defines the interface for all project, event, and report
// operations the interactive surface consumes.
type API interface {
	// Project operations
	AddProject(name string, description *string) (domain.Project, error)
	RemoveProject(id uuid.UUID) error
	SwitchProject(id uuid.UUID) error
	CurrentProject() (domain.Project, bool)
	GetProject(id uuid.UUID) (domain.Project, bool)
	ListProjects() []domain.Project
	UpdateProject(id uuid.UUID, name, description *string) error

	// Event operations
	StartCurrentProjectEvent(title string, description *string, startTime *time.Time) (domain.Event, error)
	StartProjectEvent(title string, description *string, projectID uuid.UUID, startTime *time.Time) (domain.Event, error)
	StartNonProjectEvent(title string, description *string, startTime *time.Time) (domain.Event, error)
	CompleteEvent(id uuid.UUID, endTime *time.Time) error
	DeleteEvent(id uuid.UUID) error
	UpdateEvent(id uuid.UUID, title, description *string) error
	GetEvent(id uuid.UUID) (domain.Event, bool)
	ListEvents(filter EventFilter) ([]domain.Event, error)
	ListProjectEvents(projectID uuid.UUID) []domain.Event
	ListRecords() []domain.TimeRecord

	// Report operations
	WeeklyReport(reference time.Time) domain.WeeklyReport
	WeeklySummary(reference time.Time) string
	DetailedWeeklySummary(reference time.Time) string
	MonthlySummary(year int, month time.Month) string
	EfficiencyAnalysis(start, end time.Time) string

	// Persistence operations
	Save() error
	CreateBackup() (string, error)
	ListBackups() ([]string, error)
	RestoreBackup(path string) error
	CleanupBackups(keep int) (int, error)
	ExportCSV() (string, error)
	CheckIntegrity() []string
}

type apiImpl struct {
	registry *registry.Registry
	ledger   *ledger.Ledger
	store    *storage.Store
}

// New creates an API instance backed by the store, loading any
// previously saved snapshot into a fresh registry and ledger.
func New(store *storage.Store) (API, error) {
	a := &apiImpl{
		registry: registry.New(),
		ledger:   ledger.New(),
		store:    store,
	}

	snap, err := store.Load()
	if err != nil {
		return nil, err
	}
	storage.Restore(snap, a.registry, a.ledger)

	return a, nil
}

// NewInMemory creates an API instance with no backing store. Used in
// tests; Save and backup operations fail.
func NewInMemory() API {
	return &apiImpl{
		registry: registry.New(),
		ledger:   ledger.New(),
	}
}

// Project operation implementations

func (a *apiImpl) AddProject(name string, description *string) (domain.Project, error) {
	id := a.registry.Add(name, description)
	project, _ := a.registry.Get(id)
	return project, nil
}

func (a *apiImpl) RemoveProject(id uuid.UUID) error {
	return a.registry.Remove(id)
}

func (a *apiImpl) SwitchProject(id uuid.UUID) error {
	return a.registry.SwitchTo(id)
}

func (a *apiImpl) CurrentProject() (domain.Project, bool) {
	return a.registry.Current()
}

func (a *apiImpl) GetProject(id uuid.UUID) (domain.Project, bool) {
	return a.registry.Get(id)
}

func (a *apiImpl) ListProjects() []domain.Project {
	return a.registry.List()
}

func (a *apiImpl) UpdateProject(id uuid.UUID, name, description *string) error {
	return a.registry.Update(id, name, description)
}

// Event operation implementations

// StartCurrentProjectEvent records a new event linked to the current
// project. It fails with a no-active-project error when none is
// selected.
func (a *apiImpl) StartCurrentProjectEvent(title string, description *string, startTime *time.Time) (domain.Event, error) {
	projectID, ok := a.registry.CurrentProjectID()
	if !ok {
		return domain.Event{}, errors.NewNoActiveProjectError()
	}
	return a.StartProjectEvent(title, description, projectID, startTime)
}

func (a *apiImpl) StartProjectEvent(title string, description *string, projectID uuid.UUID, startTime *time.Time) (domain.Event, error) {
	id := a.ledger.AddProjectEvent(title, description, projectID, startTime)
	event, _ := a.ledger.Event(id)
	return event, nil
}

func (a *apiImpl) StartNonProjectEvent(title string, description *string, startTime *time.Time) (domain.Event, error) {
	id := a.ledger.AddNonProjectEvent(title, description, startTime)
	event, _ := a.ledger.Event(id)
	return event, nil
}

func (a *apiImpl) CompleteEvent(id uuid.UUID, endTime *time.Time) error {
	return a.ledger.Complete(id, endTime)
}

func (a *apiImpl) DeleteEvent(id uuid.UUID) error {
	return a.ledger.Delete(id)
}

func (a *apiImpl) UpdateEvent(id uuid.UUID, title, description *string) error {
	return a.ledger.Update(id, title, description)
}

func (a *apiImpl) GetEvent(id uuid.UUID) (domain.Event, bool) {
	return a.ledger.Event(id)
}

func (a *apiImpl) ListEvents(filter EventFilter) ([]domain.Event, error) {
	switch filter {
	case FilterAll, "":
		return a.ledger.Events(), nil
	case FilterActive:
		return a.ledger.ActiveEvents(), nil
	case FilterCompleted:
		return a.ledger.CompletedEvents(), nil
	case FilterNonProject:
		return a.ledger.NonProjectEvents(), nil
	default:
		return nil, errors.NewValidationError("unknown event filter: "+string(filter), nil)
	}
}

func (a *apiImpl) ListProjectEvents(projectID uuid.UUID) []domain.Event {
	return a.ledger.ProjectEvents(projectID)
}

func (a *apiImpl) ListRecords() []domain.TimeRecord {
	return a.ledger.Records()
}

// Report operation implementations

func (a *apiImpl) WeeklyReport(reference time.Time) domain.WeeklyReport {
	return report.GenerateWeeklyReport(a.ledger.Records(), a.registry.Names(), reference)
}

func (a *apiImpl) WeeklySummary(reference time.Time) string {
	return report.Summary(a.WeeklyReport(reference))
}

func (a *apiImpl) DetailedWeeklySummary(reference time.Time) string {
	return report.DetailedWeeklySummary(a.ledger.Records(), a.registry.Names(), reference)
}

func (a *apiImpl) MonthlySummary(year int, month time.Month) string {
	return report.MonthlySummary(a.ledger.Records(), a.registry.Names(), year, month)
}

func (a *apiImpl) EfficiencyAnalysis(start, end time.Time) string {
	return report.EfficiencyAnalysis(a.ledger.Records(), a.registry.Names(), start, end)
}

// Persistence operation implementations

func (a *apiImpl) Save() error {
	if a.store == nil {
		return errors.NewStorageError("save", errors.NewValidationError("no store configured", nil))
	}
	return a.store.Save(storage.Capture(a.registry, a.ledger))
}

func (a *apiImpl) CreateBackup() (string, error) {
	if a.store == nil {
		return "", errors.NewStorageError("backup", errors.NewValidationError("no store configured", nil))
	}
	return a.store.CreateBackup(storage.Capture(a.registry, a.ledger))
}

func (a *apiImpl) ListBackups() ([]string, error) {
	if a.store == nil {
		return nil, errors.NewStorageError("list backups", errors.NewValidationError("no store configured", nil))
	}
	return a.store.ListBackups()
}

// RestoreBackup replaces the in-memory state with the backup's
// contents. The primary data file is untouched until the next save.
func (a *apiImpl) RestoreBackup(path string) error {
	if a.store == nil {
		return errors.NewStorageError("restore backup", errors.NewValidationError("no store configured", nil))
	}
	snap, err := a.store.RestoreBackup(path)
	if err != nil {
		return err
	}
	storage.Restore(snap, a.registry, a.ledger)
	return nil
}

func (a *apiImpl) CleanupBackups(keep int) (int, error) {
	if a.store == nil {
		return 0, errors.NewStorageError("cleanup backups", errors.NewValidationError("no store configured", nil))
	}
	return a.store.CleanupBackups(keep)
}

func (a *apiImpl) ExportCSV() (string, error) {
	if a.store == nil {
		return "", errors.NewStorageError("export", errors.NewValidationError("no store configured", nil))
	}
	return a.store.ExportCSV(storage.Capture(a.registry, a.ledger))
}

func (a *apiImpl) CheckIntegrity() []string {
	return storage.CheckIntegrity(storage.Capture(a.registry, a.ledger))
}
