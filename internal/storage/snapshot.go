package storage

import (
	"sort"

	"project-tracker/internal/domain"
	"project-tracker/internal/ledger"
	"project-tracker/internal/registry"
)

// Snapshot is the full on-disk document: every project, event, and
// time record. Reports are always regenerable, so the array is kept
// only for compatibility with prior saved state and is written empty.
type Snapshot struct {
	Projects      []domain.Project      `json:"projects"`
	Events        []domain.Event        `json:"events"`
	TimeRecords   []domain.TimeRecord   `json:"time_records"`
	WeeklyReports []domain.WeeklyReport `json:"weekly_reports"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() Snapshot {
	return Snapshot{
		Projects:      []domain.Project{},
		Events:        []domain.Event{},
		TimeRecords:   []domain.TimeRecord{},
		WeeklyReports: []domain.WeeklyReport{},
	}
}

// Capture exports a consistent read-only snapshot of the registry and
// ledger. Collections are ordered by creation time so repeated saves
// of unchanged state produce identical documents.
func Capture(reg *registry.Registry, led *ledger.Ledger) Snapshot {
	snap := Snapshot{
		Projects:      reg.List(),
		Events:        led.Events(),
		TimeRecords:   led.Records(),
		WeeklyReports: []domain.WeeklyReport{},
	}

	sort.Slice(snap.Projects, func(i, j int) bool {
		a, b := snap.Projects[i], snap.Projects[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	sort.Slice(snap.Events, func(i, j int) bool {
		a, b := snap.Events[i], snap.Events[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	sort.Slice(snap.TimeRecords, func(i, j int) bool {
		a, b := snap.TimeRecords[i], snap.TimeRecords[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	return snap
}

// Restore repopulates the registry and ledger from a snapshot.
// Historical time records are restored verbatim rather than re-derived
// from events, so completed work survives a save/reload cycle exactly.
func Restore(snap Snapshot, reg *registry.Registry, led *ledger.Ledger) {
	reg.Restore(snap.Projects)
	led.Restore(snap.Events, snap.TimeRecords)
}
