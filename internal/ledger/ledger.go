package ledger

import (
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Ledger owns all events and the time records derived from completed
// events. An event is Active until Complete sets its end time, after
// which the state is terminal. Completing an event synthesizes exactly
// one time record; deleting an event cascades to its records.
//
// The ledger does not check project ids against the registry: dangling
// references are tolerated by design and surfaced only by the separate
// integrity scan.
type Ledger struct {
	events  map[uuid.UUID]domain.Event
	records map[uuid.UUID]domain.TimeRecord
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		events:  make(map[uuid.UUID]domain.Event),
		records: make(map[uuid.UUID]domain.TimeRecord),
	}
}

// AddProjectEvent stores a new active event linked to the given
// project. A nil startTime defaults to now.
func (l *Ledger) AddProjectEvent(title string, description *string, projectID uuid.UUID, startTime *time.Time) uuid.UUID {
	start := timeNow().UTC()
	if startTime != nil {
		start = *startTime
	}

	event := domain.NewEvent(title, description, domain.ProjectRelated(projectID), start)
	l.events[event.ID] = event
	return event.ID
}

// AddNonProjectEvent stores a new active event not tied to any project.
// A nil startTime defaults to now.
func (l *Ledger) AddNonProjectEvent(title string, description *string, startTime *time.Time) uuid.UUID {
	start := timeNow().UTC()
	if startTime != nil {
		start = *startTime
	}

	event := domain.NewEvent(title, description, domain.NonProject(), start)
	l.events[event.ID] = event
	return event.ID
}

// Complete sets the event's end time and derives its time record. A nil
// endTime defaults to now. All checks happen before any state changes,
// so a failed completion leaves the ledger untouched.
func (l *Ledger) Complete(eventID uuid.UUID, endTime *time.Time) error {
	event, ok := l.events[eventID]
	if !ok {
		return errors.NewNotFoundError("event", eventID.String())
	}

	if event.EndTime != nil {
		return errors.NewAlreadyCompletedError(eventID.String())
	}

	end := timeNow().UTC()
	if endTime != nil {
		end = *endTime
	}
	if !end.After(event.StartTime) {
		return errors.NewInvalidRangeError("end time must be after start time")
	}

	event.EndTime = &end
	l.events[eventID] = event

	var projectID *uuid.UUID
	if id, ok := event.Kind.Project(); ok {
		projectID = &id
	}

	record := domain.NewTimeRecord(eventID, projectID, event.StartTime, end)
	l.records[record.ID] = record
	return nil
}

// Delete removes the event and every time record derived from it.
func (l *Ledger) Delete(eventID uuid.UUID) error {
	if _, ok := l.events[eventID]; !ok {
		return errors.NewNotFoundError("event", eventID.String())
	}

	delete(l.events, eventID)
	for id, record := range l.records {
		if record.EventID == eventID {
			delete(l.records, id)
		}
	}
	return nil
}

// Update applies a partial update of the mutable fields: only non-nil
// fields change. Kind, start time, and end time are immutable through
// this path.
func (l *Ledger) Update(eventID uuid.UUID, title, description *string) error {
	event, ok := l.events[eventID]
	if !ok {
		return errors.NewNotFoundError("event", eventID.String())
	}

	if title != nil {
		event.Title = *title
	}
	if description != nil {
		event.Description = description
	}

	l.events[eventID] = event
	return nil
}

// Event returns the event with the given id, if present.
func (l *Ledger) Event(eventID uuid.UUID) (domain.Event, bool) {
	event, ok := l.events[eventID]
	return event, ok
}

// Events returns all events in unspecified order.
func (l *Ledger) Events() []domain.Event {
	events := make([]domain.Event, 0, len(l.events))
	for _, event := range l.events {
		events = append(events, event)
	}
	return events
}

// ActiveEvents returns all events without an end time.
func (l *Ledger) ActiveEvents() []domain.Event {
	return l.filterEvents(func(e domain.Event) bool {
		return !e.IsCompleted()
	})
}

// CompletedEvents returns all events with an end time.
func (l *Ledger) CompletedEvents() []domain.Event {
	return l.filterEvents(domain.Event.IsCompleted)
}

// ProjectEvents returns all events linked to the given project.
func (l *Ledger) ProjectEvents(projectID uuid.UUID) []domain.Event {
	return l.filterEvents(func(e domain.Event) bool {
		id, ok := e.Kind.Project()
		return ok && id == projectID
	})
}

// NonProjectEvents returns all events not linked to any project.
func (l *Ledger) NonProjectEvents() []domain.Event {
	return l.filterEvents(func(e domain.Event) bool {
		return e.Kind.Type == domain.KindNonProject
	})
}

// EventsInRange returns events whose start time falls in [lo, hi]
// inclusive.
func (l *Ledger) EventsInRange(lo, hi time.Time) []domain.Event {
	return l.filterEvents(func(e domain.Event) bool {
		return !e.StartTime.Before(lo) && !e.StartTime.After(hi)
	})
}

func (l *Ledger) filterEvents(keep func(domain.Event) bool) []domain.Event {
	events := make([]domain.Event, 0)
	for _, event := range l.events {
		if keep(event) {
			events = append(events, event)
		}
	}
	return events
}

// Record returns the time record with the given id, if present.
func (l *Ledger) Record(recordID uuid.UUID) (domain.TimeRecord, bool) {
	record, ok := l.records[recordID]
	return record, ok
}

// Records returns all time records in unspecified order.
func (l *Ledger) Records() []domain.TimeRecord {
	records := make([]domain.TimeRecord, 0, len(l.records))
	for _, record := range l.records {
		records = append(records, record)
	}
	return records
}

// EventRecord returns the single record derived from the given event,
// if the event has completed.
func (l *Ledger) EventRecord(eventID uuid.UUID) (domain.TimeRecord, bool) {
	for _, record := range l.records {
		if record.EventID == eventID {
			return record, true
		}
	}
	return domain.TimeRecord{}, false
}

// ProjectRecords returns all records tagged to the given project.
func (l *Ledger) ProjectRecords(projectID uuid.UUID) []domain.TimeRecord {
	return l.filterRecords(func(r domain.TimeRecord) bool {
		return r.ProjectID != nil && *r.ProjectID == projectID
	})
}

// NonProjectRecords returns all records without a project tag.
func (l *Ledger) NonProjectRecords() []domain.TimeRecord {
	return l.filterRecords(func(r domain.TimeRecord) bool {
		return r.ProjectID == nil
	})
}

// RecordsInRange returns records whose start time falls in [lo, hi]
// inclusive.
func (l *Ledger) RecordsInRange(lo, hi time.Time) []domain.TimeRecord {
	return l.filterRecords(func(r domain.TimeRecord) bool {
		return !r.StartTime.Before(lo) && !r.StartTime.After(hi)
	})
}

func (l *Ledger) filterRecords(keep func(domain.TimeRecord) bool) []domain.TimeRecord {
	records := make([]domain.TimeRecord, 0)
	for _, record := range l.records {
		if keep(record) {
			records = append(records, record)
		}
	}
	return records
}

// EventCount returns the number of events.
func (l *Ledger) EventCount() int {
	return len(l.events)
}

// RecordCount returns the number of time records.
func (l *Ledger) RecordCount() int {
	return len(l.records)
}

// EventExists reports whether an event with the given id is stored.
func (l *Ledger) EventExists(eventID uuid.UUID) bool {
	_, ok := l.events[eventID]
	return ok
}

// Restore repopulates an empty ledger from a snapshot. Events keep
// their original start times and completion state; historical time
// records are carried through verbatim so a save/reload cycle is
// lossless.
func (l *Ledger) Restore(events []domain.Event, records []domain.TimeRecord) {
	l.events = make(map[uuid.UUID]domain.Event, len(events))
	for _, event := range events {
		l.events[event.ID] = event
	}

	l.records = make(map[uuid.UUID]domain.TimeRecord, len(records))
	for _, record := range records {
		l.records[record.ID] = record
	}
}
