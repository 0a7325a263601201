package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a discrete interval of work. An event starts active
// (no end time) and completes at most once; the end time is never
// cleared or reset after it is set.
type Event struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Kind        EventKind  `json:"event_type"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewEvent creates a new active event with a fresh identity.
func NewEvent(title string, description *string, kind EventKind, startTime time.Time) Event {
	return Event{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Kind:        kind,
		StartTime:   startTime,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsCompleted returns true if the event has an end time.
func (e Event) IsCompleted() bool {
	return e.EndTime != nil
}

// Duration returns the elapsed time of a completed event. The second
// return value is false while the event is still active.
func (e Event) Duration() (time.Duration, bool) {
	if e.EndTime == nil {
		return 0, false
	}
	return e.EndTime.Sub(e.StartTime), true
}

// String returns the event title for display purposes.
func (e Event) String() string {
	return e.Title
}
