package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeRecord is the derived record of a completed event. Records are
// created exactly once as a side effect of completing an event, are
// immutable after creation, and are removed only when their owning
// event is deleted.
type TimeRecord struct {
	ID              uuid.UUID  `json:"id"`
	EventID         uuid.UUID  `json:"event_id"`
	ProjectID       *uuid.UUID `json:"project_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int64      `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewTimeRecord derives a record from a completed event's times. The
// duration is whole elapsed minutes, truncated toward zero.
func NewTimeRecord(eventID uuid.UUID, projectID *uuid.UUID, startTime, endTime time.Time) TimeRecord {
	return TimeRecord{
		ID:              uuid.New(),
		EventID:         eventID,
		ProjectID:       projectID,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: int64(endTime.Sub(startTime) / time.Minute),
		CreatedAt:       time.Now().UTC(),
	}
}
