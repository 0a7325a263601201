package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTimeBreakdown is the aggregated time for a single project
// within a report window.
type ProjectTimeBreakdown struct {
	ProjectID        uuid.UUID `json:"project_id"`
	ProjectName      string    `json:"project_name"`
	TotalTimeMinutes int64     `json:"total_time_minutes"`
	EventCount       int       `json:"event_count"`
}

// WeeklyReport is a pure aggregation output over a Monday-Sunday
// window. Reports are regenerable at any time from the ledger and
// registry and are never persisted as source of truth.
type WeeklyReport struct {
	ID                         uuid.UUID              `json:"id"`
	WeekStart                  time.Time              `json:"week_start"`
	WeekEnd                    time.Time              `json:"week_end"`
	TotalProjectTimeMinutes    int64                  `json:"total_project_time_minutes"`
	TotalNonProjectTimeMinutes int64                  `json:"total_non_project_time_minutes"`
	ProjectBreakdown           []ProjectTimeBreakdown `json:"project_breakdown"`
	GeneratedAt                time.Time              `json:"generated_at"`
}

// NewWeeklyReport creates an empty report for the given window.
func NewWeeklyReport(weekStart, weekEnd time.Time) WeeklyReport {
	return WeeklyReport{
		ID:               uuid.New(),
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		ProjectBreakdown: []ProjectTimeBreakdown{},
		GeneratedAt:      time.Now().UTC(),
	}
}
