// Package timecalc provides pure, stateless aggregation over time
// records: window totals, per-project breakdowns, rankings, calendar
// helpers, and duration formatting. All window filters are inclusive on
// a record's start time.
package timecalc

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
)

// UnknownProjectName is the fallback used when a breakdown entry's
// project id cannot be resolved against the name lookup table.
const UnknownProjectName = "Unknown project"

// ProjectTime sums duration minutes over project-tagged records whose
// start time lies in [start, end].
func ProjectTime(records []domain.TimeRecord, start, end time.Time) int64 {
	var total int64
	for _, record := range records {
		if record.ProjectID != nil && inWindow(record, start, end) {
			total += record.DurationMinutes
		}
	}
	return total
}

// NonProjectTime sums duration minutes over untagged records whose
// start time lies in [start, end].
func NonProjectTime(records []domain.TimeRecord, start, end time.Time) int64 {
	var total int64
	for _, record := range records {
		if record.ProjectID == nil && inWindow(record, start, end) {
			total += record.DurationMinutes
		}
	}
	return total
}

// ProjectTotalTime sums duration minutes for one project. Nil window
// bounds leave that side of the window open.
func ProjectTotalTime(records []domain.TimeRecord, projectID uuid.UUID, start, end *time.Time) int64 {
	var total int64
	for _, record := range records {
		if record.ProjectID == nil || *record.ProjectID != projectID {
			continue
		}
		if start != nil && record.StartTime.Before(*start) {
			continue
		}
		if end != nil && record.StartTime.After(*end) {
			continue
		}
		total += record.DurationMinutes
	}
	return total
}

// ProjectBreakdown groups project-tagged records in the window by
// project id, resolving names through the lookup table. Entry order is
// unspecified; Ranking sorts explicitly.
func ProjectBreakdown(records []domain.TimeRecord, names map[uuid.UUID]string, start, end time.Time) []domain.ProjectTimeBreakdown {
	type bucket struct {
		minutes int64
		events  int
	}
	buckets := make(map[uuid.UUID]*bucket)

	for _, record := range records {
		if record.ProjectID == nil || !inWindow(record, start, end) {
			continue
		}
		b, ok := buckets[*record.ProjectID]
		if !ok {
			b = &bucket{}
			buckets[*record.ProjectID] = b
		}
		b.minutes += record.DurationMinutes
		b.events++
	}

	breakdown := make([]domain.ProjectTimeBreakdown, 0, len(buckets))
	for projectID, b := range buckets {
		name, ok := names[projectID]
		if !ok {
			name = UnknownProjectName
		}
		breakdown = append(breakdown, domain.ProjectTimeBreakdown{
			ProjectID:        projectID,
			ProjectName:      name,
			TotalTimeMinutes: b.minutes,
			EventCount:       b.events,
		})
	}
	return breakdown
}

// Ranking returns the breakdown sorted by total time descending. Ties
// keep their relative order.
func Ranking(records []domain.TimeRecord, names map[uuid.UUID]string, start, end time.Time) []domain.ProjectTimeBreakdown {
	ranking := ProjectBreakdown(records, names, start, end)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalTimeMinutes > ranking[j].TotalTimeMinutes
	})
	return ranking
}

// WeekStart returns the most recent Monday at or before date's civil
// date, preserving the time of day.
func WeekStart(date time.Time) time.Time {
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -daysSinceMonday)
}

// WeekEnd returns the Sunday ending the week containing date,
// preserving the time of day.
func WeekEnd(date time.Time) time.Time {
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, 6-daysSinceMonday)
}

// WeekRecords returns the records whose start time falls in the week
// containing date.
func WeekRecords(records []domain.TimeRecord, date time.Time) []domain.TimeRecord {
	start := WeekStart(date)
	end := WeekEnd(date)

	week := make([]domain.TimeRecord, 0)
	for _, record := range records {
		if inWindow(record, start, end) {
			week = append(week, record)
		}
	}
	return week
}

// DailyStats returns (project minutes, non-project minutes) for the
// civil date of the given time, windowed 00:00:00 to 23:59:59.
func DailyStats(records []domain.TimeRecord, date time.Time) (int64, int64) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())

	return ProjectTime(records, dayStart, dayEnd), NonProjectTime(records, dayStart, dayEnd)
}

// WeeklyStats returns (project minutes, non-project minutes) for the
// week containing date.
func WeeklyStats(records []domain.TimeRecord, date time.Time) (int64, int64) {
	start := WeekStart(date)
	end := WeekEnd(date)

	return ProjectTime(records, start, end), NonProjectTime(records, start, end)
}

// MonthRange returns the inclusive window [first instant of month,
// last second of month], handling the December rollover.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	end := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second)

	return start, end
}

// MonthlyStats returns (project minutes, non-project minutes) for the
// given calendar month.
func MonthlyStats(records []domain.TimeRecord, year int, month time.Month) (int64, int64) {
	start, end := MonthRange(year, month)
	return ProjectTime(records, start, end), NonProjectTime(records, start, end)
}

// Efficiency returns project time as a percentage of total recorded
// time in the window, or 0.0 when nothing was recorded.
func Efficiency(records []domain.TimeRecord, start, end time.Time) float64 {
	projectTime := ProjectTime(records, start, end)
	nonProjectTime := NonProjectTime(records, start, end)
	total := projectTime + nonProjectTime

	if total == 0 {
		return 0.0
	}
	return float64(projectTime) / float64(total) * 100.0
}

// FormatDuration renders whole minutes with the largest applicable
// units, omitting zero components: "30 minutes", "1 hour 30 minutes",
// "2 hours", "1 day 1 hour", "2 days".
func FormatDuration(minutes int64) string {
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}

	if minutes < 1440 {
		hours := minutes / 60
		remaining := minutes % 60
		if remaining == 0 {
			return pluralize(hours, "hour")
		}
		return pluralize(hours, "hour") + " " + pluralize(remaining, "minute")
	}

	days := minutes / 1440
	remainingHours := (minutes % 1440) / 60
	remainingMinutes := minutes % 60

	result := pluralize(days, "day")
	if remainingHours > 0 {
		result += " " + pluralize(remainingHours, "hour")
	}
	if remainingMinutes > 0 {
		result += " " + pluralize(remainingMinutes, "minute")
	}
	return result
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func inWindow(record domain.TimeRecord, start, end time.Time) bool {
	return !record.StartTime.Before(start) && !record.StartTime.After(end)
}
