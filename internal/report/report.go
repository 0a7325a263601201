// Package report assembles weekly and monthly report value objects
// from time records and renders them as text. All rendering follows
// the same compute-then-render pattern over windows supplied by
// timecalc.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
	"project-tracker/internal/timecalc"
)

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

// GenerateWeeklyReport fills a report for the Monday-Sunday window
// containing reportDate.
func GenerateWeeklyReport(records []domain.TimeRecord, names map[uuid.UUID]string, reportDate time.Time) domain.WeeklyReport {
	weekStart := timecalc.WeekStart(reportDate)
	weekEnd := timecalc.WeekEnd(reportDate)

	report := domain.NewWeeklyReport(weekStart, weekEnd)
	report.TotalProjectTimeMinutes = timecalc.ProjectTime(records, weekStart, weekEnd)
	report.TotalNonProjectTimeMinutes = timecalc.NonProjectTime(records, weekStart, weekEnd)
	report.ProjectBreakdown = timecalc.ProjectBreakdown(records, names, weekStart, weekEnd)

	return report
}

// Summary renders a weekly report as a fixed-template text block.
func Summary(report domain.WeeklyReport) string {
	var b strings.Builder

	b.WriteString("=== Weekly Report ===\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n",
		report.WeekStart.Format(dateFormat), report.WeekEnd.Format(dateFormat))

	fmt.Fprintf(&b, "Project time: %s\n", timecalc.FormatDuration(report.TotalProjectTimeMinutes))
	fmt.Fprintf(&b, "Non-project time: %s\n", timecalc.FormatDuration(report.TotalNonProjectTimeMinutes))
	fmt.Fprintf(&b, "Efficiency: %.2f%%\n\n", efficiencyOf(report.TotalProjectTimeMinutes, report.TotalNonProjectTimeMinutes))

	if len(report.ProjectBreakdown) > 0 {
		b.WriteString("Project breakdown:\n")
		writeBreakdown(&b, report.ProjectBreakdown)
	} else {
		b.WriteString("No project events this week\n")
	}

	fmt.Fprintf(&b, "\nGenerated at: %s\n", report.GeneratedAt.Format(dateTimeFormat))

	return b.String()
}

// DetailedWeeklySummary renders the weekly report with per-day lines
// for Monday through Sunday, overall totals, the breakdown, and the
// project ranking.
func DetailedWeeklySummary(records []domain.TimeRecord, names map[uuid.UUID]string, reportDate time.Time) string {
	weekStart := timecalc.WeekStart(reportDate)
	weekEnd := timecalc.WeekEnd(reportDate)

	var b strings.Builder
	b.WriteString("=== Detailed Weekly Report ===\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", weekStart.Format(dateFormat), weekEnd.Format(dateFormat))

	b.WriteString("Daily totals:\n")
	for day := weekStart; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
		projectTime, nonProjectTime := timecalc.DailyStats(records, day)
		fmt.Fprintf(&b, "  %s: project=%s, non-project=%s\n",
			day.Format("2006-01-02 (Mon)"),
			timecalc.FormatDuration(projectTime),
			timecalc.FormatDuration(nonProjectTime))
	}

	totalProject := timecalc.ProjectTime(records, weekStart, weekEnd)
	totalNonProject := timecalc.NonProjectTime(records, weekStart, weekEnd)

	b.WriteString("\nOverall totals:\n")
	fmt.Fprintf(&b, "  Project time: %s\n", timecalc.FormatDuration(totalProject))
	fmt.Fprintf(&b, "  Non-project time: %s\n", timecalc.FormatDuration(totalNonProject))
	fmt.Fprintf(&b, "  Efficiency: %.2f%%\n", efficiencyOf(totalProject, totalNonProject))

	breakdown := timecalc.ProjectBreakdown(records, names, weekStart, weekEnd)
	if len(breakdown) > 0 {
		b.WriteString("\nProject breakdown:\n")
		writeBreakdown(&b, breakdown)
	}

	ranking := timecalc.Ranking(records, names, weekStart, weekEnd)
	if len(ranking) > 0 {
		b.WriteString("\nProject ranking:\n")
		for i, entry := range ranking {
			fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, entry.ProjectName,
				timecalc.FormatDuration(entry.TotalTimeMinutes))
		}
	}

	fmt.Fprintf(&b, "\nGenerated at: %s\n", time.Now().UTC().Format(dateTimeFormat))

	return b.String()
}

// MonthlySummary renders totals, efficiency, and the breakdown for a
// calendar month.
func MonthlySummary(records []domain.TimeRecord, names map[uuid.UUID]string, year int, month time.Month) string {
	projectTime, nonProjectTime := timecalc.MonthlyStats(records, year, month)

	var b strings.Builder
	b.WriteString("=== Monthly Report ===\n")
	fmt.Fprintf(&b, "Period: %s %d\n\n", month, year)

	fmt.Fprintf(&b, "Project time: %s\n", timecalc.FormatDuration(projectTime))
	fmt.Fprintf(&b, "Non-project time: %s\n", timecalc.FormatDuration(nonProjectTime))
	fmt.Fprintf(&b, "Efficiency: %.2f%%\n", efficiencyOf(projectTime, nonProjectTime))

	monthStart, monthEnd := timecalc.MonthRange(year, month)
	breakdown := timecalc.ProjectBreakdown(records, names, monthStart, monthEnd)
	if len(breakdown) > 0 {
		b.WriteString("\nProject breakdown:\n")
		writeBreakdown(&b, breakdown)
	}

	return b.String()
}

// EfficiencyAnalysis renders a time-allocation analysis with advisory
// text for the given window.
func EfficiencyAnalysis(records []domain.TimeRecord, names map[uuid.UUID]string, start, end time.Time) string {
	var b strings.Builder

	b.WriteString("=== Efficiency Analysis ===\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", start.Format(dateFormat), end.Format(dateFormat))

	projectTime := timecalc.ProjectTime(records, start, end)
	nonProjectTime := timecalc.NonProjectTime(records, start, end)
	total := projectTime + nonProjectTime

	b.WriteString("Time allocation:\n")
	fmt.Fprintf(&b, "  Project time: %s (%.1f%%)\n",
		timecalc.FormatDuration(projectTime), shareOf(projectTime, total))
	fmt.Fprintf(&b, "  Non-project time: %s (%.1f%%)\n",
		timecalc.FormatDuration(nonProjectTime), shareOf(nonProjectTime, total))

	breakdown := timecalc.ProjectBreakdown(records, names, start, end)
	if len(breakdown) > 0 {
		b.WriteString("\nPer-project analysis:\n")
		for _, entry := range breakdown {
			var avg int64
			if entry.EventCount > 0 {
				avg = entry.TotalTimeMinutes / int64(entry.EventCount)
			}
			fmt.Fprintf(&b, "  - %s: total=%s, average event=%s\n", entry.ProjectName,
				timecalc.FormatDuration(entry.TotalTimeMinutes), timecalc.FormatDuration(avg))
		}
	}

	b.WriteString("\nSuggestions:\n")
	efficiency := efficiencyOf(projectTime, nonProjectTime)
	switch {
	case efficiency < 50.0:
		b.WriteString("  - Consider reducing non-project activity to free up project time\n")
	case efficiency > 90.0:
		b.WriteString("  - Efficiency is very high; keep an eye on work-life balance\n")
	default:
		b.WriteString("  - Efficiency is healthy; keep it up\n")
	}

	if nonProjectTime > projectTime {
		b.WriteString("  - Non-project time exceeds project time; review how time is allocated\n")
	}

	return b.String()
}

// ExportJSON encodes a report for round-trip serialization.
func ExportJSON(report domain.WeeklyReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// ImportJSON decodes a report produced by ExportJSON.
func ImportJSON(data []byte) (domain.WeeklyReport, error) {
	var report domain.WeeklyReport
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.WeeklyReport{}, err
	}
	return report, nil
}

func writeBreakdown(b *strings.Builder, breakdown []domain.ProjectTimeBreakdown) {
	for _, entry := range breakdown {
		events := "events"
		if entry.EventCount == 1 {
			events = "event"
		}
		fmt.Fprintf(b, "  - %s: %s (%d %s)\n", entry.ProjectName,
			timecalc.FormatDuration(entry.TotalTimeMinutes), entry.EventCount, events)
	}
}

func efficiencyOf(projectMinutes, nonProjectMinutes int64) float64 {
	total := projectMinutes + nonProjectMinutes
	if total == 0 {
		return 0.0
	}
	return float64(projectMinutes) / float64(total) * 100.0
}

func shareOf(minutes, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(minutes) / float64(total) * 100.0
}
