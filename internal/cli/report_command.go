package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReportCommand handles the report subcommands
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Week prints the weekly report for the week containing the given
// date, or the current week when date is empty.
func (c *ReportCommand) Week(date string, detailed bool) error {
	reference := timeNow().UTC()
	if date != "" {
		t, err := parseTimeArg(date)
		if err != nil {
			return c.errorHandler.Handle("generate weekly report", err)
		}
		reference = t
	}

	if detailed {
		fmt.Println(c.app.api.DetailedWeeklySummary(reference))
	} else {
		fmt.Println(c.app.api.WeeklySummary(reference))
	}
	return nil
}

// Month prints the monthly report for a YYYY-MM month, defaulting to
// the current month.
func (c *ReportCommand) Month(month string) error {
	now := timeNow().UTC()
	year, m := now.Year(), now.Month()

	if month != "" {
		parsedYear, parsedMonth, err := parseMonth(month)
		if err != nil {
			return c.errorHandler.Handle("generate monthly report", err)
		}
		year, m = parsedYear, parsedMonth
	}

	fmt.Println(c.app.api.MonthlySummary(year, m))
	return nil
}

// Efficiency prints the efficiency analysis for a date range,
// defaulting to the last 30 days.
func (c *ReportCommand) Efficiency(from, to string) error {
	end := timeNow().UTC()
	start := end.AddDate(0, 0, -30)

	if from != "" {
		t, err := parseTimeArg(from)
		if err != nil {
			return c.errorHandler.Handle("generate efficiency report", err)
		}
		start = t
	}
	if to != "" {
		t, err := parseTimeArg(to)
		if err != nil {
			return c.errorHandler.Handle("generate efficiency report", err)
		}
		end = t
	}

	if end.Before(start) {
		return c.errorHandler.Handle("generate efficiency report", fmt.Errorf("range end %s is before start %s", to, from))
	}

	fmt.Println(c.app.api.EfficiencyAnalysis(start, end))
	return nil
}

// parseMonth parses a "2006-01" style month reference.
func parseMonth(value string) (int, time.Month, error) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month format %q, expected YYYY-MM", value)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in %q", value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", value)
	}

	return year, time.Month(month), nil
}
