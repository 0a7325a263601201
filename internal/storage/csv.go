package storage

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
	"project-tracker/internal/timecalc"
)

const (
	csvTimeFormat   = "2006-01-02 15:04:05"
	nonProjectLabel = "Non-project"
	notApplicable   = "N/A"
)

// ExportCSV writes every project, event, and time record in the
// snapshot to a timestamped CSV file and returns its path. Project ids
// that no longer resolve render as the unknown-project fallback rather
// than failing the export.
func (s *Store) ExportCSV(snap Snapshot) (string, error) {
	path := s.exportPath()
	file, err := os.Create(path)
	if err != nil {
		return "", errors.NewStorageError("create export file", err)
	}
	defer file.Close()

	names := make(map[uuid.UUID]string, len(snap.Projects))
	for _, project := range snap.Projects {
		names[project.ID] = project.Name
	}

	w := csv.NewWriter(file)
	if err := w.Write([]string{"type", "name", "description", "project", "start_time", "end_time", "duration_minutes"}); err != nil {
		return "", errors.NewStorageError("write export header", err)
	}

	for _, project := range snap.Projects {
		row := []string{"project", project.Name, derefOr(project.Description, ""),
			notApplicable, notApplicable, notApplicable, notApplicable}
		if err := w.Write(row); err != nil {
			return "", errors.NewStorageError("write project row", err)
		}
	}

	for _, event := range snap.Events {
		if err := w.Write(eventRow(event, names)); err != nil {
			return "", errors.NewStorageError("write event row", err)
		}
	}

	for _, record := range snap.TimeRecords {
		if err := w.Write(recordRow(record, names)); err != nil {
			return "", errors.NewStorageError("write time record row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.NewStorageError("flush export file", err)
	}
	return path, nil
}

func eventRow(event domain.Event, names map[uuid.UUID]string) []string {
	projectName := nonProjectLabel
	if projectID, ok := event.Kind.Project(); ok {
		projectName = resolveName(names, projectID)
	}

	endTime := notApplicable
	duration := "in progress"
	if event.EndTime != nil {
		endTime = event.EndTime.Format(csvTimeFormat)
		elapsed, _ := event.Duration()
		duration = strconv.FormatInt(int64(elapsed/time.Minute), 10)
	}

	return []string{
		"event",
		event.Title,
		derefOr(event.Description, ""),
		projectName,
		event.StartTime.Format(csvTimeFormat),
		endTime,
		duration,
	}
}

func recordRow(record domain.TimeRecord, names map[uuid.UUID]string) []string {
	projectName := nonProjectLabel
	if record.ProjectID != nil {
		projectName = resolveName(names, *record.ProjectID)
	}

	return []string{
		"time_record",
		notApplicable,
		notApplicable,
		projectName,
		record.StartTime.Format(csvTimeFormat),
		record.EndTime.Format(csvTimeFormat),
		strconv.FormatInt(record.DurationMinutes, 10),
	}
}

func resolveName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return timecalc.UnknownProjectName
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
