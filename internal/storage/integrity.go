package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// CheckIntegrity scans a snapshot for duplicate ids and dangling
// cross-references and reports each finding as a human-readable
// string. Dangling references are diagnostics, not errors: the core
// tolerates them by design and this scan is the only place they
// surface.
func CheckIntegrity(snap Snapshot) []string {
	issues := make([]string, 0)

	projectIDs := make(map[uuid.UUID]bool, len(snap.Projects))
	for _, project := range snap.Projects {
		if projectIDs[project.ID] {
			issues = append(issues, fmt.Sprintf("duplicate project id: %s", project.ID))
		}
		projectIDs[project.ID] = true
	}

	eventIDs := make(map[uuid.UUID]bool, len(snap.Events))
	for _, event := range snap.Events {
		if eventIDs[event.ID] {
			issues = append(issues, fmt.Sprintf("duplicate event id: %s", event.ID))
		}
		eventIDs[event.ID] = true

		if projectID, ok := event.Kind.Project(); ok && !projectIDs[projectID] {
			issues = append(issues, fmt.Sprintf(
				"event references missing project: event %s, project %s", event.ID, projectID))
		}
	}

	recordIDs := make(map[uuid.UUID]bool, len(snap.TimeRecords))
	for _, record := range snap.TimeRecords {
		if recordIDs[record.ID] {
			issues = append(issues, fmt.Sprintf("duplicate time record id: %s", record.ID))
		}
		recordIDs[record.ID] = true

		if !eventIDs[record.EventID] {
			issues = append(issues, fmt.Sprintf(
				"time record references missing event: record %s, event %s", record.ID, record.EventID))
		}

		if record.ProjectID != nil && !projectIDs[*record.ProjectID] {
			issues = append(issues, fmt.Sprintf(
				"time record references missing project: record %s, project %s", record.ID, *record.ProjectID))
		}
	}

	return issues
}
