package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// KindType discriminates the two event classifications.
type KindType string

const (
	KindProjectRelated KindType = "ProjectRelated"
	KindNonProject     KindType = "NonProject"
)

// EventKind is a closed sum over the two ways an event can be
// classified: tied to a project, or standalone. The kind of an event is
// fixed at creation and never changes.
type EventKind struct {
	Type      KindType
	ProjectID uuid.UUID
}

// ProjectRelated returns the kind for an event tied to the given project.
func ProjectRelated(projectID uuid.UUID) EventKind {
	return EventKind{Type: KindProjectRelated, ProjectID: projectID}
}

// NonProject returns the kind for an event not tied to any project.
func NonProject() EventKind {
	return EventKind{Type: KindNonProject}
}

// Project returns the linked project id and true for project-related
// kinds, and the zero id and false otherwise.
func (k EventKind) Project() (uuid.UUID, bool) {
	if k.Type == KindProjectRelated {
		return k.ProjectID, true
	}
	return uuid.UUID{}, false
}

// MarshalJSON encodes the kind in the externally tagged form used by
// prior saved state: "NonProject" or {"ProjectRelated":"<uuid>"}.
func (k EventKind) MarshalJSON() ([]byte, error) {
	switch k.Type {
	case KindNonProject:
		return json.Marshal(string(KindNonProject))
	case KindProjectRelated:
		return json.Marshal(map[string]uuid.UUID{
			string(KindProjectRelated): k.ProjectID,
		})
	default:
		return nil, fmt.Errorf("unknown event kind: %q", k.Type)
	}
}

// UnmarshalJSON decodes both tagged forms accepted by MarshalJSON.
func (k *EventKind) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != string(KindNonProject) {
			return fmt.Errorf("unknown event kind: %q", tag)
		}
		*k = NonProject()
		return nil
	}

	var tagged map[string]uuid.UUID
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("malformed event kind: %w", err)
	}
	projectID, ok := tagged[string(KindProjectRelated)]
	if !ok {
		return fmt.Errorf("malformed event kind: missing %s tag", KindProjectRelated)
	}
	*k = ProjectRelated(projectID)
	return nil
}
