package registry

import (
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
)

// Registry owns the set of projects and the single current-project
// pointer. At most one project is active at any time; every activation
// transition goes through SwitchTo, which clears all other flags.
//
// The registry is used by a single interactive session and performs no
// locking.
type Registry struct {
	projects  map[uuid.UUID]domain.Project
	currentID *uuid.UUID
}

// New creates an empty registry with no current project.
func New() *Registry {
	return &Registry{
		projects: make(map[uuid.UUID]domain.Project),
	}
}

// Add creates a new project and returns its id. The very first project
// added to an empty registry is auto-activated and becomes the current
// project; all later additions start inactive.
func (r *Registry) Add(name string, description *string) uuid.UUID {
	project := domain.NewProject(name, description)

	if len(r.projects) == 0 {
		project.SetActive(true)
		id := project.ID
		r.currentID = &id
	}

	r.projects[project.ID] = project
	return project.ID
}

// Remove deletes a project. If it was the current project, the pointer
// is cleared; no fallback project is auto-selected.
func (r *Registry) Remove(id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return errors.NewNotFoundError("project", id.String())
	}

	if r.currentID != nil && *r.currentID == id {
		r.currentID = nil
	}

	delete(r.projects, id)
	return nil
}

// SwitchTo makes the given project the current one, deactivating every
// other project. Repeating the switch is idempotent.
func (r *Registry) SwitchTo(id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return errors.NewNotFoundError("project", id.String())
	}

	for pid, project := range r.projects {
		project.SetActive(pid == id)
		r.projects[pid] = project
	}

	current := id
	r.currentID = &current
	return nil
}

// Current returns the current project, if any.
func (r *Registry) Current() (domain.Project, bool) {
	if r.currentID == nil {
		return domain.Project{}, false
	}
	project, ok := r.projects[*r.currentID]
	return project, ok
}

// Get returns the project with the given id, if present.
func (r *Registry) Get(id uuid.UUID) (domain.Project, bool) {
	project, ok := r.projects[id]
	return project, ok
}

// List returns all projects in unspecified order.
func (r *Registry) List() []domain.Project {
	projects := make([]domain.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, project)
	}
	return projects
}

// Update applies a partial update: only non-nil fields change.
func (r *Registry) Update(id uuid.UUID, name, description *string) error {
	project, ok := r.projects[id]
	if !ok {
		return errors.NewNotFoundError("project", id.String())
	}

	if name != nil {
		project.Name = *name
	}
	if description != nil {
		project.Description = description
	}

	r.projects[id] = project
	return nil
}

// Count returns the number of projects.
func (r *Registry) Count() int {
	return len(r.projects)
}

// Exists reports whether a project with the given id is registered.
func (r *Registry) Exists(id uuid.UUID) bool {
	_, ok := r.projects[id]
	return ok
}

// Names returns a project-id to name lookup table for report assembly.
func (r *Registry) Names() map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(r.projects))
	for id, project := range r.projects {
		names[id] = project.Name
	}
	return names
}

// NewCurrentProjectEvent builds (but does not store) an event linked to
// the current project, started now. It fails when no project is
// current.
func (r *Registry) NewCurrentProjectEvent(title string, description *string) (domain.Event, error) {
	if r.currentID == nil {
		return domain.Event{}, errors.NewNoActiveProjectError()
	}
	kind := domain.ProjectRelated(*r.currentID)
	return domain.NewEvent(title, description, kind, time.Now().UTC()), nil
}

// CurrentProjectID returns the id the convenience event path would
// link to, if a project is current.
func (r *Registry) CurrentProjectID() (uuid.UUID, bool) {
	if r.currentID == nil {
		return uuid.UUID{}, false
	}
	return *r.currentID, true
}

// Restore repopulates an empty registry from a snapshot, preserving
// each project's active flag. The current-project pointer is recovered
// from the single active project, if any.
func (r *Registry) Restore(projects []domain.Project) {
	r.projects = make(map[uuid.UUID]domain.Project, len(projects))
	r.currentID = nil

	for _, project := range projects {
		r.projects[project.ID] = project
		if project.IsActive {
			id := project.ID
			r.currentID = &id
		}
	}
}
