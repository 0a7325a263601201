package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a tracked project in the domain model.
// This is a pure domain model without storage-specific concerns.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

// NewProject creates a new inactive project with a fresh identity.
func NewProject(name string, description *string) Project {
	return Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		IsActive:    false,
	}
}

// SetActive sets the activation flag on the project.
func (p *Project) SetActive(active bool) {
	p.IsActive = active
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
