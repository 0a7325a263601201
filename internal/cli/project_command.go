package cli

import (
	"fmt"

	"project-tracker/internal/domain"
	"project-tracker/internal/validation"
)

// ProjectCommand handles the project subcommands
type ProjectCommand struct {
	app          *App
	validator    *validation.ProjectValidator
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(app *App) *ProjectCommand {
	return &ProjectCommand{
		app:          app,
		validator:    validation.NewProjectValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new project. The first project added becomes current.
func (c *ProjectCommand) Add(name string, description string) error {
	validName, err := c.validator.GetValidProjectName(name)
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	project, err := c.app.api.AddProject(validName, optional(description))
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Added project: %s (%s)\n", project.Name, project.ID)
	if project.IsActive {
		fmt.Println("This is now the current project")
	}
	return nil
}

// List prints all projects, marking the current one.
func (c *ProjectCommand) List() error {
	projects := c.app.api.ListProjects()
	if len(projects) == 0 {
		fmt.Println("No projects yet")
		return nil
	}

	for _, project := range projects {
		marker := "  "
		if project.IsActive {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, formatProject(project))
	}
	return nil
}

// Switch makes the named project current.
func (c *ProjectCommand) Switch(ref string) error {
	project, err := c.app.resolveProject(ref)
	if err != nil {
		return c.errorHandler.Handle("switch project", err)
	}

	if err := c.app.api.SwitchProject(project.ID); err != nil {
		return c.errorHandler.Handle("switch project", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Switched to project: %s\n", project.Name)
	return nil
}

// Remove deletes a project. Its events stay in the ledger.
func (c *ProjectCommand) Remove(ref string) error {
	project, err := c.app.resolveProject(ref)
	if err != nil {
		return c.errorHandler.Handle("remove project", err)
	}

	wasCurrent := project.IsActive
	if err := c.app.api.RemoveProject(project.ID); err != nil {
		return c.errorHandler.Handle("remove project", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Removed project: %s\n", project.Name)
	if wasCurrent {
		fmt.Println("No project is current now; use 'pt project switch' to pick one")
	}
	return nil
}

// Update changes a project's name or description.
func (c *ProjectCommand) Update(ref string, name string, description string) error {
	if name == "" && description == "" {
		return c.errorHandler.Handle("update project", fmt.Errorf("nothing to update; pass --name or --description"))
	}

	if name != "" {
		if _, err := c.validator.GetValidProjectName(name); err != nil {
			return c.errorHandler.Handle("update project", err)
		}
	}

	project, err := c.app.resolveProject(ref)
	if err != nil {
		return c.errorHandler.Handle("update project", err)
	}

	if err := c.app.api.UpdateProject(project.ID, optional(name), optional(description)); err != nil {
		return c.errorHandler.Handle("update project", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	updated, _ := c.app.api.GetProject(project.ID)
	fmt.Printf("Updated project: %s\n", formatProject(updated))
	return nil
}

// Current prints the current project, if any.
func (c *ProjectCommand) Current() error {
	project, ok := c.app.api.CurrentProject()
	if !ok {
		fmt.Println("No current project")
		return nil
	}

	fmt.Printf("Current project: %s\n", formatProject(project))
	return nil
}

func formatProject(project domain.Project) string {
	if project.Description != nil && *project.Description != "" {
		return fmt.Sprintf("%s (%s) - %s", project.Name, project.ID, *project.Description)
	}
	return fmt.Sprintf("%s (%s)", project.Name, project.ID)
}
