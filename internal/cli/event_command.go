package cli

import (
	"fmt"
	"sort"
	"time"

	"project-tracker/internal/api"
	"project-tracker/internal/domain"
	"project-tracker/internal/timecalc"
	"project-tracker/internal/validation"
)

// EventCommand handles the event subcommands
type EventCommand struct {
	app          *App
	validator    *validation.EventValidator
	errorHandler *ErrorHandler
}

// NewEventCommand creates a new event command handler
func NewEventCommand(app *App) *EventCommand {
	return &EventCommand{
		app:          app,
		validator:    validation.NewEventValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// StartOptions carries the flags of the event start command.
type StartOptions struct {
	Description string
	Project     string
	NonProject  bool
	At          string
}

// Start begins a new event. Without --project or --non-project the
// event is linked to the current project.
func (c *EventCommand) Start(title string, opts StartOptions) error {
	validTitle, err := c.validator.GetValidEventTitle(title)
	if err != nil {
		return c.errorHandler.Handle("start event", err)
	}

	var startTime *time.Time
	if opts.At != "" {
		t, err := parseTimeArg(opts.At)
		if err != nil {
			return c.errorHandler.Handle("start event", err)
		}
		startTime = &t
	}

	description := optional(opts.Description)

	var event domain.Event
	switch {
	case opts.NonProject:
		event, err = c.app.api.StartNonProjectEvent(validTitle, description, startTime)
	case opts.Project != "":
		project, resolveErr := c.app.resolveProject(opts.Project)
		if resolveErr != nil {
			return c.errorHandler.Handle("start event", resolveErr)
		}
		event, err = c.app.api.StartProjectEvent(validTitle, description, project.ID, startTime)
	default:
		event, err = c.app.api.StartCurrentProjectEvent(validTitle, description, startTime)
	}
	if err != nil {
		return c.errorHandler.Handle("start event", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Started event: %s (%s)\n", event.Title, shortID(event.ID.String()))
	return nil
}

// Stop completes an event. Without a reference it stops the most
// recently started active event.
func (c *EventCommand) Stop(ref string, at string) error {
	var event domain.Event
	if ref == "" {
		var ok bool
		event, ok = c.app.mostRecentActiveEvent()
		if !ok {
			fmt.Println("No active events")
			return nil
		}
	} else {
		var err error
		event, err = c.app.resolveEvent(ref)
		if err != nil {
			return c.errorHandler.Handle("stop event", err)
		}
	}

	var endTime *time.Time
	if at != "" {
		t, err := parseTimeArg(at)
		if err != nil {
			return c.errorHandler.Handle("stop event", err)
		}
		endTime = &t
	}

	if err := c.app.api.CompleteEvent(event.ID, endTime); err != nil {
		return c.errorHandler.Handle("stop event", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	completed, _ := c.app.api.GetEvent(event.ID)
	record, hasRecord := recordFor(c.app, event)
	fmt.Printf("Completed event: %s\n", completed.Title)
	if hasRecord {
		fmt.Printf("Recorded time: %s\n", timecalc.FormatDuration(record.DurationMinutes))
	}
	return nil
}

// List prints events matching the filter, oldest first.
func (c *EventCommand) List(filter string) error {
	events, err := c.app.api.ListEvents(api.EventFilter(filter))
	if err != nil {
		return c.errorHandler.Handle("list events", err)
	}

	if len(events) == 0 {
		fmt.Println("No events")
		return nil
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	names := projectNames(c.app)
	for _, event := range events {
		fmt.Println(c.formatEvent(event, names))
	}
	return nil
}

// Delete removes an event and its derived time record.
func (c *EventCommand) Delete(ref string) error {
	event, err := c.app.resolveEvent(ref)
	if err != nil {
		return c.errorHandler.Handle("delete event", err)
	}

	if err := c.app.api.DeleteEvent(event.ID); err != nil {
		return c.errorHandler.Handle("delete event", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	fmt.Printf("Deleted event: %s\n", event.Title)
	return nil
}

// Update changes an event's title or description.
func (c *EventCommand) Update(ref string, title string, description string) error {
	if title == "" && description == "" {
		return c.errorHandler.Handle("update event", fmt.Errorf("nothing to update; pass --title or --description"))
	}

	if title != "" {
		if _, err := c.validator.GetValidEventTitle(title); err != nil {
			return c.errorHandler.Handle("update event", err)
		}
	}

	event, err := c.app.resolveEvent(ref)
	if err != nil {
		return c.errorHandler.Handle("update event", err)
	}

	if err := c.app.api.UpdateEvent(event.ID, optional(title), optional(description)); err != nil {
		return c.errorHandler.Handle("update event", err)
	}

	if err := c.app.save(); err != nil {
		return err
	}

	updated, _ := c.app.api.GetEvent(event.ID)
	fmt.Printf("Updated event: %s\n", updated.Title)
	return nil
}

func (c *EventCommand) formatEvent(event domain.Event, names map[string]string) string {
	format := c.app.config.Time.DisplayFormat

	target := "non-project"
	if projectID, ok := event.Kind.Project(); ok {
		if name, found := names[projectID.String()]; found {
			target = name
		} else {
			target = timecalc.UnknownProjectName
		}
	}

	status := "running"
	if event.EndTime != nil {
		minutes := int64(event.EndTime.Sub(event.StartTime) / time.Minute)
		status = timecalc.FormatDuration(minutes)
	}

	return fmt.Sprintf("%s  %-30s  %-20s  %s  %s",
		shortID(event.ID.String()), event.Title, target, event.StartTime.Local().Format(format), status)
}

func projectNames(app *App) map[string]string {
	names := make(map[string]string)
	for _, project := range app.api.ListProjects() {
		names[project.ID.String()] = project.Name
	}
	return names
}

func recordFor(app *App, event domain.Event) (domain.TimeRecord, bool) {
	for _, record := range app.api.ListRecords() {
		if record.EventID == event.ID {
			return record, true
		}
	}
	return domain.TimeRecord{}, false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
