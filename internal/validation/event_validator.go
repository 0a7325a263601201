package validation

import (
	"time"
)

// EventValidator provides validation for event-related input
type EventValidator struct {
	validator *Validator
}

// NewEventValidator creates a new event validator
func NewEventValidator() *EventValidator {
	return &EventValidator{
		validator: NewValidator(),
	}
}

// ValidateEventTitle validates an event title for creation or update
func (ev *EventValidator) ValidateEventTitle(title string) error {
	validationError := NewValidationError()

	trimmedTitle := ev.validator.TrimAndValidateString(title)

	if !ev.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("event_title")
		return validationError
	}

	if !ev.validator.IsValidNameLength(trimmedTitle) {
		validationError.AddInvalidLengthError("event_title", trimmedTitle, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEventID validates an event id string
func (ev *EventValidator) ValidateEventID(id string) error {
	if !ev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("event_id", id, "UUID")
		return validationError
	}
	return nil
}

// ValidateEventTimes validates an event's time range for completion
func (ev *EventValidator) ValidateEventTimes(startTime time.Time, endTime *time.Time) error {
	if !ev.validator.IsValidTimeRange(startTime, endTime) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("end_time", endTime, "must be after start time")
		return validationError
	}
	return nil
}

// GetValidEventTitle returns a cleaned event title if valid
func (ev *EventValidator) GetValidEventTitle(title string) (string, error) {
	if err := ev.ValidateEventTitle(title); err != nil {
		return "", err
	}
	return ev.validator.TrimAndValidateString(title), nil
}
