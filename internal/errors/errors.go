package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewAlreadyCompletedError creates an error for completing an event twice
func NewAlreadyCompletedError(eventID string) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyCompleted,
		Message: fmt.Sprintf("event already completed: %s", eventID),
		Code:    "ALREADY_COMPLETED",
		Context: map[string]interface{}{
			"event_id": eventID,
		},
	}
}

// NewInvalidRangeError creates an error for an end time that does not
// strictly exceed the start time
func NewInvalidRangeError(reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidRange,
		Message: fmt.Sprintf("invalid time range: %s", reason),
		Code:    "INVALID_RANGE",
		Context: map[string]interface{}{
			"reason": reason,
		},
	}
}

// NewNoActiveProjectError creates an error for project-linked operations
// attempted while no project is current
func NewNoActiveProjectError() *AppError {
	return &AppError{
		Type:    ErrorTypeNoActiveProject,
		Message: "no active project selected",
		Code:    "NO_ACTIVE_PROJECT",
		Context: make(map[string]interface{}),
	}
}

// NewStorageError creates a new storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeAlreadyCompleted,
			ErrorTypeInvalidRange, ErrorTypeNoActiveProject:
			return false // These are user errors, not system errors
		case ErrorTypeStorage:
			return true // These are system errors that should be logged
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
