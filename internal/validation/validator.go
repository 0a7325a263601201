package validation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"project-tracker/internal/config"
)

// Validator provides common validation utilities. The core registry
// and ledger deliberately accept any input; these checks guard the
// interactive surface only.
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{config: nil} // Use defaults
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= v.nameMinLength() && length <= v.nameMaxLength()
}

// IsValidID checks if an id parses as a UUID
func (v *Validator) IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidTimeRange checks if start time is strictly before end time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Active event, no end time
	}
	return startTime.Before(*endTime)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NameMinLength returns the configured minimum name length or default
func (v *Validator) nameMinLength() int {
	if v.config != nil {
		return v.config.Validation.NameMinLength
	}
	return 1 // Default minimum
}

// NameMaxLength returns the configured maximum name length or default
func (v *Validator) nameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255 // Default maximum
}
