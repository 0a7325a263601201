package validation

// ProjectValidator provides validation for project-related input
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectName validates a project name for creation or update
func (pv *ProjectValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	trimmedName := pv.validator.TrimAndValidateString(name)

	if !pv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("project_name")
		return validationError
	}

	if !pv.validator.IsValidNameLength(trimmedName) {
		validationError.AddInvalidLengthError("project_name", trimmedName, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project id string
func (pv *ProjectValidator) ValidateProjectID(id string) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("project_id", id, "UUID")
		return validationError
	}
	return nil
}

// GetValidProjectName returns a cleaned project name if valid
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	if err := pv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return pv.validator.TrimAndValidateString(name), nil
}
