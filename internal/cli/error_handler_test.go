package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/errors"
	"project-tracker/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("validation errors use the friendly message", func(t *testing.T) {
		ve := validation.NewValidationError()
		ve.AddRequiredError("project_name")

		err := eh.Handle("add project", ve)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add project")
		assert.Contains(t, err.Error(), "project_name is required")
	})

	t.Run("app errors use the user message", func(t *testing.T) {
		err := eh.Handle("stop event", errors.NewNoActiveProjectError())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stop event: no active project selected")
	})

	t.Run("storage errors hide internal detail", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := eh.Handle("save data", errors.NewStorageError("write data file", cause))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "A storage error occurred")
		assert.NotContains(t, err.Error(), "disk full")
	})

	t.Run("plain errors are wrapped", func(t *testing.T) {
		err := eh.Handle("do thing", stderrors.New("boom"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to do thing: boom")
	})
}

func TestErrorHandler_Predicates(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("title")

	assert.True(t, eh.IsValidationError(ve))
	assert.True(t, eh.IsValidationError(errors.NewValidationError("bad", nil)))
	assert.False(t, eh.IsValidationError(stderrors.New("plain")))

	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("event", "abc")))
	assert.False(t, eh.IsNotFoundError(stderrors.New("plain")))

	assert.True(t, eh.IsStorageError(errors.NewStorageError("save", nil)))
	assert.False(t, eh.IsStorageError(errors.NewNotFoundError("event", "abc")))

	assert.Equal(t, "NOT_FOUND", eh.GetErrorCode(errors.NewNotFoundError("event", "abc")))
}
