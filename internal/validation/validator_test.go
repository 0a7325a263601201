package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("name"))
	assert.True(t, v.IsNonEmptyString("  name  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
}

func TestValidator_IsValidNameLength(t *testing.T) {
	t.Run("defaults allow 1 to 255 characters", func(t *testing.T) {
		v := NewValidator()

		assert.True(t, v.IsValidNameLength("x"))
		assert.True(t, v.IsValidNameLength(strings.Repeat("x", 255)))
		assert.False(t, v.IsValidNameLength(""))
		assert.False(t, v.IsValidNameLength(strings.Repeat("x", 256)))
	})

	t.Run("configured limits take precedence", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Validation.NameMinLength = 3
		cfg.Validation.NameMaxLength = 5
		v := NewValidatorWithConfig(cfg)

		assert.False(t, v.IsValidNameLength("ab"))
		assert.True(t, v.IsValidNameLength("abc"))
		assert.False(t, v.IsValidNameLength("abcdef"))
	})
}

func TestValidator_IsValidID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidID(uuid.New().String()))
	assert.False(t, v.IsValidID("not-a-uuid"))
	assert.False(t, v.IsValidID(""))
}

func TestValidator_IsValidTimeRange(t *testing.T) {
	v := NewValidator()
	start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	t.Run("nil end time is an active event", func(t *testing.T) {
		assert.True(t, v.IsValidTimeRange(start, nil))
	})

	t.Run("end must be strictly after start", func(t *testing.T) {
		after := start.Add(time.Minute)
		before := start.Add(-time.Minute)
		equal := start

		assert.True(t, v.IsValidTimeRange(start, &after))
		assert.False(t, v.IsValidTimeRange(start, &before))
		assert.False(t, v.IsValidTimeRange(start, &equal))
	})
}

func TestProjectValidator(t *testing.T) {
	pv := NewProjectValidator()

	t.Run("valid name passes and is trimmed", func(t *testing.T) {
		name, err := pv.GetValidProjectName("  Website  ")
		require.NoError(t, err)
		assert.Equal(t, "Website", name)
	})

	t.Run("empty name is required", func(t *testing.T) {
		err := pv.ValidateProjectName("   ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "project_name")
	})

	t.Run("overlong name fails", func(t *testing.T) {
		err := pv.ValidateProjectName(strings.Repeat("x", 300))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("id must be a uuid", func(t *testing.T) {
		assert.NoError(t, pv.ValidateProjectID(uuid.New().String()))
		assert.Error(t, pv.ValidateProjectID("nope"))
	})
}

func TestEventValidator(t *testing.T) {
	ev := NewEventValidator()

	t.Run("valid title passes and is trimmed", func(t *testing.T) {
		title, err := ev.GetValidEventTitle("  Wireframes  ")
		require.NoError(t, err)
		assert.Equal(t, "Wireframes", title)
	})

	t.Run("empty title is required", func(t *testing.T) {
		err := ev.ValidateEventTitle("")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("id must be a uuid", func(t *testing.T) {
		assert.NoError(t, ev.ValidateEventID(uuid.New().String()))
		assert.Error(t, ev.ValidateEventID("nope"))
	})

	t.Run("times must be a valid range", func(t *testing.T) {
		start := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		bad := start.Add(-time.Hour)

		assert.NoError(t, ev.ValidateEventTimes(start, nil))
		assert.NoError(t, ev.ValidateEventTimes(start, &end))
		assert.Error(t, ev.ValidateEventTimes(start, &bad))
	})
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("project_name")

	message := ve.GetUserFriendlyMessage()
	assert.NotEmpty(t, message)
	assert.True(t, ve.HasErrors())
}
