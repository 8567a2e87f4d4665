package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "tenant"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrAssignmentRuleNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(ErrAssignmentDefaultNotFound))
		assert.False(t, IsNotFound(ErrInvalidCriteria))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "with this name in the tenant"}
		assert.Equal(t, "team already exists with this name in the tenant", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "member", Context: "in tenant"}
		err2 := &AlreadyExistsError{Entity: "member", Context: "in tenant"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTenantExists))
		assert.False(t, IsAlreadyExists(ErrTenantNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Assignment errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidAssignmentAction)
		assert.Error(t, ErrInvalidAssignmentType)
		assert.Error(t, ErrInvalidCriteria)
		assert.Error(t, ErrEmptyRoster)
	})

	t.Run("Request errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidPaginationParams)
		assert.Error(t, ErrInvalidStatus)
	})
}
