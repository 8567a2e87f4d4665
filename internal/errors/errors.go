package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound            = &NotFoundError{Entity: "tenant"}
	ErrTeamNotFound              = &NotFoundError{Entity: "team"}
	ErrMemberNotFound            = &NotFoundError{Entity: "member"}
	ErrAssignmentRuleNotFound    = &NotFoundError{Entity: "assignment rule"}
	ErrAssignmentDefaultNotFound = &NotFoundError{Entity: "assignment default"}
	ErrAssignmentCounterNotFound = &NotFoundError{Entity: "assignment counter"}
	ErrRecordAssignmentNotFound  = &NotFoundError{Entity: "record assignment"}
)

// Already Exists Errors
var (
	ErrTenantExists = &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "with this name in the tenant"}
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "with this email in the tenant"}
)

// Business Logic Errors
var (
	ErrInvalidAssignmentAction = errors.New("invalid assignment action")
	ErrInvalidAssignmentType   = errors.New("invalid assignment type")
	ErrInvalidCriteria         = errors.New("criteria is not valid JSON")
	ErrEmptyRoster             = errors.New("team has no active members")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidStatus           = errors.New("invalid status")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
