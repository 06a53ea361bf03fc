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
	Context string // Additional context like "for this occurrence date"
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

// ValidationError represents a malformed event definition or request.
// Rejected synchronously at creation/update, never partially applied.
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEventNotFound = &NotFoundError{Entity: "event definition"}
	ErrTaskNotFound  = &NotFoundError{Entity: "task instance"}
	ErrAlertNotFound = &NotFoundError{Entity: "delay alert"}
)

// ErrOpenAlertExists is returned when a second unacknowledged alert would be
// raised for a task that already has one open.
var ErrOpenAlertExists = &AlreadyExistsError{Entity: "open delay alert", Context: "for this task"}

// Business Logic Errors
var (
	ErrInvalidRecurrenceKind = errors.New("invalid recurrence kind")
	ErrEmptyCustomDays       = errors.New("custom recurrence requires a non-empty set of days")
	ErrInvalidRecurrenceDay  = errors.New("recurrence days must be between 0 and 6")
	ErrNonPositiveDuration   = errors.New("duration must be positive")
	ErrWindowEndBeforeStart  = errors.New("window end must not be before window start")
	ErrInvalidStartTime      = errors.New("start time must be in HH:MM format")
	ErrTaskAlreadyCompleted  = errors.New("task instance is already completed")
	ErrAlertAcknowledged     = errors.New("delay alert is already acknowledged")
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
)

// ErrStorageUnavailable signals that a cycle failed to reach storage; the
// cycle is aborted and retried at the next scheduled tick.
var ErrStorageUnavailable = errors.New("storage unavailable")

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

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
