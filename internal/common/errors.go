package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Errors specific to the queueing core
var (
	// ErrInvalidPolicy means an unrecognized order policy was passed to the
	// filler or an ordered-read helper. Always a caller bug; never retried.
	ErrInvalidPolicy = errors.New("unrecognized order policy")

	// ErrAssignmentNotFound means label/unassign was called without a matching
	// active assignment. Indicates stale client state.
	ErrAssignmentNotFound = errors.New("no active assignment for profile and data")

	// ErrMigrationRequired means the durable schema is not at the expected
	// version. Fatal at startup; no dispatch traffic may be accepted.
	ErrMigrationRequired = errors.New("database schema is not migrated")

	// ErrSamplingImpossible means a without-replacement sample was requested
	// that exceeds the population.
	ErrSamplingImpossible = errors.New("sample larger than population")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
