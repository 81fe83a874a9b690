// Package errors defines application-level errors carrying an HTTP status,
// a business error code, and a user-facing message.
package errors

import (
	"net/http"

	"tasker/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserConflict = NewBaseError(
		http.StatusConflict,
		"USER_CONFLICT",
		"Username or email already exists",
		"",
	)

	ErrNotEnoughPermissions = NewBaseError(
		http.StatusForbidden,
		"NOT_ENOUGH_PERMISSIONS",
		"Not enough permissions",
		"",
	)

	// Todo-related errors. A todo owned by another user is reported as not
	// found, never as forbidden, so ownership does not leak existence.
	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found",
		"",
	)

	ErrInvalidTodoState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TODO_STATE",
		"Invalid todo state",
		"",
	)

	// ErrCorruptTodoState reports an out-of-band state value read back from
	// the store. This is an integrity failure, not a client error.
	ErrCorruptTodoState = NewBaseError(
		http.StatusInternalServerError,
		"CORRUPT_TODO_STATE",
		"Stored todo state is not a recognized value",
		"",
	)

	// Authentication-related errors. Token failures share one message so a
	// forged token is indistinguishable from an expired one.
	ErrCouldNotValidateCredentials = NewBaseError(
		http.StatusUnauthorized,
		"COULD_NOT_VALIDATE_CREDENTIALS",
		"Could not validate credentials",
		"",
	)

	ErrIncorrectCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Input validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected storage failure so it surfaces
// as a generic internal error with the cause preserved for logs.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"Internal server error",
		message,
	)

	return errors.Wrap(errors.Join(base, err), message)
}
