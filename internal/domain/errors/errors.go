// Package errors defines the application error taxonomy of the normalization
// layer. Invariant violations and unknown-shape errors signal a data-contract
// breach with the upstream SDK and are not expected under correct operation.
// User-facing validation errors are never represented here; they travel as
// entity.FormError data.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
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
	// Normalization invariant violations: a platform record broke the data
	// contract this layer relies on.
	ErrIncompleteAddress = NewBaseError(
		http.StatusInternalServerError,
		"ADDRESS_INCOMPLETE",
		"platform address is missing required fields",
		"",
	)

	ErrIncompleteRegisterData = NewBaseError(
		http.StatusBadRequest,
		"REGISTER_DATA_INCOMPLETE",
		"registration data is missing required fields",
		"",
	)

	// Unknown-shape errors: the record matches neither known platform.
	ErrUnknownPlatformRecord = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLATFORM_RECORD",
		"record does not match the active platform shape",
		"",
	)

	ErrUnsupportedPlatform = NewBaseError(
		http.StatusInternalServerError,
		"UNSUPPORTED_PLATFORM",
		"platform is not one of the supported commerce backends",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)
