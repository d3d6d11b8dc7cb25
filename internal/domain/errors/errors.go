package errors

import (
	"net/http"

	"campusmap/internal/errors"
)

// AppError is the contract between domain failures and the HTTP error
// handler.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Optional detail
}

// BaseError is the canonical AppError implementation.
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
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
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude or longitude is out of range",
		"",
	)

	ErrInvalidViewport = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VIEWPORT",
		"Viewport must be minLng,minLat,maxLng,maxLat",
		"",
	)

	ErrUnknownTimeWindow = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_TIME_WINDOW",
		"Unknown time window name",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendCallError wraps a failed call to an upstream store (pin store or
// events backend), implementing the AppError interface.
type BackendCallError struct {
	backend string
	err     error
}

// NewBackendCallError creates an upstream-failure error for the named
// backend.
func NewBackendCallError(backend string, err error) AppError {
	return &BackendCallError{
		backend: backend,
		err:     err,
	}
}

func (e *BackendCallError) Error() string {
	return errors.Wrapf(e.err, "%s backend call failed", e.backend).Error()
}

func (e *BackendCallError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *BackendCallError) ErrorCode() string {
	return "BACKEND_UNAVAILABLE"
}

func (e *BackendCallError) Message() string {
	return "Upstream " + e.backend + " backend is unavailable"
}

func (e *BackendCallError) Details() string {
	return e.err.Error()
}

// Unwrap exposes the upstream error to errors.Is and errors.As.
func (e *BackendCallError) Unwrap() error {
	return e.err
}
