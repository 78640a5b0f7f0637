package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Enrollment errors
var (
	ErrDuplicateEnrollment = errors.New("user is already enrolled in this course")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
)

// Upstream errors
var (
	// ErrUpstreamUnavailable reports a transport-level failure while talking
	// to the collaborating user service. It is deliberately distinct from
	// ErrUserNotFound: a remote 404 means the user does not exist, anything
	// else means we could not find out.
	ErrUpstreamUnavailable = errors.New("user service unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
