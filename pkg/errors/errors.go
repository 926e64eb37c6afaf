package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service failure
type Kind string

const (
	// KindInvalidArgument indicates a missing or malformed request field,
	// detected before any repository access
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindInvalidToken indicates the caller's token was missing or rejected
	// by the authentication authority
	KindInvalidToken Kind = "INVALID_TOKEN"

	// KindUnauthorized indicates an authenticated caller lacks permission
	// for the target resource
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindNotFound indicates a referenced entity does not exist
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict indicates a conflict with existing state
	KindConflict Kind = "CONFLICT"

	// KindOperationFailed indicates the authoritative state change itself
	// failed and the operation did not complete
	KindOperationFailed Kind = "OPERATION_FAILED"

	// KindInternal indicates an unexpected internal failure
	KindInternal Kind = "INTERNAL"
)

// ServiceError is the failure type returned by every service operation
type ServiceError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error kind to an HTTP status code
func (e *ServiceError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindInvalidToken:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WithCause wraps an underlying error
func (e *ServiceError) WithCause(err error) *ServiceError {
	e.Cause = err
	return e
}

// NewInvalidArgument creates an invalid-argument error
func NewInvalidArgument(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an invalid-argument error with formatting
func NewInvalidArgumentf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidToken creates an invalid-token error
func NewInvalidToken(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidToken, Message: message}
}

// NewUnauthorized creates an unauthorized error
func NewUnauthorized(message string) *ServiceError {
	return &ServiceError{Kind: KindUnauthorized, Message: message}
}

// NewNotFound creates a not-found error for the named resource
func NewNotFound(resource string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewConflict creates a conflict error
func NewConflict(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

// NewOperationFailed creates an operation-failed error
func NewOperationFailed(message string) *ServiceError {
	return &ServiceError{Kind: KindOperationFailed, Message: message}
}

// NewInternal creates an internal error
func NewInternal(message string) *ServiceError {
	return &ServiceError{Kind: KindInternal, Message: message}
}

// IsKind reports whether err is a ServiceError of the given kind
func IsKind(err error, kind Kind) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
