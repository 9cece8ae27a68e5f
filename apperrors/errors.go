package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error into the taxonomy the HTTP layer maps from.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindTimeout
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the domain error type returned by services and repositories.
// Handlers never inspect storage errors directly; everything crossing the
// service boundary is one of these.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError // populated for validation failures
	Count   int64        // populated for dependent-count conflicts
	Err     error        // underlying cause, logged but never exposed
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation returns a 400-class error carrying per-field messages.
func NewValidation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// NewUnauthorized returns a 401-class error. The message must not reveal
// anything beyond the credential class that failed.
func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewForbidden returns a 403-class error for a recognized identity that
// lacks the required role.
func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewNotFound returns a 404-class error with an entity-specific message.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflict returns a 409-class error (duplicate slug, duplicate email).
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewHasDependents returns the 409-class error for deleting a project that
// still owns waitlist entries. The count rides along in the envelope.
func NewHasDependents(message string, count int64) *Error {
	return &Error{Kind: KindConflict, Message: message, Count: count}
}

// NewUnavailable wraps a storage connectivity failure. The cause is kept for
// logging; the client sees only a generic message.
func NewUnavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: "Service temporarily unavailable", Err: err}
}

// NewTimeout wraps a storage operation that exceeded its deadline.
func NewTimeout(err error) *Error {
	return &Error{Kind: KindTimeout, Message: "Request timeout", Err: err}
}

// NewInternal wraps any unexpected failure as an opaque 500.
func NewInternal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// From extracts the domain error from err, or classifies it as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}

// HTTPStatus maps each taxonomy kind to exactly one status code.
func HTTPStatus(err error) int {
	switch From(err).Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err belongs to the given taxonomy kind.
func IsKind(err error, kind Kind) bool {
	return From(err).Kind == kind
}
