// Package httperr defines the application's error kinds and their mapping
// to HTTP status codes, so handlers can translate any error coming out of
// the store or upload layers into a response with a single switch.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	Unknown Kind = iota
	// NotFound means the requested record does not exist.
	NotFound
	// Forbidden means the caller is authenticated but not allowed.
	Forbidden
	// Validation means the request input was rejected.
	Validation
	// Conflict means the resource already exists (duplicate username).
	Conflict
	// Storage means the underlying datastore failed.
	Storage
)

// Error carries a kind, a user-facing message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Storage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewNotFound(message string) *Error { return New(NotFound, message, nil) }

func NewForbidden(message string) *Error { return New(Forbidden, message, nil) }

func NewValidation(message string) *Error { return New(Validation, message, nil) }

func NewConflict(message string, err error) *Error { return New(Conflict, message, err) }

func NewStorage(message string, err error) *Error { return New(Storage, message, err) }

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool { return is(err, NotFound) }

func IsForbidden(err error) bool { return is(err, Forbidden) }

func IsValidation(err error) bool { return is(err, Validation) }

func IsConflict(err error) bool { return is(err, Conflict) }

// From returns err as an *Error, wrapping non-application errors as Storage.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewStorage("unexpected error", err)
}
