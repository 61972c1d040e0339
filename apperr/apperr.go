// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"net/http"
)

// Error kinds. Match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrEmptyList       = errors.New("empty list")
	ErrStorage         = errors.New("storage failure")
)

// Error carries a caller-facing message, its kind and an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func New(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidArgument(message string) *Error {
	return New(ErrInvalidArgument, message, nil)
}

func NotFound(message string) *Error {
	return New(ErrNotFound, message, nil)
}

func Conflict(message string) *Error {
	return New(ErrConflict, message, nil)
}

func EmptyList(message string) *Error {
	return New(ErrEmptyList, message, nil)
}

// Storage wraps an underlying read/write failure.
func Storage(message string, err error) *Error {
	return New(ErrStorage, message, err)
}

// Status maps an error to the HTTP status code the API answers with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrEmptyList):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message without the wrapped cause.
// Errors outside the taxonomy get a generic message so internals don't leak.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
