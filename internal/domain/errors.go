package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that carry their own HTTP status code. Handlers
// map any error implementing it straight to a problem response; everything
// else becomes a 500.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a document or file was not found (or could
	// not be read as a document).
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input: missing required fields,
	// a disallowed file type, an oversized upload.
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates a missing or mismatched admin token.
	UnauthorizedError struct {
		Message string
	}

	// ConflictError indicates a create targeting a slug that already exists.
	ConflictError struct {
		Message string
		Slug    string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ConflictError) Error() string     { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ConflictError) StatusCode() int     { return http.StatusConflict }

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *ConflictError) Is(target error) bool     { return target == ErrConflict }
