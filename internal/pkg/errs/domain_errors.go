package errs

import "errors"

// Marks attached to domain errors; handler/httperr maps them to status codes.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream failure")
)

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Forbidden(msg string) error {
	return Mark(New(msg), ErrForbidden)
}

func Unauthorized(msg string) error {
	return Mark(New(msg), ErrUnauthorized)
}

func InvalidState(msg string) error {
	return Mark(New(msg), ErrInvalidState)
}

func Upstream(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrUpstream)
}
