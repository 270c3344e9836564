// Package apperr defines the error kinds shared by the photo services and the
// HTTP layer. Callers match kinds with errors.Is and surface Message to users.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrInvalidImage = errors.New("invalid image")
	ErrNoSource     = errors.New("no source rendition available")
	ErrPersistence  = errors.New("persistence error")
)

type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidImage(err error) error {
	return &Error{Kind: ErrInvalidImage, Message: "uploaded file is not a valid image", Err: err}
}

func NoSource(imageID string) error {
	return &Error{Kind: ErrNoSource, Message: fmt.Sprintf("no existing rendition to derive from for image %s", imageID)}
}

func Persistence(msg string, err error) error {
	return &Error{Kind: ErrPersistence, Message: msg, Err: err}
}

// Message returns the text that is safe to show to the caller. Persistence
// and unclassified errors collapse to fallback.
func Message(err error, fallback string) string {
	var e *Error
	if !errors.As(err, &e) || errors.Is(e.Kind, ErrPersistence) {
		return fallback
	}
	return e.Message
}
