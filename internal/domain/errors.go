package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the application.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrInternal     = errors.New("internal server error")
	ErrInvalidInput = errors.New("invalid input")
)

// Error pairs one of the sentinel kinds with a message that is safe to show a client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ClientMessage returns the client-facing text of err. Errors that do not carry one
// collapse to the generic internal message.
func ClientMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ErrInternal.Error()
}
