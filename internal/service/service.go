package service

import (
	"errors"

	"github.com/tsnews/newsdesk/internal/validate"
)

var (
	// ErrInvalidInput marks recoverable validation failures. The concrete
	// error is always a *ValidationError carrying field-scoped messages.
	ErrInvalidInput = errors.New("invalid")
	// ErrForbidden is an authorization denial. It intentionally carries no
	// detail about why, or about whose records exist.
	ErrForbidden = errors.New("forbidden")
	// ErrAccountNotFound and ErrIncorrectPassword are the two user-facing
	// login failures; everything else maps to ErrUnavailable.
	ErrAccountNotFound   = errors.New("no account found with this email address")
	ErrIncorrectPassword = errors.New("the password you entered is incorrect")
	// ErrUnavailable hides persistence and downstream faults behind a
	// generic, non-diagnostic message.
	ErrUnavailable = errors.New("an unexpected error occurred, please try again later")
)

// ValidationError carries the per-field messages of a rejected submission.
// It unwraps to ErrInvalidInput so boundary code can classify it without
// knowing the shape.
type ValidationError struct {
	Fields validate.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type Service interface {
	Accounts
	Activity
	Articles
}
