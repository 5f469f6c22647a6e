package service

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

// EmailValidation is the outcome of the live email check on the signup form.
// Message is user-facing in both the valid and invalid case.
type EmailValidation struct {
	Valid   bool
	Message string
}

// RegisterResult reports a successful registration. MailWarning is set when
// the confirmation mail could not be scheduled; the registration itself
// still stands.
type RegisterResult struct {
	UserID      int64
	MailWarning bool
}

type Accounts interface {
	// ValidateEmail checks syntax and uniqueness. The uniqueness part is a
	// UX nicety; Register tolerates losing the race afterwards.
	ValidateEmail(ctx context.Context, email string) (EmailValidation, error)
	// Register validates every field of the form, and on success persists
	// the user with a hashed password and schedules a confirmation mail.
	// Validation failures return a *ValidationError and write nothing.
	Register(ctx context.Context, form domain.RegistrationForm) (RegisterResult, error)
	// Authenticate verifies credentials against the stored hash. Failures
	// are ErrAccountNotFound, ErrIncorrectPassword or ErrUnavailable; on
	// success the caller issues the session marker.
	Authenticate(ctx context.Context, email, password string) (domain.UserAuth, error)
}
