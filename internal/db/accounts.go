package db

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

// CreateUserParams carries an already-validated, already-hashed registration
// record. Password must be the bcrypt hash.
type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Age      *int
	Country  string
	About    string
	Admin    bool
}

type Accounts interface {
	// EmailExists reports whether a user with the email is already
	// registered. Callers must not rely on it for uniqueness; the unique
	// index on the email column is authoritative at insert time.
	EmailExists(ctx context.Context, email string) (bool, error)
	// InsertUser persists the record and returns the generated id.
	// ErrConflict signals a duplicate email.
	InsertUser(ctx context.Context, p CreateUserParams) (int64, error)
	// GetAuthDataByEmail returns the credential row for a login attempt.
	GetAuthDataByEmail(ctx context.Context, email string) (domain.UserAuth, error)
}
