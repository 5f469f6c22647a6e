package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert loses the race on a unique
	// constraint, e.g. two registrations with the same email.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal")
)

// DB is the full persistence surface of the application. Implementations
// live in the impl package; tests use the generated mock.
type DB interface {
	Accounts
	Activity
	Articles
}
