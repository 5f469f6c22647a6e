package domain

// User is a self-registered reader. Optional profile fields are only present
// when the "additional information" block of the signup form was filled in.
type User struct {
	ID       int64
	Username string
	Email    string
	Age      *int
	Country  string
	About    string
	Admin    bool
	Created  int64
}

// UserAuth carries the data needed to verify credentials and to build the
// login session afterwards. Password is the bcrypt hash, never plaintext.
type UserAuth struct {
	UserID   int64
	Username string
	Email    string
	Password string
	Admin    bool
}

// RegistrationForm is the typed command built from a signup submission.
type RegistrationForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	// Additional toggles the optional profile block; age, country and about
	// are only validated and stored when it is set.
	Additional bool
	Age        *int
	Country    string
	About      string
}
