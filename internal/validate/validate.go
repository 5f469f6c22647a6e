package validate

import (
	"fmt"
	"net/mail"

	"github.com/tsnews/newsdesk/internal/domain"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 32
	MaxCommentLen  = 128
	MaxAge         = 150
)

// Limits holds the configurable field-length caps of the signup form.
type Limits struct {
	UsernameMax int
	CountryMax  int
	AboutMax    int
}

func DefaultLimits() Limits {
	return Limits{
		UsernameMax: 32,
		CountryMax:  32,
		AboutMax:    256,
	}
}

// FieldError is a validation failure scoped to a single form field, so a UI
// can highlight the offending input.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors aggregates failures across a whole form submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	switch len(e) {
	case 0:
		return "valid"
	case 1:
		return e[0].Error()
	}
	s := e[0].Error()
	for _, f := range e[1:] {
		s += "; " + f.Error()
	}
	return s
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Email checks syntax only; uniqueness is the credential service's concern.
func Email(email string) error {
	if len(email) == 0 {
		return FieldError{Field: "email", Message: "empty email"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return FieldError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// PasswordPair checks the password length bounds and the confirmation match.
// Failures are attached to both password fields independently.
func PasswordPair(password, confirm string) FieldErrors {
	var errs FieldErrors
	if l := len(password); l < MinPasswordLen || l > MaxPasswordLen {
		msg := fmt.Sprintf("password must be between %d and %d characters long", MinPasswordLen, MaxPasswordLen)
		errs.add("password", msg)
		errs.add("confirm_password", msg)
		return errs
	}
	if password != confirm {
		msg := "passwords do not match, please confirm your password again"
		errs.add("password", msg)
		errs.add("confirm_password", msg)
	}
	return errs
}

// BoundedString checks a plain string field. A required-but-empty value
// short-circuits; the length check only runs when the presence check passed.
func BoundedString(field, value string, maxLen int, allowEmpty bool) error {
	if !allowEmpty && len(value) == 0 {
		return FieldError{Field: field, Message: "this field cannot be empty"}
	}
	if len(value) > maxLen {
		return FieldError{Field: field, Message: fmt.Sprintf("this field cannot exceed %d characters", maxLen)}
	}
	return nil
}

// Age fails when the field is unset or above MaxAge. There is no lower bound
// beyond "present", so negative ages pass; kept that way on purpose to match
// the long-standing behavior of the signup form.
func Age(age *int) error {
	if age == nil || *age > MaxAge {
		return FieldError{Field: "age", Message: fmt.Sprintf("please enter a valid age (0-%d)", MaxAge)}
	}
	return nil
}

// Registration runs every field rule of the signup form and aggregates the
// results. A nil return means the form passed.
func Registration(form domain.RegistrationForm, limits Limits) FieldErrors {
	var errs FieldErrors

	if err := BoundedString("username", form.Username, limits.UsernameMax, false); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := Email(form.Email); err != nil {
		errs = append(errs, err.(FieldError))
	}
	errs = append(errs, PasswordPair(form.Password, form.ConfirmPassword)...)

	if form.Additional {
		if err := Age(form.Age); err != nil {
			errs = append(errs, err.(FieldError))
		}
		if err := BoundedString("country", form.Country, limits.CountryMax, false); err != nil {
			errs = append(errs, err.(FieldError))
		}
		if err := BoundedString("about", form.About, limits.AboutMax, true); err != nil {
			errs = append(errs, err.(FieldError))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Comment bounds the free-text comment of an activity entry.
func Comment(comment string) error {
	return BoundedString("comment", comment, MaxCommentLen, true)
}
