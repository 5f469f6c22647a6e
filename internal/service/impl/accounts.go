package impl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/mailer"
	"github.com/tsnews/newsdesk/internal/service"
	"github.com/tsnews/newsdesk/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

const emailTakenMsg = "this email is already registered"

func (s *AppService) ValidateEmail(ctx context.Context, email string) (service.EmailValidation, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validate.Email(email); err != nil {
		return service.EmailValidation{Valid: false, Message: "invalid email format"}, nil
	}

	exists, err := s.DB.EmailExists(ctx, email)
	if err != nil {
		return service.EmailValidation{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	if exists {
		return service.EmailValidation{Valid: false, Message: emailTakenMsg}, nil
	}
	return service.EmailValidation{Valid: true, Message: "email is valid"}, nil
}

func (s *AppService) Register(ctx context.Context, form domain.RegistrationForm) (service.RegisterResult, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))

	ferrs := validate.Registration(form, s.Limits)

	// The uniqueness pre-check only runs when the email itself parsed; it is
	// a courtesy, the unique index decides for real at insert time.
	if !hasField(ferrs, "email") {
		exists, err := s.DB.EmailExists(ctx, form.Email)
		if err != nil {
			return service.RegisterResult{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
		}
		if exists {
			ferrs = append(ferrs, validate.FieldError{Field: "email", Message: emailTakenMsg})
		}
	}

	if len(ferrs) > 0 {
		return service.RegisterResult{}, &service.ValidationError{Fields: ferrs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost())
	if err != nil {
		return service.RegisterResult{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	p := db.CreateUserParams{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hash),
	}
	if form.Additional {
		p.Age = form.Age
		p.Country = form.Country
		p.About = form.About
	}

	id, err := s.DB.InsertUser(ctx, p)
	if err != nil {
		if errors.Is(err, db.ErrConflict) {
			// Lost the race to a concurrent registration. Same outcome as
			// the pre-check, and nothing was written.
			return service.RegisterResult{}, &service.ValidationError{
				Fields: validate.FieldErrors{{Field: "email", Message: emailTakenMsg}},
			}
		}
		return service.RegisterResult{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	result := service.RegisterResult{UserID: id}

	vars := map[string]string{
		"Email":    form.Email,
		"Username": form.Username,
	}
	if form.Additional {
		vars["Age"] = strconv.Itoa(*form.Age)
		vars["Country"] = form.Country
		vars["About"] = form.About
	}

	if err = s.Mailer.Send(ctx, mailer.KeyRegistrationConfirmation, form.Email, vars); err != nil {
		// The registration stands either way.
		log.Warn().Err(err).Str("email", form.Email).Msg("failed to schedule confirmation mail")
		result.MailWarning = true
	}

	return result, nil
}

func (s *AppService) Authenticate(ctx context.Context, email, password string) (domain.UserAuth, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.DB.GetAuthDataByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return domain.UserAuth{}, service.ErrAccountNotFound
		}
		return domain.UserAuth{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.UserAuth{}, service.ErrIncorrectPassword
	}
	return u, nil
}

func hasField(errs validate.FieldErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
