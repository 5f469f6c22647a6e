package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/service"
)

const SessionKey = "user"

// Session is the client-held login marker. It suppresses the login prompt
// and seeds the requester identity; permissions themselves always come from
// the stored account row via the service layer.
type Session struct {
	UserID   int64
	Email    string
	Username string
	Admin    bool
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

// Identity derives the requester identity for access-controlled calls. An
// absent or unreadable session yields the anonymous identity.
func Identity(ctx context.Context) domain.Identity {
	s, ok := GetSession(ctx)
	if !ok {
		return domain.Identity{}
	}
	return domain.Identity{UserID: s.UserID, Admin: s.Admin}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := context.WithValue(r.Context(), key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				h.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "forbidden"})
		})
	}
}

// Login verifies credentials and issues the session marker. The three
// failure classes stay distinguishable: unknown email, wrong password, and
// a generic problem for anything else.
func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form body"})
			return
		}

		email := r.Form.Get("email")
		password := r.Form.Get("password")

		u, err := handler.service.Authenticate(r.Context(), email, password)
		if err != nil {
			writeLoginError(w, err)
			return
		}

		session := handler.SessionManager.Load(r)
		err = session.PutObject(w, SessionKey, Session{
			UserID:   u.UserID,
			Email:    u.Email,
			Username: u.Username,
			Admin:    u.Admin,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create login session")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to create session"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"username": u.Username})
	}
}

func writeLoginError(w http.ResponseWriter, err error) {
	code := GetCode(err)
	switch code {
	case http.StatusUnauthorized:
		field := "password"
		if errors.Is(err, service.ErrAccountNotFound) {
			field = "email"
		}
		writeJSON(w, code, map[string]any{"errors": map[string]string{field: err.Error()}})
	default:
		writeError(w, err)
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}

		prev := r.URL.Query().Get("prev")
		if prev == "" {
			prev = "/"
		}
		http.Redirect(w, r, prev, http.StatusSeeOther)
	}
}
