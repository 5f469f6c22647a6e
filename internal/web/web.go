package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/config"
	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
	StatsRoute  = "/stats"
	NewsRoute   = "/news"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

// GetCode maps service and store errors onto HTTP statuses. Validation and
// authorization failures keep their specific classes; everything else is a
// generic 503 with no detail.
func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAccountNotFound), errors.Is(err, service.ErrIncorrectPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// writeError renders an error without leaking internals: field errors become
// a field->message map, everything else the mapped sentinel text only.
func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			// First message per field wins, matching form behavior.
			if _, ok := fields[f.Field]; !ok {
				fields[f.Field] = f.Message
			}
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fields})
		return
	}

	code := GetCode(err)
	msg := http.StatusText(code)
	switch {
	case errors.Is(err, service.ErrForbidden):
		msg = service.ErrForbidden.Error()
	case errors.Is(err, service.ErrAccountNotFound):
		msg = service.ErrAccountNotFound.Error()
	case errors.Is(err, service.ErrIncorrectPassword):
		msg = service.ErrIncorrectPassword.Error()
	case code == http.StatusServiceUnavailable:
		msg = service.ErrUnavailable.Error()
	}
	writeJSON(w, code, map[string]any{"error": msg})
}
