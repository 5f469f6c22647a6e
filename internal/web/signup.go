package web

import (
	"net/http"
	"strconv"

	"github.com/tsnews/newsdesk/internal/domain"
)

// SignUp handles a registration submission. Failures come back as
// field-scoped messages; success returns the new id plus a warning flag when
// the confirmation mail could not be scheduled.
func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form body"})
			return
		}

		form := domain.RegistrationForm{
			Username:        r.Form.Get("username"),
			Email:           r.Form.Get("email"),
			Password:        r.Form.Get("password"),
			ConfirmPassword: r.Form.Get("confirm_password"),
			Additional:      r.Form.Get("additional") != "",
			Country:         r.Form.Get("country"),
			About:           r.Form.Get("about"),
		}
		if age := r.Form.Get("age"); age != "" {
			if n, err := strconv.Atoi(age); err == nil {
				form.Age = &n
			}
		}

		result, err := h.service.Register(r.Context(), form)
		if err != nil {
			writeError(w, err)
			return
		}

		body := map[string]any{
			"id":      result.UserID,
			"message": "a confirmation email has been sent to " + form.Email,
		}
		if result.MailWarning {
			body["warning"] = "there was a problem sending your confirmation email"
			delete(body, "message")
		}
		writeJSON(w, http.StatusCreated, body)
	}
}

// ValidateEmail is the live check behind the signup form's email field.
func ValidateEmail(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.ValidateEmail(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"valid":   result.Valid,
			"message": result.Message,
		})
	}
}
