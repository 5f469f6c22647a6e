package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tsnews/newsdesk/internal/metrics"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	if h.Config.Debug {
		r.Use(RequestLogger())
	}
	r.Use(metrics.Middleware())
	r.Use(SessionMiddleware(h))

	r.Post(LoginRoute, Login(h))
	r.Post(SignUpRoute, SignUp(h))
	r.Get("/logout", Logout(h))
	r.Get("/api/validate-email", ValidateEmail(h))

	r.Route(NewsRoute, func(r chi.Router) {
		r.Post("/", CreateArticle(h))
		r.Get("/{id}", GetArticle(h))
		r.Method("PUT", "/{id}", authenticated(UpdateArticle(h)))
	})

	r.Route(StatsRoute, func(r chi.Router) {
		r.Get("/", ListStats(h))
		r.Post("/clear", ClearStats(h))
		r.Delete("/{id}", DeleteStat(h))
		r.Put("/{id}/comment", UpdateStatComment(h))
	})

	r.Method("GET", "/metrics", promhttp.Handler())
}
