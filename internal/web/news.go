package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tsnews/newsdesk/internal/domain"
)

type articleResponse struct {
	ID           int64  `json:"id"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	DisplayTitle string `json:"display_title,omitempty"`
	Body         string `json:"body"`
	Created      int64  `json:"created"`
}

func toArticleResponse(a domain.Article) articleResponse {
	return articleResponse{
		ID:           a.ID,
		Category:     a.Category,
		Title:        a.Title,
		DisplayTitle: a.DisplayTitle,
		Body:         a.Body,
		Created:      a.Created,
	}
}

// GetArticle serves one article and records the view for tracked categories.
// The response is marked uncacheable: every individual view has to reach the
// log, so the page trades cache hits for accurate counts.
func GetArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid article id"})
			return
		}

		session, _ := GetSession(r.Context())
		article, err := h.service.GetArticle(r.Context(), id, session.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		if article.Tracked() {
			w.Header().Set("Cache-Control", "no-store")
		}
		writeJSON(w, http.StatusOK, toArticleResponse(article))
	}
}

func CreateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form body"})
			return
		}

		category := r.Form.Get("category")
		if category == "" {
			category = domain.CategoryNews
		}

		id, err := h.service.CreateArticle(r.Context(), category, r.Form.Get("title"), r.Form.Get("body"), Identity(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})
	}
}

func UpdateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid article id"})
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form body"})
			return
		}

		err = h.service.UpdateArticle(r.Context(), id, r.Form.Get("title"), r.Form.Get("body"), Identity(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id})
	}
}
