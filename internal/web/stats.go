package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/service"
)

type entryResponse struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"uid"`
	ArticleID int64  `json:"article_id"`
	Action    string `json:"action"`
	Comment   string `json:"comment,omitempty"`
	Created   int64  `json:"created"`
}

// ListStats serves the filterable, sortable statistics listing. Admins see
// everything; everyone else only their own entries, whatever uid they pass.
func ListStats(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := service.Filter{
			UserID:    parseID(q.Get("uid")),
			ArticleID: parseID(q.Get("article_id")),
			Action:    domain.ActionKind(q.Get("action")),
			SortBy:    q.Get("sort"),
			SortDesc:  q.Get("dir") == "desc",
		}
		if filter.Action != "" && !filter.Action.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "action must be view or edit"})
			return
		}

		page := int(parseID(q.Get("page")))
		result, err := h.service.Query(r.Context(), filter, Identity(r.Context()), page)
		if err != nil {
			writeError(w, err)
			return
		}

		entries := make([]entryResponse, 0, len(result.Entries))
		for _, e := range result.Entries {
			entries = append(entries, entryResponse{
				ID:        e.ID,
				UserID:    e.UserID,
				ArticleID: e.ArticleID,
				Action:    string(e.Action),
				Comment:   e.Comment,
				Created:   e.Created,
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"entries":   entries,
			"page":      result.Page,
			"page_size": result.PageSize,
			"total":     result.Total,
		})
	}
}

// ClearStats deletes every entry; elevated permission only.
func ClearStats(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.service.DeleteAll(r.Context(), Identity(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": count})
	}
}

func DeleteStat(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid entry id"})
			return
		}

		if err = h.service.DeleteOne(r.Context(), id, Identity(r.Context())); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func UpdateStatComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid entry id"})
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to parse form body"})
			return
		}

		err = h.service.UpdateComment(r.Context(), id, r.Form.Get("comment"), Identity(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseID(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
