package api

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
)

// Function returns the serverless-style handler for
// GET /api/transcript?video_id=...&languages=...
func (h *Handler) Function() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range corsHeaders {
			w.Header().Set(k, v)
		}
		switch r.Method {
		case http.MethodOptions:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodGet:
		default:
			appErr := errors.MethodNotAllowed(r.Method)
			h.writeJSON(w, r, appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		q := r.URL.Query()
		res, err := h.resolver.Execute(r.Context(), requestFrom(q.Get("video_id"), q))
		status, body := envelope(res, err)
		h.writeJSON(w, r, status, body)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithContext(r.Context()).Warn("write response failed", logger.Fields(logger.FieldError, err.Error()))
	}
}
