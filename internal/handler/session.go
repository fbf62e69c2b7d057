package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/store"
)

// ListSessions handles GET /api/sessions?limit=N: recent sessions, newest
// first, frames stripped.
func (h *Handlers) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit := defaultSessionLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	sessions, err := h.store.RecentSessions(r.Context(), limit)
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	h.writeJSON(w, http.StatusOK, sessions)
}

// GetSession handles GET /api/sessions/{sessionId}: one session with its full
// frame payload.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")

	s, err := h.store.GetSession(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		h.logger.Error("get session failed", zap.Error(err), zap.String("sessionId", id))
		h.writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}
