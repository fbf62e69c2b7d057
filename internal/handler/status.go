package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/model"
)

// statusListCap bounds GET /api/status responses.
const statusListCap = 1000

// CreateStatusCheck handles POST /api/status.
func (h *Handlers) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req model.StatusCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientName == "" {
		h.writeError(w, http.StatusBadRequest, "clientName required")
		return
	}

	check := model.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.store.PutStatus(r.Context(), check); err != nil {
		h.logger.Error("store status failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to store status check")
		return
	}
	h.writeJSON(w, http.StatusOK, check)
}

// ListStatusChecks handles GET /api/status.
func (h *Handlers) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.store.ListStatus(r.Context(), statusListCap)
	if err != nil {
		h.logger.Error("list status failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list status checks")
		return
	}
	h.writeJSON(w, http.StatusOK, checks)
}
