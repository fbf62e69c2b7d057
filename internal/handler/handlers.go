// Package handler is the thin HTTP shell over the animation core. It decodes
// request JSON, runs the text or audio pipeline, persists the session, and
// maps core errors onto status codes.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/animation"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/store"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/viseme"
)

// defaultSessionLimit caps GET /sessions listings when no limit is given.
const defaultSessionLimit = 10

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	logger     *zap.Logger
	table      *viseme.Table
	sampler    *animation.Sampler
	store      store.Store
	sampleRate int // fallback when a request omits sampleRate
}

// New creates handlers sharing one viseme table and session store.
func New(logger *zap.Logger, table *viseme.Table, st store.Store, sampleRate int) *Handlers {
	return &Handlers{
		logger:     logger,
		table:      table,
		sampler:    animation.NewSampler(table),
		store:      st,
		sampleRate: sampleRate,
	}
}

// RegisterRoutes mounts all API routes on r.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)

	r.Post("/status", h.CreateStatusCheck)
	r.Get("/status", h.ListStatusChecks)

	r.Post("/animate/text", h.AnimateText)
	r.Post("/animate/audio", h.AnimateAudio)

	r.Get("/sessions", h.ListSessions)
	r.Get("/sessions/{sessionId}", h.GetSession)

	r.Get("/visemes", h.VisemeTable)
}

// Root handles GET /api/.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Voice-to-3D Facial Animation API"})
}

// VisemeTable handles GET /api/visemes: the full phoneme-to-blendshape dump.
func (h *Handlers) VisemeTable(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"visemeMap": h.table.Entries()})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
