package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/animation"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/audio"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/metrics"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/model"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/phoneme"
)

// AnimateText handles POST /api/animate/text: rule-based G2P, synthetic
// timing, fixed-rate frame sampling.
func (h *Handlers) AnimateText(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req model.TextAnimationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fps := req.FPS
	if fps <= 0 {
		fps = animation.DefaultFPS
	}

	timeline := phoneme.TextToPhonemes(req.Text)
	frames, err := h.sampler.Sample(timeline, fps)
	if err != nil {
		if errors.Is(err, animation.ErrEmptyTimeline) {
			metrics.AnimationsTotal.WithLabelValues("text", "empty").Inc()
			h.writeError(w, http.StatusBadRequest, "could not generate animation from text")
			return
		}
		h.logger.Error("text animation failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "animation failed")
		return
	}

	duration := frames[len(frames)-1].Time
	if !h.storeSession(w, r, model.AnimationSession{
		ID:        uuid.New().String(),
		InputType: "text",
		InputData: req.Text,
		Frames:    frames,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}) {
		return
	}

	metrics.AnimationsTotal.WithLabelValues("text", "ok").Inc()
	metrics.AnimationDuration.WithLabelValues("text").Observe(float64(time.Since(start).Milliseconds()))
	metrics.FramesPerRequest.Observe(float64(len(frames)))

	h.writeJSON(w, http.StatusOK, model.AnimationResponse{
		Frames:      frames,
		Duration:    duration,
		FPS:         fps,
		TotalFrames: len(frames),
	})
}

// AnimateAudio handles POST /api/animate/audio: decode base64 PCM16,
// normalize loudness, classify frame energy into coarse visemes.
func (h *Handlers) AnimateAudio(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req model.AudioAnimationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	samples, err := audio.DecodeBase64PCM16(req.AudioData)
	if err != nil {
		metrics.DecodeErrorsTotal.Inc()
		metrics.AnimationsTotal.WithLabelValues("audio", "decode_error").Inc()
		h.writeError(w, http.StatusBadRequest, "invalid audio payload")
		return
	}
	if len(samples) == 0 {
		metrics.AnimationsTotal.WithLabelValues("audio", "empty").Inc()
		h.writeError(w, http.StatusBadRequest, "empty audio data")
		return
	}

	sampleRate := req.SampleRate
	if sampleRate <= 0 {
		sampleRate = h.sampleRate
	}
	fps := req.FPS
	if fps <= 0 {
		fps = animation.DefaultFPS
	}

	buf := audio.Buffer{
		Samples:    audio.Normalize(samples, audio.DefaultTargetRMS),
		SampleRate: sampleRate,
	}
	frames := h.sampler.ClassifyAudio(buf)
	if len(frames) == 0 {
		metrics.AnimationsTotal.WithLabelValues("audio", "empty").Inc()
		h.writeError(w, http.StatusBadRequest, "could not generate animation from audio")
		return
	}

	duration := frames[len(frames)-1].Time
	if !h.storeSession(w, r, model.AnimationSession{
		ID:        uuid.New().String(),
		InputType: "audio",
		// Summary only; the PCM payload is not worth persisting.
		InputData: fmt.Sprintf("Audio: %d samples @ %dHz", len(samples), sampleRate),
		Frames:    frames,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}) {
		return
	}

	metrics.AnimationsTotal.WithLabelValues("audio", "ok").Inc()
	metrics.AnimationDuration.WithLabelValues("audio").Observe(float64(time.Since(start).Milliseconds()))
	metrics.FramesPerRequest.Observe(float64(len(frames)))

	h.logger.Info("audio animation rendered",
		zap.Float64("audioSec", buf.Duration()),
		zap.Int("sampleRate", sampleRate),
		zap.Int("frames", len(frames)),
	)

	h.writeJSON(w, http.StatusOK, model.AnimationResponse{
		Frames:      frames,
		Duration:    duration,
		FPS:         fps,
		TotalFrames: len(frames),
	})
}

// storeSession persists the session, writing a 500 and returning false on
// failure.
func (h *Handlers) storeSession(w http.ResponseWriter, r *http.Request, s model.AnimationSession) bool {
	if err := h.store.PutSession(r.Context(), s); err != nil {
		h.logger.Error("store session failed", zap.Error(err), zap.String("sessionId", s.ID))
		h.writeError(w, http.StatusInternalServerError, "failed to store session")
		return false
	}
	metrics.SessionsStoredTotal.Inc()
	return true
}
