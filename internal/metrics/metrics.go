package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	AnimationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faceanim_animations_total",
		Help: "Total animation requests by source (text/audio) and outcome",
	}, []string{"source", "outcome"})
	DecodeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faceanim_audio_decode_errors_total",
		Help: "Total rejected audio payloads (malformed base64 or PCM)",
	})
	SessionsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faceanim_sessions_stored_total",
		Help: "Total animation sessions persisted",
	})
)

// Histograms
var (
	AnimationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "faceanim_animation_render_ms",
		Help:    "Animation render time in milliseconds by source",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"source"})
	FramesPerRequest = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "faceanim_frames_per_request",
		Help:    "Number of frames rendered per animation request",
		Buckets: []float64{10, 30, 100, 300, 1000, 3000, 10000},
	})
)
