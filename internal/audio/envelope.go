package audio

import "math"

// DefaultEnvelopeWindow is the moving-average length used for envelope
// smoothing.
const DefaultEnvelopeWindow = 512

// Envelope returns the smoothed amplitude envelope of samples: absolute value
// followed by a centered moving average of the given window. Edges are
// zero-padded and the divisor stays constant, so the first and last half
// window taper toward zero. Buffers no longer than the window are returned
// as the plain absolute-value sequence.
func Envelope(samples []float64, window int) []float64 {
	env := make([]float64, len(samples))
	for i, s := range samples {
		env[i] = math.Abs(s)
	}
	if window <= 0 || len(env) <= window {
		return env
	}

	// Prefix sums make each output a single subtraction.
	prefix := make([]float64, len(env)+1)
	for i, v := range env {
		prefix[i+1] = prefix[i] + v
	}

	half := (window - 1) / 2
	out := make([]float64, len(env))
	for i := range out {
		lo := i + half - (window - 1)
		hi := i + half + 1
		if lo < 0 {
			lo = 0
		}
		if hi > len(env) {
			hi = len(env)
		}
		out[i] = (prefix[hi] - prefix[lo]) / float64(window)
	}
	return out
}
