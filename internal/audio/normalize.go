package audio

import "math"

// DefaultTargetRMS is the loudness level buffers are normalized to before
// feature extraction.
const DefaultTargetRMS = 0.3

// RMS returns the root-mean-square level of samples, 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Normalize rescales samples so their RMS matches targetRMS, clamping the
// result to [-1, 1]. Silent input comes back unchanged. The input slice is
// never modified; a new slice is returned.
func Normalize(samples []float64, targetRMS float64) []float64 {
	out := make([]float64, len(samples))
	current := RMS(samples)
	if current == 0 {
		copy(out, samples)
		return out
	}

	gain := targetRMS / current
	for i, s := range samples {
		v := s * gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = v
	}
	return out
}
