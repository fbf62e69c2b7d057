// Package audio provides decoding and analysis of raw PCM voice buffers:
// base64 PCM16 decoding, RMS normalization, envelope extraction, and
// energy-based voice activity detection. All functions are pure and operate
// on mono float64 samples in [-1, 1].
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrDecode is returned when a payload is not valid base64 PCM16 audio.
var ErrDecode = errors.New("audio: invalid PCM16 payload")

// Buffer holds mono audio samples tagged with their sample rate.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// DecodeBase64PCM16 decodes a base64 string of s16le mono PCM into float
// samples scaled by 1/32768. A data-URL prefix is tolerated: everything up to
// and including the first ',' is discarded before decoding. Errors wrap
// ErrDecode when the base64 is malformed or the byte count is odd.
func DecodeBase64PCM16(data string) ([]float64, error) {
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of 16-bit samples", ErrDecode, len(raw))
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		// The divisor is 32768, so -32768 maps to -1.0 and +32767
		// lands just under 1.0.
		samples[i] = float64(s) / 32768.0
	}
	return samples, nil
}

// EncodePCM16Base64 converts float samples to base64 s16le PCM. Inverse of
// DecodeBase64PCM16 up to one quantization step; used by tests and tooling.
func EncodePCM16Base64(samples []float64) string {
	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := math.Round(s * 32768.0)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(v)))
	}
	return base64.StdEncoding.EncodeToString(raw)
}
