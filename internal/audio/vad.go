package audio

import "math"

// DefaultVADThreshold is the frame RMS level above which a frame counts as
// voiced.
const DefaultVADThreshold = 0.02

// Region is a half-open [Start, End) sample interval containing voice
// activity.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DetectVoice segments the buffer into voiced regions. Energy is measured
// over 20ms frames advancing by half a frame; a frame is voiced when its RMS
// exceeds threshold. A region opens on the first voiced frame and closes at
// the offset of the frame that falls silent again; activity running off the
// end of the buffer closes at the buffer length. Adjacent regions are not
// merged.
func DetectVoice(buf Buffer, threshold float64) []Region {
	frameSize := int(math.Round(float64(buf.SampleRate) * 0.02))
	hopSize := frameSize / 2
	if frameSize <= 0 || hopSize <= 0 {
		return nil
	}

	var voiced []bool
	for i := 0; i+frameSize < len(buf.Samples); i += hopSize {
		voiced = append(voiced, RMS(buf.Samples[i:i+frameSize]) > threshold)
	}

	var regions []Region
	start := -1
	for i, v := range voiced {
		switch {
		case v && start < 0:
			start = i * hopSize
		case !v && start >= 0:
			regions = append(regions, Region{Start: start, End: i * hopSize})
			start = -1
		}
	}
	if start >= 0 {
		regions = append(regions, Region{Start: start, End: len(buf.Samples)})
	}
	return regions
}
