// Package animation renders phoneme timelines and raw audio buffers into
// fixed-rate blendshape frame sequences ready for a 3D face rig.
package animation

import (
	"errors"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/phoneme"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/viseme"
)

// ErrEmptyTimeline is returned when there are no phoneme events to sample.
var ErrEmptyTimeline = errors.New("animation: empty phoneme timeline")

// DefaultFPS is the frame rate used when a request does not specify one.
const DefaultFPS = 30

// Frame is one sampled instant of the output animation track. Energy is only
// set on frames derived from audio analysis.
type Frame struct {
	Index       int            `json:"frame"`
	Time        float64        `json:"time"`
	Phoneme     string         `json:"phoneme"`
	Energy      *float64       `json:"energy,omitempty"`
	Blendshapes viseme.Weights `json:"blendshapes"`
}

// Sampler turns phoneme timelines into animation frames using a shared
// viseme table.
type Sampler struct {
	table *viseme.Table
}

// NewSampler creates a sampler over the given table. The table is shared by
// reference and read-only.
func NewSampler(table *viseme.Table) *Sampler {
	return &Sampler{table: table}
}

// Sample renders one frame per 1/fps slice of the timeline. Each frame takes
// the first event whose [start, start+duration) interval covers its
// timestamp; timestamps outside every event fall back to silence. The frame
// count is floor(totalDuration*fps)+1 so a frame always lands on t=0.
// Returns ErrEmptyTimeline for a timeline with no events.
func (s *Sampler) Sample(timeline []phoneme.Event, fps int) ([]Frame, error) {
	if len(timeline) == 0 {
		return nil, ErrEmptyTimeline
	}

	total := timeline[len(timeline)-1].End()
	frameDuration := 1.0 / float64(fps)
	frameCount := int(total/frameDuration) + 1

	frames := make([]Frame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		t := float64(i) * frameDuration

		symbol := viseme.Silence
		for _, ev := range timeline {
			if ev.Start <= t && t < ev.End() {
				symbol = ev.Symbol
				break
			}
		}

		frames = append(frames, Frame{
			Index:       i,
			Time:        t,
			Phoneme:     symbol,
			Blendshapes: s.table.Lookup(symbol),
		})
	}
	return frames, nil
}
