package animation

import (
	"math"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/audio"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/viseme"
)

// Energy thresholds for the coarse phoneme buckets. Frames below the silence
// threshold keep the mouth closed; louder frames open it progressively.
const (
	energySilence = 0.01
	energyClosed  = 0.05
	energyMedium  = 0.15
)

// ClassifyAudio frames the buffer into 30ms windows advancing by 10ms and
// classifies each window's RMS energy into a coarse phoneme: sil, M (closed
// mouth), EH (medium opening) or AA (wide opening). Every audio frame yields
// exactly one animation frame carrying its timestamp and measured energy;
// the output rate is fixed by the hop, not by an fps setting.
func (s *Sampler) ClassifyAudio(buf audio.Buffer) []Frame {
	frameSize := int(math.Round(float64(buf.SampleRate) * 0.03))
	hopSize := int(math.Round(float64(buf.SampleRate) * 0.01))
	if frameSize <= 0 || hopSize <= 0 || len(buf.Samples) < frameSize {
		return nil
	}

	numFrames := (len(buf.Samples) - frameSize) / hopSize
	frames := make([]Frame, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		start := i * hopSize
		energy := audio.RMS(buf.Samples[start : start+frameSize])

		var symbol string
		switch {
		case energy < energySilence:
			symbol = viseme.Silence
		case energy < energyClosed:
			symbol = "M"
		case energy < energyMedium:
			symbol = "EH"
		default:
			symbol = "AA"
		}

		e := energy
		frames = append(frames, Frame{
			Index:       i,
			Time:        float64(start) / float64(buf.SampleRate),
			Phoneme:     symbol,
			Energy:      &e,
			Blendshapes: s.table.Lookup(symbol),
		})
	}
	return frames
}
