// Package model defines the wire structures exchanged with API clients and
// the records persisted to the session store.
package model

import (
	"time"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/animation"
)

// TextAnimationRequest is the body of POST /api/animate/text.
type TextAnimationRequest struct {
	Text string `json:"text"`
	FPS  int    `json:"fps"`
}

// AudioAnimationRequest is the body of POST /api/animate/audio. AudioData is
// base64 s16le mono PCM, optionally with a data-URL prefix.
type AudioAnimationRequest struct {
	AudioData  string `json:"audioData"`
	SampleRate int    `json:"sampleRate"`
	FPS        int    `json:"fps"`
}

// AnimationResponse carries a rendered frame sequence back to the client.
// Duration is the timestamp of the last frame.
type AnimationResponse struct {
	Frames      []animation.Frame `json:"frames"`
	Duration    float64           `json:"duration"`
	FPS         int               `json:"fps"`
	TotalFrames int               `json:"totalFrames"`
}

// AnimationSession is the persisted record of one animation request. Audio
// sessions store a size summary in InputData rather than the payload itself.
type AnimationSession struct {
	ID        string            `json:"id"`
	InputType string            `json:"inputType"` // "text" or "audio"
	InputData string            `json:"inputData"`
	Frames    []animation.Frame `json:"frames,omitempty"`
	Duration  float64           `json:"duration"`
	CreatedAt time.Time         `json:"createdAt"`
}

// StatusCheckRequest is the body of POST /api/status.
type StatusCheckRequest struct {
	ClientName string `json:"clientName"`
}

// StatusCheck is a stored client liveness ping.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Timestamp  time.Time `json:"timestamp"`
}
