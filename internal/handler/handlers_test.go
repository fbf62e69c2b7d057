package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/audio"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/model"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/store"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/viseme"
)

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Debugf(string, ...interface{})   {}

var _ badger.Logger = nopLogger{}

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()

	st, err := store.Open(store.Options{InMemory: true, Logger: nopLogger{}})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	h := New(zap.NewNop(), viseme.NewTable(), st, 16000)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// sinePCM returns base64 s16le PCM of a 440Hz tone.
func sinePCM(n int, amplitude float64) string {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*440*float64(i)/16000)
	}
	return audio.EncodePCM16Base64(samples)
}

func TestAnimateTextHappyPath(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/text", model.TextAnimationRequest{Text: "HI", FPS: 10})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out model.AnimationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.TotalFrames != 2 || len(out.Frames) != 2 {
		t.Fatalf("expected 2 frames, got totalFrames=%d len=%d", out.TotalFrames, len(out.Frames))
	}
	if out.Frames[0].Phoneme != "IH" || out.Frames[1].Phoneme != "sil" {
		t.Errorf("unexpected phonemes: %q %q", out.Frames[0].Phoneme, out.Frames[1].Phoneme)
	}
	if out.FPS != 10 {
		t.Errorf("expected fps echoed as 10, got %d", out.FPS)
	}
	if math.Abs(out.Duration-out.Frames[1].Time) > 1e-12 {
		t.Errorf("duration %f should equal last frame time %f", out.Duration, out.Frames[1].Time)
	}
	if out.Frames[0].Energy != nil {
		t.Error("text frames must not carry energy")
	}
}

func TestAnimateTextDefaultsFPS(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/text", model.TextAnimationRequest{Text: "HELLO"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out model.AnimationResponse
	json.Unmarshal(resp.Body.Bytes(), &out)
	if out.FPS != 30 {
		t.Errorf("expected default fps 30, got %d", out.FPS)
	}
}

func TestAnimateTextEmpty(t *testing.T) {
	r := setupRouter(t)
	for _, text := range []string{"", "   "} {
		resp := postJSON(t, r, "/animate/text", model.TextAnimationRequest{Text: text})
		if resp.Code != http.StatusBadRequest {
			t.Errorf("text %q: expected 400, got %d", text, resp.Code)
		}
	}
}

func TestAnimateAudioHappyPath(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/audio", model.AudioAnimationRequest{
		AudioData:  sinePCM(8000, 0.5), // 0.5s at 16kHz
		SampleRate: 16000,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out model.AnimationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// (8000 - 480) / 160 input frames, one output frame each.
	if out.TotalFrames != 47 {
		t.Errorf("expected 47 frames, got %d", out.TotalFrames)
	}
	for i, f := range out.Frames {
		if f.Energy == nil {
			t.Fatalf("frame %d: audio frames must carry energy", i)
		}
	}
	// Normalization brings the tone to RMS 0.3, well into the wide-open bucket.
	if out.Frames[10].Phoneme != "AA" {
		t.Errorf("expected AA for loud tone, got %q", out.Frames[10].Phoneme)
	}
}

func TestAnimateAudioDataURL(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/audio", model.AudioAnimationRequest{
		AudioData: "data:audio/pcm;base64," + sinePCM(8000, 0.5),
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for data-URL payload, got %d", resp.Code)
	}
}

func TestAnimateAudioMalformed(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/audio", model.AudioAnimationRequest{AudioData: "%%%not-base64%%%"})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed base64, got %d", resp.Code)
	}
}

func TestAnimateAudioEmpty(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/animate/audio", model.AudioAnimationRequest{AudioData: ""})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty audio, got %d", resp.Code)
	}
}

func TestVisemeTableDump(t *testing.T) {
	r := setupRouter(t)
	resp := get(t, r, "/visemes")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		VisemeMap map[string]viseme.Weights `json:"visemeMap"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.VisemeMap) != 29 {
		t.Errorf("expected 29 entries, got %d", len(out.VisemeMap))
	}
	if out.VisemeMap["sil"].MouthClose != 1.0 {
		t.Errorf("unexpected sil entry: %+v", out.VisemeMap["sil"])
	}
}

func TestSessionsPersistedAndListed(t *testing.T) {
	r := setupRouter(t)

	if resp := postJSON(t, r, "/animate/text", model.TextAnimationRequest{Text: "HI"}); resp.Code != http.StatusOK {
		t.Fatalf("animate failed: %d", resp.Code)
	}

	resp := get(t, r, "/sessions")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var sessions []model.AnimationSession
	if err := json.Unmarshal(resp.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].InputType != "text" || sessions[0].InputData != "HI" {
		t.Errorf("unexpected session: %+v", sessions[0])
	}
	if sessions[0].Frames != nil {
		t.Error("listing should not include frames")
	}

	// Full record, frames included, via the detail route.
	detail := get(t, r, "/sessions/"+sessions[0].ID)
	if detail.Code != http.StatusOK {
		t.Fatalf("expected 200 for session detail, got %d", detail.Code)
	}
	var full model.AnimationSession
	if err := json.Unmarshal(detail.Body.Bytes(), &full); err != nil {
		t.Fatalf("decode session detail: %v", err)
	}
	if len(full.Frames) == 0 {
		t.Error("session detail should include frames")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	r := setupRouter(t)
	resp := get(t, r, "/sessions/nope")
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.Code)
	}
}

func TestSessionsInvalidLimit(t *testing.T) {
	r := setupRouter(t)
	resp := get(t, r, "/sessions?limit=banana")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.Code)
	}
}

func TestStatusChecks(t *testing.T) {
	r := setupRouter(t)

	resp := postJSON(t, r, "/status", model.StatusCheckRequest{ClientName: "probe"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var created model.StatusCheck
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if created.ID == "" || created.ClientName != "probe" {
		t.Errorf("unexpected status check: %+v", created)
	}

	list := get(t, r, "/status")
	var checks []model.StatusCheck
	if err := json.Unmarshal(list.Body.Bytes(), &checks); err != nil {
		t.Fatalf("decode status list: %v", err)
	}
	if len(checks) != 1 || checks[0].ID != created.ID {
		t.Errorf("unexpected status list: %+v", checks)
	}
}

func TestStatusMissingClientName(t *testing.T) {
	r := setupRouter(t)
	resp := postJSON(t, r, "/status", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.Code)
	}
}

func TestRoot(t *testing.T) {
	r := setupRouter(t)
	resp := get(t, r, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out map[string]string
	json.Unmarshal(resp.Body.Bytes(), &out)
	if out["message"] == "" {
		t.Error("expected welcome message")
	}
}
