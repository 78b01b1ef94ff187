package handler

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/internal/domain/entities"
	pkgvalidator "github.com/clipforge/clipforge/pkg/validator"
)

// fakePipeline implements pipeline.Service with canned outcomes.
type fakePipeline struct {
	result     *entities.PipelineResult
	transcript *entities.Transcript
	audioURL   string
	err        error

	gotVodURL   string
	gotNumClips int
}

func (f *fakePipeline) ExtractClips(_ context.Context, vodURL string, numClips int) (*entities.PipelineResult, error) {
	f.gotVodURL = vodURL
	f.gotNumClips = numClips
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePipeline) Transcribe(_ context.Context, vodURL string) (*entities.Transcript, error) {
	f.gotVodURL = vodURL
	if f.err != nil {
		return nil, f.err
	}
	return f.transcript, nil
}

func (f *fakePipeline) ResolveAudio(_ context.Context, vodURL string) (string, error) {
	f.gotVodURL = vodURL
	if f.err != nil {
		return "", f.err
	}
	return f.audioURL, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func doJSON(t *testing.T, e *echo.Echo, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestExtractClips_Success(t *testing.T) {
	svc := &fakePipeline{result: &entities.PipelineResult{
		RunID:             "run-1",
		VodURL:            "https://twitch.tv/videos/1",
		AudioURL:          "https://cdn.example.com/audio.m3u8",
		TranscriptID:      "transcript-123",
		TranscriptPreview: "hello world",
		Clips: []entities.ClipCandidate{
			{Title: "Best clip", StartMS: 1000, EndMS: 31000, ViralityScore: 9, Reason: "funny"},
		},
	}}
	h := NewClipsHandler(svc, zap.NewNop())

	rec := doJSON(t, newTestEcho(), h.ExtractClips, `{"vod_url":"https://twitch.tv/videos/1","num_clips":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotNumClips != 3 {
		t.Fatalf("expected num_clips 3, got %d", svc.gotNumClips)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "success" {
		t.Fatalf("unexpected status %v", body["status"])
	}
	if body["audio_url"] != "https://cdn.example.com/audio.m3u8" {
		t.Fatalf("unexpected audio_url %v", body["audio_url"])
	}
	if body["transcript_text"] != "hello world" {
		t.Fatalf("unexpected transcript_text %v", body["transcript_text"])
	}
	clips, ok := body["clips"].([]interface{})
	if !ok || len(clips) != 1 {
		t.Fatalf("unexpected clips %v", body["clips"])
	}
	first := clips[0].(map[string]interface{})
	if first["title"] != "Best clip" || first["virality_score"] != float64(9) {
		t.Fatalf("unexpected clip %v", first)
	}
}

func TestExtractClips_MissingVodURL(t *testing.T) {
	h := NewClipsHandler(&fakePipeline{}, zap.NewNop())

	rec := doJSON(t, newTestEcho(), h.ExtractClips, `{"num_clips":3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "error" {
		t.Fatalf("unexpected status %v", body["status"])
	}
	if body["message"] == "" {
		t.Fatal("expected a message")
	}
}

func TestExtractClips_InvalidVodURL(t *testing.T) {
	h := NewClipsHandler(&fakePipeline{}, zap.NewNop())

	rec := doJSON(t, newTestEcho(), h.ExtractClips, `{"vod_url":"not a url"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExtractClips_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"resolution failure", errors.ErrResolutionFailed("https://twitch.tv/videos/1", stdErrors.New("no formats")), http.StatusUnprocessableEntity},
		{"upstream failure", errors.ErrUpstreamRequest("assemblyai", stdErrors.New("connection refused")), http.StatusBadGateway},
		{"transcription failed", errors.ErrTranscriptionFailed("bad audio"), http.StatusBadGateway},
		{"transcription timeout", errors.ErrTranscriptionTimeout(0), http.StatusGatewayTimeout},
		{"empty transcript", errors.ErrEmptyTranscript(), http.StatusBadRequest},
		{"unknown error", stdErrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := NewClipsHandler(&fakePipeline{err: tt.err}, zap.NewNop())

			rec := doJSON(t, newTestEcho(), h.ExtractClips, `{"vod_url":"https://twitch.tv/videos/1"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["status"] != "error" {
				t.Fatalf("unexpected status %v", body["status"])
			}
		})
	}
}

func TestTranscribe_Success(t *testing.T) {
	svc := &fakePipeline{transcript: &entities.Transcript{
		ID:   "transcript-123",
		Text: "hello world",
		Words: []entities.WordToken{
			{Text: "hello", StartMS: 0, EndMS: 400},
			{Text: "world", StartMS: 410, EndMS: 900},
		},
	}}
	h := NewClipsHandler(svc, zap.NewNop())

	rec := doJSON(t, newTestEcho(), h.Transcribe, `{"vod_url":"https://twitch.tv/videos/1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "success" || body["transcript_id"] != "transcript-123" {
		t.Fatalf("unexpected body %v", body)
	}
	words, ok := body["words"].([]interface{})
	if !ok || len(words) != 2 {
		t.Fatalf("unexpected words %v", body["words"])
	}
}

func TestGetAudioURL_Success(t *testing.T) {
	svc := &fakePipeline{audioURL: "https://cdn.example.com/audio.m3u8"}
	h := NewClipsHandler(svc, zap.NewNop())

	rec := doJSON(t, newTestEcho(), h.GetAudioURL, `{"vod_url":"https://twitch.tv/videos/1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "success" {
		t.Fatalf("unexpected status %v", body["status"])
	}
	if body["vod_url"] != "https://twitch.tv/videos/1" || body["audio_url"] != "https://cdn.example.com/audio.m3u8" {
		t.Fatalf("unexpected body %v", body)
	}
	if svc.gotVodURL != "https://twitch.tv/videos/1" {
		t.Fatalf("service saw %q", svc.gotVodURL)
	}
}

func TestRouter_Health(t *testing.T) {
	e := newTestEcho()
	rt := NewRouter(nil, nil)
	rt.Setup(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}
