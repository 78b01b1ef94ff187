package ai

import (
	"bytes"
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/pkg/config"
)

// Transcript job statuses reported by AssemblyAI.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// errStillProcessing drives the poll loop: returned while the job has not
// reached a terminal status.
var errStillProcessing = stdErrors.New("transcript not ready")

// AssemblyAIClient is a minimal AssemblyAI client
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	speechModel  string
	pollInterval time.Duration
	pollTimeout  time.Duration
	client       *http.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	if cfg == nil {
		cfg = &config.AssemblyAIConfig{}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.assemblyai.com"
	}
	speechModel := cfg.SpeechModel
	if speechModel == "" {
		speechModel = "universal-2"
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 10 * time.Minute
	}
	return &AssemblyAIClient{
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		speechModel:  speechModel,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// TranscriptRequest is payload for /v2/transcript
type TranscriptRequest struct {
	AudioURL    string `json:"audio_url"`
	SpeechModel string `json:"speech_model,omitempty"`
}

// SubmitResponse is minimal submission response
type SubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Word is one word-level timestamp record, offsets in milliseconds.
type Word struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TranscriptResult is the status payload for a transcription job.
type TranscriptResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Words  []Word `json:"words"`
	Error  string `json:"error,omitempty"`
}

// SubmitTranscript asks AssemblyAI to transcribe an external audio URL.
// Returns the transcript job id on success. A single request, no retry:
// replaying a transcription job is not idempotent on the service's billing,
// so retry policy stays with the caller.
func (c *AssemblyAIClient) SubmitTranscript(ctx context.Context, audioURL string) (string, error) {
	payload := TranscriptRequest{
		AudioURL:    audioURL,
		SpeechModel: c.speechModel,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v2/transcript", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrUpstreamRequest("assemblyai", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errors.ErrUpstreamRequest("assemblyai", fmt.Errorf("assemblyai returned status %d", resp.StatusCode))
	}

	var sr SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", errors.ErrUpstreamRequest("assemblyai", err)
	}
	return sr.ID, nil
}

// GetTranscript fetches the current status of a transcription job.
func (c *AssemblyAIClient) GetTranscript(ctx context.Context, id string) (*TranscriptResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/v2/transcript/"+id, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.ErrUpstreamRequest("assemblyai", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.ErrUpstreamRequest("assemblyai", fmt.Errorf("assemblyai returned status %d", resp.StatusCode))
	}

	var tr TranscriptResult
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, errors.ErrUpstreamRequest("assemblyai", err)
	}
	return &tr, nil
}

// PollTranscript checks the job status at a fixed interval until it reaches a
// terminal state or the polling ceiling elapses. The loop suspends between
// checks and aborts promptly when the caller cancels ctx, issuing no further
// requests.
func (c *AssemblyAIClient) PollTranscript(ctx context.Context, id string) (*TranscriptResult, error) {
	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	var result *TranscriptResult
	check := func() error {
		tr, err := c.GetTranscript(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch tr.Status {
		case StatusCompleted:
			result = tr
			return nil
		case StatusError:
			return backoff.Permanent(errors.ErrTranscriptionFailed(tr.Error))
		default:
			return errStillProcessing
		}
	}

	bo := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval), ctx)
	if err := backoff.Retry(check, bo); err != nil {
		if parent.Err() != nil {
			// The enclosing request was abandoned, not timed out.
			return nil, parent.Err()
		}
		if stdErrors.Is(err, context.DeadlineExceeded) || stdErrors.Is(err, errStillProcessing) {
			return nil, errors.ErrTranscriptionTimeout(c.pollTimeout)
		}
		return nil, err
	}
	return result, nil
}
