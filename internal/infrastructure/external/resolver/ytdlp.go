package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/pkg/config"
)

// YtDlp resolves a VOD URL to a direct, fetchable audio stream URL without
// downloading anything, by reading yt-dlp's format metadata.
type YtDlp struct {
	binPath string
	timeout time.Duration
}

// NewYtDlp creates a stream-URL resolver using the provided config.
func NewYtDlp(cfg *config.ResolverConfig) *YtDlp {
	if cfg == nil {
		cfg = &config.ResolverConfig{}
	}
	binPath := cfg.YtDlpPath
	if binPath == "" {
		binPath = "yt-dlp"
	}
	timeout := cfg.ExecTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &YtDlp{binPath: binPath, timeout: timeout}
}

// mediaInfo is the subset of yt-dlp's info JSON the resolver reads.
type mediaInfo struct {
	URL     string        `json:"url"`
	Formats []mediaFormat `json:"formats"`
}

type mediaFormat struct {
	URL    string `json:"url"`
	ACodec string `json:"acodec"`
	VCodec string `json:"vcodec"`
}

// Resolve extracts a direct audio URL for the VOD.
func (y *YtDlp) Resolve(ctx context.Context, vodURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, y.binPath, "--no-warnings", "--no-playlist", "--skip-download", "-J", vodURL)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.ErrResolutionFailed(vodURL, fmt.Errorf("yt-dlp: %v: %s", err, strings.TrimSpace(stderr.String())))
	}

	var info mediaInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return "", errors.ErrResolutionFailed(vodURL, fmt.Errorf("parse yt-dlp output: %w", err))
	}

	if u := pickAudioURL(info); u != "" {
		return u, nil
	}
	return "", errors.ErrResolutionFailed(vodURL, fmt.Errorf("no audio-bearing format found"))
}

// pickAudioURL prefers the last audio-only format, then the last format
// carrying any audio, then the extractor's top-level direct URL.
func pickAudioURL(info mediaInfo) string {
	var audioOnly string
	for _, f := range info.Formats {
		if f.URL == "" || f.ACodec == "none" {
			continue
		}
		if f.VCodec == "" || f.VCodec == "none" {
			audioOnly = f.URL
		}
	}
	if audioOnly != "" {
		return audioOnly
	}
	for i := len(info.Formats) - 1; i >= 0; i-- {
		f := info.Formats[i]
		if f.URL != "" && f.ACodec != "none" {
			return f.URL
		}
	}
	return info.URL
}
