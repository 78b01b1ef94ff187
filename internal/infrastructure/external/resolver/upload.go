package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/pkg/config"
)

// Uploader downloads the VOD's best audio track to a scoped temp file with
// yt-dlp, uploads the bytes to AssemblyAI and returns the upload URL. Useful
// when the extractor only yields short-lived CDN links the transcription
// service cannot fetch on its own.
type Uploader struct {
	binPath string
	timeout time.Duration
	sdk     *aai.Client
	logger  *zap.Logger
}

// NewUploader creates a download-and-upload resolver.
func NewUploader(resolverCfg *config.ResolverConfig, assemblyCfg *config.AssemblyAIConfig, logger *zap.Logger) *Uploader {
	if resolverCfg == nil {
		resolverCfg = &config.ResolverConfig{}
	}
	binPath := resolverCfg.YtDlpPath
	if binPath == "" {
		binPath = "yt-dlp"
	}
	timeout := resolverCfg.ExecTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	var apiKey string
	if assemblyCfg != nil {
		apiKey = assemblyCfg.APIKey
	}
	return &Uploader{
		binPath: binPath,
		timeout: timeout,
		sdk:     aai.NewClient(apiKey),
		logger:  logger,
	}
}

// Resolve downloads the audio and returns the AssemblyAI upload URL. The
// temp file is removed on every exit path; nothing is held across the stage
// boundary.
func (u *Uploader) Resolve(ctx context.Context, vodURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	tmp, err := os.CreateTemp("", "clipforge-audio-*")
	if err != nil {
		return "", errors.ErrInternal(err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(ctx, u.binPath,
		"--no-warnings", "--no-playlist",
		"-f", "bestaudio/best",
		"--force-overwrites",
		"-o", tmpPath,
		vodURL,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.ErrResolutionFailed(vodURL, fmt.Errorf("yt-dlp: %v: %s", err, strings.TrimSpace(stderr.String())))
	}

	fi, err := os.Stat(tmpPath)
	if err != nil || fi.Size() == 0 {
		return "", errors.ErrResolutionFailed(vodURL, fmt.Errorf("audio file was not created or is empty"))
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		return "", errors.ErrInternal(err)
	}
	defer f.Close()

	if u.logger != nil {
		u.logger.Info("uploading audio to assemblyai",
			zap.String("vod_url", vodURL),
			zap.Int64("size_bytes", fi.Size()),
		)
	}

	uploadURL, err := u.sdk.Upload(ctx, f)
	if err != nil {
		return "", errors.ErrUpstreamRequest("assemblyai", err)
	}
	return uploadURL, nil
}
