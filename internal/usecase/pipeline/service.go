package pipeline

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/internal/domain/entities"
	"github.com/clipforge/clipforge/internal/usecase/clips"
	pkgai "github.com/clipforge/clipforge/pkg/ai"
	"github.com/clipforge/clipforge/pkg/config"
)

// AudioResolver yields a direct, fetchable audio URL for a VOD.
type AudioResolver interface {
	Resolve(ctx context.Context, vodURL string) (string, error)
}

// TranscriptionClient is the slice of the speech-to-text client the pipeline
// needs: submit once, then poll to a terminal state.
type TranscriptionClient interface {
	SubmitTranscript(ctx context.Context, audioURL string) (string, error)
	PollTranscript(ctx context.Context, id string) (*pkgai.TranscriptResult, error)
}

// ClipIdentifier selects clip-worthy time ranges from segmented transcript
// text.
type ClipIdentifier interface {
	Identify(ctx context.Context, segments []entities.TranscriptSegment, numClips int) ([]entities.ClipCandidate, error)
}

// Service defines the pipeline operations behind the HTTP surface.
type Service interface {
	// ExtractClips runs the full pipeline for one VOD URL.
	ExtractClips(ctx context.Context, vodURL string, numClips int) (*entities.PipelineResult, error)
	// Transcribe runs only the resolution and transcription stages.
	Transcribe(ctx context.Context, vodURL string) (*entities.Transcript, error)
	// ResolveAudio runs only the resolution stage.
	ResolveAudio(ctx context.Context, vodURL string) (string, error)
}

type pipelineService struct {
	resolver   AudioResolver
	stt        TranscriptionClient
	identifier ClipIdentifier
	cfg        config.PipelineConfig
	logger     *zap.Logger
}

// NewService constructs the pipeline orchestrator. Each invocation of a
// Service method is an independent execution with its own run id; no state
// is shared across requests.
func NewService(resolver AudioResolver, stt TranscriptionClient, identifier ClipIdentifier, cfg *config.PipelineConfig, logger *zap.Logger) Service {
	c := config.PipelineConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.SegmentWindowSize <= 0 {
		c.SegmentWindowSize = 50
	}
	if c.DefaultNumClips <= 0 {
		c.DefaultNumClips = 5
	}
	if c.PreviewLength <= 0 {
		c.PreviewLength = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipelineService{
		resolver:   resolver,
		stt:        stt,
		identifier: identifier,
		cfg:        c,
		logger:     logger,
	}
}

func (s *pipelineService) ExtractClips(ctx context.Context, vodURL string, numClips int) (*entities.PipelineResult, error) {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("vod_url", vodURL))

	if numClips <= 0 {
		numClips = s.cfg.DefaultNumClips
	}
	if s.cfg.MaxNumClips > 0 && numClips > s.cfg.MaxNumClips {
		numClips = s.cfg.MaxNumClips
	}

	log.Info("pipeline stage", zap.String("stage", string(entities.StageResolving)))
	audioURL, err := s.resolver.Resolve(ctx, vodURL)
	if err != nil {
		return nil, s.fail(log, entities.StageResolving, err)
	}

	log.Info("pipeline stage", zap.String("stage", string(entities.StageTranscribing)))
	transcript, err := s.transcribe(ctx, audioURL)
	if err != nil {
		return nil, s.fail(log, entities.StageTranscribing, err)
	}
	if transcript.IsEmpty() {
		return nil, s.fail(log, entities.StageTranscribing, errors.ErrEmptyTranscript())
	}

	log.Info("pipeline stage",
		zap.String("stage", string(entities.StageSegmenting)),
		zap.Int("words", len(transcript.Words)),
	)
	segments := clips.Segment(transcript.Words, s.cfg.SegmentWindowSize)

	log.Info("pipeline stage",
		zap.String("stage", string(entities.StageIdentifying)),
		zap.Int("segments", len(segments)),
	)
	candidates, err := s.identifier.Identify(ctx, segments, numClips)
	if err != nil {
		return nil, s.fail(log, entities.StageIdentifying, err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ViralityScore > candidates[j].ViralityScore
	})

	log.Info("pipeline stage",
		zap.String("stage", string(entities.StageDone)),
		zap.Int("clips", len(candidates)),
	)
	return &entities.PipelineResult{
		RunID:             runID,
		VodURL:            vodURL,
		AudioURL:          audioURL,
		TranscriptID:      transcript.ID,
		TranscriptPreview: preview(transcript.Text, s.cfg.PreviewLength),
		Clips:             candidates,
	}, nil
}

func (s *pipelineService) Transcribe(ctx context.Context, vodURL string) (*entities.Transcript, error) {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("vod_url", vodURL))

	log.Info("pipeline stage", zap.String("stage", string(entities.StageResolving)))
	audioURL, err := s.resolver.Resolve(ctx, vodURL)
	if err != nil {
		return nil, s.fail(log, entities.StageResolving, err)
	}

	log.Info("pipeline stage", zap.String("stage", string(entities.StageTranscribing)))
	transcript, err := s.transcribe(ctx, audioURL)
	if err != nil {
		return nil, s.fail(log, entities.StageTranscribing, err)
	}
	return transcript, nil
}

func (s *pipelineService) ResolveAudio(ctx context.Context, vodURL string) (string, error) {
	audioURL, err := s.resolver.Resolve(ctx, vodURL)
	if err != nil {
		return "", s.fail(s.logger.With(zap.String("vod_url", vodURL)), entities.StageResolving, err)
	}
	return audioURL, nil
}

// transcribe submits the audio URL and blocks until the job reaches a
// terminal state.
func (s *pipelineService) transcribe(ctx context.Context, audioURL string) (*entities.Transcript, error) {
	id, err := s.stt.SubmitTranscript(ctx, audioURL)
	if err != nil {
		return nil, err
	}
	res, err := s.stt.PollTranscript(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTranscript(res), nil
}

func (s *pipelineService) fail(log *zap.Logger, stage entities.PipelineStage, err error) error {
	log.Error("pipeline stage failed",
		zap.String("stage", string(stage)),
		zap.Error(err),
	)
	return err
}

func toTranscript(res *pkgai.TranscriptResult) *entities.Transcript {
	words := make([]entities.WordToken, 0, len(res.Words))
	for _, w := range res.Words {
		words = append(words, entities.WordToken{Text: w.Text, StartMS: w.Start, EndMS: w.End})
	}
	return &entities.Transcript{ID: res.ID, Text: res.Text, Words: words}
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
