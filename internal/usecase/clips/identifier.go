package clips

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/clipforge/clipforge/internal/domain/entities"
	pkgai "github.com/clipforge/clipforge/pkg/ai"
)

// ChatCompleter is the slice of the text-generation client the identifier
// needs.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []pkgai.ChatMessage) (string, error)
}

const systemPrompt = "You identify viral moments in stream transcripts. Always return valid JSON only."

const promptTemplate = `You are an expert at identifying viral, entertaining, and highlight-worthy moments from live stream transcripts.

Analyze the following timestamped transcript sections from a stream VOD. Identify the top %d most clip-worthy moments.

For each clip:
- Choose moments that would go viral on TikTok, YouTube Shorts, or Twitter
- Look for: funny moments, epic plays, emotional reactions, controversial takes, clutch moments, rage/excitement, plot twists
- Each clip should be 15-60 seconds long
- Use the timestamps (in milliseconds) from the sections

TIMESTAMPED TRANSCRIPT:
%s

Return ONLY a valid JSON array with exactly %d objects, each containing:
- "title": catchy clip title (max 60 chars)
- "start_ms": start timestamp in milliseconds
- "end_ms": end timestamp in milliseconds
- "virality_score": 1-10 rating
- "reason": brief reason why this moment is clip-worthy

Sort by virality_score descending. Return ONLY the JSON array, no other text.`

// Identifier formats segmented transcript data into a prompt, invokes the
// text-generation service once and parses the returned clip list.
type Identifier struct {
	llm    ChatCompleter
	parser *Parser
	logger *zap.Logger
}

// NewIdentifier creates a clip identifier backed by the given chat client.
func NewIdentifier(llm ChatCompleter, logger *zap.Logger) *Identifier {
	return &Identifier{
		llm:    llm,
		parser: NewParser(),
		logger: logger,
	}
}

// Identify asks the model for the numClips most clip-worthy moments in the
// given segments. Transport failures propagate to the caller; an unparsable
// model response degrades to an empty clip list, since losing clip detection
// must not abort a wholly-successful transcription.
func (i *Identifier) Identify(ctx context.Context, segments []entities.TranscriptSegment, numClips int) ([]entities.ClipCandidate, error) {
	if numClips <= 0 || len(segments) == 0 {
		return nil, nil
	}

	sectionsJSON, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(promptTemplate, numClips, sectionsJSON, numClips)
	content, err := i.llm.Complete(ctx, []pkgai.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	clips, err := i.parser.ParseClipResponse(content, numClips)
	if err != nil {
		if i.logger != nil {
			i.logger.Warn("clip response not parsable, returning no clips", zap.Error(err))
		}
		return []entities.ClipCandidate{}, nil
	}

	if i.logger != nil {
		i.logger.Info("clip candidates identified",
			zap.Int("requested", numClips),
			zap.Int("accepted", len(clips)),
		)
	}
	return clips, nil
}
