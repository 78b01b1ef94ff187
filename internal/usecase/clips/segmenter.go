package clips

import (
	"strings"

	"github.com/clipforge/clipforge/internal/domain/entities"
)

// Segment partitions words into fixed-size, non-overlapping, time-ordered
// windows of windowSize words. The last window may be shorter, never empty.
// Each segment spans from its first word's start to its last word's end, and
// its text is the words joined with single spaces.
//
// Pure function: identical input always yields identical output. Empty input
// yields an empty sequence.
func Segment(words []entities.WordToken, windowSize int) []entities.TranscriptSegment {
	if windowSize <= 0 || len(words) == 0 {
		return nil
	}

	segments := make([]entities.TranscriptSegment, 0, (len(words)+windowSize-1)/windowSize)
	for start := 0; start < len(words); start += windowSize {
		end := start + windowSize
		if end > len(words) {
			end = len(words)
		}
		run := words[start:end]

		var b strings.Builder
		for i, w := range run {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(w.Text))
		}

		segments = append(segments, entities.TranscriptSegment{
			StartMS: run[0].StartMS,
			EndMS:   run[len(run)-1].EndMS,
			Text:    strings.TrimSpace(b.String()),
		})
	}
	return segments
}
