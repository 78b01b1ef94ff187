package clips

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clipforge/clipforge/internal/domain/entities"
)

// Parser handles parsing and validation of model clip responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseClipResponse parses the raw model content into validated clip
// candidates. The content may be wrapped in markdown code fences, which are
// stripped before structural parsing.
//
// An error is returned only when the payload is not a JSON array. Elements
// failing the ClipCandidate bounds are dropped rather than failing the whole
// call; the remaining valid elements keep the model's order and are capped at
// limit.
func (p *Parser) ParseClipResponse(content string, limit int) ([]entities.ClipCandidate, error) {
	content = extractJSON(content)

	var raw []entities.ClipCandidate
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	clips := make([]entities.ClipCandidate, 0, len(raw))
	for _, c := range raw {
		if err := c.Validate(); err != nil {
			continue
		}
		clips = append(clips, c)
		if limit > 0 && len(clips) >= limit {
			break
		}
	}
	return clips, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
