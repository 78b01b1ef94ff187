package entities

import "fmt"

const (
	// MaxClipTitleLength bounds the model-supplied clip title.
	MaxClipTitleLength = 60

	// MinViralityScore and MaxViralityScore bound the model's 1-10 rating.
	MinViralityScore = 1
	MaxViralityScore = 10
)

// ClipCandidate is a clip-worthy time range selected by the language model.
// Candidates are produced entirely by the model-parsing step and must pass
// Validate before being accepted; failing candidates are rejected, never
// coerced into range.
type ClipCandidate struct {
	Title         string `json:"title"`
	StartMS       int    `json:"start_ms"`
	EndMS         int    `json:"end_ms"`
	ViralityScore int    `json:"virality_score"`
	Reason        string `json:"reason"`
}

// Validate checks the candidate against the schema bounds.
func (c ClipCandidate) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is empty")
	}
	if len([]rune(c.Title)) > MaxClipTitleLength {
		return fmt.Errorf("title exceeds %d characters", MaxClipTitleLength)
	}
	if c.StartMS < 0 {
		return fmt.Errorf("start_ms %d is negative", c.StartMS)
	}
	if c.EndMS <= c.StartMS {
		return fmt.Errorf("end_ms %d is not after start_ms %d", c.EndMS, c.StartMS)
	}
	if c.ViralityScore < MinViralityScore || c.ViralityScore > MaxViralityScore {
		return fmt.Errorf("virality_score %d outside [%d,%d]", c.ViralityScore, MinViralityScore, MaxViralityScore)
	}
	return nil
}
