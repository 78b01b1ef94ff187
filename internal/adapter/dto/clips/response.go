package clips

import (
	"github.com/clipforge/clipforge/internal/domain/entities"
)

// ClipResponse represents a single clip candidate in responses
type ClipResponse struct {
	Title         string `json:"title"`
	StartMS       int    `json:"start_ms"`
	EndMS         int    `json:"end_ms"`
	ViralityScore int    `json:"virality_score"`
	Reason        string `json:"reason"`
}

// ExtractClipsResponse represents the full pipeline result
type ExtractClipsResponse struct {
	Status         string         `json:"status"`
	VodURL         string         `json:"vod_url"`
	AudioURL       string         `json:"audio_url"`
	TranscriptID   string         `json:"transcript_id"`
	TranscriptText string         `json:"transcript_text"`
	Clips          []ClipResponse `json:"clips"`
}

// WordResponse represents one transcript word with millisecond timing
type WordResponse struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TranscribeResponse represents a completed transcription
type TranscribeResponse struct {
	Status       string         `json:"status"`
	TranscriptID string         `json:"transcript_id"`
	Text         string         `json:"text"`
	Words        []WordResponse `json:"words"`
}

// GetAudioURLResponse represents a resolved audio URL
type GetAudioURLResponse struct {
	Status   string `json:"status"`
	VodURL   string `json:"vod_url"`
	AudioURL string `json:"audio_url"`
}

// NewExtractClipsResponse maps a pipeline result to the wire shape
func NewExtractClipsResponse(result *entities.PipelineResult) *ExtractClipsResponse {
	out := make([]ClipResponse, 0, len(result.Clips))
	for _, c := range result.Clips {
		out = append(out, ClipResponse{
			Title:         c.Title,
			StartMS:       c.StartMS,
			EndMS:         c.EndMS,
			ViralityScore: c.ViralityScore,
			Reason:        c.Reason,
		})
	}
	return &ExtractClipsResponse{
		Status:         "success",
		VodURL:         result.VodURL,
		AudioURL:       result.AudioURL,
		TranscriptID:   result.TranscriptID,
		TranscriptText: result.TranscriptPreview,
		Clips:          out,
	}
}

// NewTranscribeResponse maps a transcript to the wire shape
func NewTranscribeResponse(t *entities.Transcript) *TranscribeResponse {
	words := make([]WordResponse, 0, len(t.Words))
	for _, w := range t.Words {
		words = append(words, WordResponse{Text: w.Text, Start: w.StartMS, End: w.EndMS})
	}
	return &TranscribeResponse{
		Status:       "success",
		TranscriptID: t.ID,
		Text:         t.Text,
		Words:        words,
	}
}
