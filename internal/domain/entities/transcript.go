package entities

// TranscriptStatus represents the lifecycle state of a transcription job on
// the remote speech-to-text service.
type TranscriptStatus string

const (
	TranscriptStatusQueued     TranscriptStatus = "queued"     // Accepted, not yet picked up
	TranscriptStatusProcessing TranscriptStatus = "processing" // Being transcribed
	TranscriptStatusCompleted  TranscriptStatus = "completed"  // Terminal, text and words available
	TranscriptStatusError      TranscriptStatus = "error"      // Terminal, service reported a failure
)

// IsTerminal reports whether the status ends the polling lifecycle.
func (s TranscriptStatus) IsTerminal() bool {
	return s == TranscriptStatusCompleted || s == TranscriptStatusError
}

// WordToken is a single transcribed word with millisecond offsets into the
// source audio. Produced in bulk by the transcription service, ordered by
// start ascending.
type WordToken struct {
	Text    string `json:"text"`
	StartMS int    `json:"start"`
	EndMS   int    `json:"end"`
}

// Transcript is the completed output of a transcription job.
type Transcript struct {
	ID    string      `json:"id"`
	Text  string      `json:"text"`
	Words []WordToken `json:"words"`
}

// IsEmpty reports whether the transcript carries no usable content.
func (t *Transcript) IsEmpty() bool {
	return t == nil || t.Text == "" || len(t.Words) == 0
}

// TranscriptSegment is a fixed-size contiguous window of words flattened into
// one timestamped text block for model consumption. Segments partition the
// word sequence: every word belongs to exactly one segment.
type TranscriptSegment struct {
	StartMS int    `json:"start_ms"`
	EndMS   int    `json:"end_ms"`
	Text    string `json:"text"`
}
