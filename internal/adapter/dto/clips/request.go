package clips

// ExtractClipsRequest represents the request to run the full clip pipeline
type ExtractClipsRequest struct {
	VodURL   string `json:"vod_url" validate:"required,url"`
	NumClips int    `json:"num_clips" validate:"omitempty,min=1"`
}

// TranscribeRequest represents the request to transcribe a VOD
type TranscribeRequest struct {
	VodURL string `json:"vod_url" validate:"required,url"`
}

// GetAudioURLRequest represents the request to resolve a VOD's audio URL
type GetAudioURLRequest struct {
	VodURL string `json:"vod_url" validate:"required,url"`
}
