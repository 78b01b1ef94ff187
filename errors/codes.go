package errors

// ErrorCode identifies a class of application error on the wire and in logs.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK               ErrorCode = 0
	ErrorCode_INTERNAL              ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT      ErrorCode = 2
	ErrorCode_INVALID_PAYLOAD       ErrorCode = 3
	ErrorCode_RESOLUTION_FAILED     ErrorCode = 10
	ErrorCode_UPSTREAM_REQUEST      ErrorCode = 11
	ErrorCode_TRANSCRIPTION_FAILED  ErrorCode = 12
	ErrorCode_TRANSCRIPTION_TIMEOUT ErrorCode = 13
	ErrorCode_EMPTY_TRANSCRIPT      ErrorCode = 14
	ErrorCode_CLIP_PARSING_FAILED   ErrorCode = 15
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_RESOLUTION_FAILED:     "RESOLUTION_FAILED",
	ErrorCode_UPSTREAM_REQUEST:      "UPSTREAM_REQUEST",
	ErrorCode_TRANSCRIPTION_FAILED:  "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIPTION_TIMEOUT: "TRANSCRIPTION_TIMEOUT",
	ErrorCode_EMPTY_TRANSCRIPT:      "EMPTY_TRANSCRIPT",
	ErrorCode_CLIP_PARSING_FAILED:   "CLIP_PARSING_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
