package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type carried across layers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Pipeline Errors

// ErrResolutionFailed indicates no playable audio source could be resolved
// from the VOD URL.
func ErrResolutionFailed(vodURL string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_RESOLUTION_FAILED,
		Message:  "Could not extract an audio URL from the provided VOD link",
	}.WithDetail("vod_url", vodURL)
}

// ErrUpstreamRequest indicates a transport or HTTP failure talking to an
// external service (transcription or text generation).
func ErrUpstreamRequest(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_REQUEST,
		Message:  fmt.Sprintf("Request to %s failed", service),
	}.WithDetail("service", service)
}

// ErrTranscriptionFailed indicates the transcription service reported a
// terminal error state for the job.
func ErrTranscriptionFailed(upstreamMessage string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  fmt.Sprintf("Transcription failed: %s", upstreamMessage),
	}
}

// ErrTranscriptionTimeout indicates the polling ceiling elapsed before the
// transcription job reached a terminal state.
func ErrTranscriptionTimeout(ceiling time.Duration) AppError {
	return AppError{
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_TRANSCRIPTION_TIMEOUT,
		Message:  fmt.Sprintf("Transcription timed out after %s", ceiling),
	}
}

// ErrEmptyTranscript indicates a completed transcription carried no usable
// text or words.
func ErrEmptyTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EMPTY_TRANSCRIPT,
		Message:  "Transcription returned empty. The VOD may not have clear audio",
	}
}

// ErrClipParsing marks an unparsable model response. It is logged but never
// surfaced to callers: clip identification degrades to an empty list instead.
func ErrClipParsing(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CLIP_PARSING_FAILED,
		Message:  "Failed to parse clip candidates from model response",
	}
}
