package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/clipforge/clipforge/errors"
	"github.com/clipforge/clipforge/internal/adapter/dto/clips"
	"github.com/clipforge/clipforge/internal/usecase/pipeline"
)

// Clips handles clip pipeline HTTP requests
type Clips struct {
	service pipeline.Service
	logger  *zap.Logger
}

// NewClipsHandler creates a new clips handler
func NewClipsHandler(service pipeline.Service, logger *zap.Logger) *Clips {
	return &Clips{
		service: service,
		logger:  logger,
	}
}

// ExtractClips handles POST /api/extract-clips
func (h *Clips) ExtractClips(c echo.Context) error {
	var req clips.ExtractClipsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("vod_url is required and must be a valid URL"))
	}

	result, err := h.service.ExtractClips(c.Request().Context(), req.VodURL, req.NumClips)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, clips.NewExtractClipsResponse(result))
}

// Transcribe handles POST /api/transcribe
func (h *Clips) Transcribe(c echo.Context) error {
	var req clips.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("vod_url is required and must be a valid URL"))
	}

	transcript, err := h.service.Transcribe(c.Request().Context(), req.VodURL)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, clips.NewTranscribeResponse(transcript))
}

// GetAudioURL handles POST /api/get-audio-url
func (h *Clips) GetAudioURL(c echo.Context) error {
	var req clips.GetAudioURLRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("vod_url is required and must be a valid URL"))
	}

	audioURL, err := h.service.ResolveAudio(c.Request().Context(), req.VodURL)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &clips.GetAudioURLResponse{
		Status:   "success",
		VodURL:   req.VodURL,
		AudioURL: audioURL,
	})
}
