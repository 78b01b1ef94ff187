package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clipforge/clipforge/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	clipsHandler *Clips
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, clipsHandler *Clips) *Router {
	return &Router{
		cfg:          cfg,
		clipsHandler: clipsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	rt.setupClipRoutes(api)
}

// setupClipRoutes configures the clip pipeline routes
func (rt *Router) setupClipRoutes(g *echo.Group) {
	if rt.clipsHandler != nil {
		g.POST("/extract-clips", rt.clipsHandler.ExtractClips)
		g.POST("/transcribe", rt.clipsHandler.Transcribe)
		g.POST("/get-audio-url", rt.clipsHandler.GetAudioURL)
	} else {
		g.POST("/extract-clips", rt.notImplemented)
		g.POST("/transcribe", rt.notImplemented)
		g.POST("/get-audio-url", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"status":  "error",
		"message": "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "clipforge-api",
	})
}
