package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/clipforge/clipforge/pkg/validator"

	"github.com/clipforge/clipforge/internal/adapter/handler"
	"github.com/clipforge/clipforge/internal/infrastructure/external/resolver"
	"github.com/clipforge/clipforge/internal/usecase/clips"
	"github.com/clipforge/clipforge/internal/usecase/pipeline"
	pkgai "github.com/clipforge/clipforge/pkg/ai"
	"github.com/clipforge/clipforge/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize external clients
	logger.Info("initializing external clients")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)

	// Select the audio resolver: "stream" extracts a direct media URL,
	// "upload" downloads the audio and pushes the bytes upstream.
	var audioResolver pipeline.AudioResolver
	switch cfg.Resolver.Mode {
	case "upload":
		audioResolver = resolver.NewUploader(&cfg.Resolver, &cfg.Assembly, logger)
	default:
		audioResolver = resolver.NewYtDlp(&cfg.Resolver)
	}
	logger.Info("audio resolver ready", zap.String("mode", cfg.Resolver.Mode))

	// Wire the pipeline
	identifier := clips.NewIdentifier(openaiClient, logger)
	pipelineService := pipeline.NewService(audioResolver, asmClient, identifier, &cfg.Pipeline, logger)

	// Setup router with handlers
	clipsHandler := handler.NewClipsHandler(pipelineService, logger)
	router := handler.NewRouter(cfg, clipsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
