package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Resolver ResolverConfig
	Assembly AssemblyAIConfig
	OpenAI   OpenAIConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// ResolverConfig holds audio resolver configuration
type ResolverConfig struct {
	// Mode selects how the audio source is produced: "stream" resolves a
	// direct URL, "upload" downloads the audio and uploads the bytes to the
	// transcription service.
	Mode        string        `envconfig:"RESOLVER_MODE" default:"stream"`
	YtDlpPath   string        `envconfig:"YTDLP_PATH" default:"yt-dlp"`
	ExecTimeout time.Duration `envconfig:"RESOLVER_EXEC_TIMEOUT" default:"5m"`
}

// AssemblyAIConfig holds transcription service configuration
type AssemblyAIConfig struct {
	APIKey       string        `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL      string        `envconfig:"ASSEMBLYAI_BASE_URL" default:"https://api.assemblyai.com"`
	SpeechModel  string        `envconfig:"ASSEMBLYAI_SPEECH_MODEL" default:"universal-2"`
	PollInterval time.Duration `envconfig:"ASSEMBLYAI_POLL_INTERVAL" default:"5s"`
	PollTimeout  time.Duration `envconfig:"ASSEMBLYAI_POLL_TIMEOUT" default:"10m"`
}

// OpenAIConfig holds text-generation service configuration
type OpenAIConfig struct {
	APIKey      string  `envconfig:"OPENAI_API_KEY"`
	BaseURL     string  `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	Model       string  `envconfig:"OPENAI_MODEL" default:"gpt-4.1-mini"`
	Temperature float64 `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
}

// PipelineConfig holds clip pipeline tunables
type PipelineConfig struct {
	SegmentWindowSize int `envconfig:"SEGMENT_WINDOW_SIZE" default:"50"`
	DefaultNumClips   int `envconfig:"DEFAULT_NUM_CLIPS" default:"5"`
	MaxNumClips       int `envconfig:"MAX_NUM_CLIPS" default:"20"`
	PreviewLength     int `envconfig:"TRANSCRIPT_PREVIEW_LENGTH" default:"500"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch c.Resolver.Mode {
	case "stream", "upload":
	default:
		return fmt.Errorf("RESOLVER_MODE must be \"stream\" or \"upload\", got %q", c.Resolver.Mode)
	}
	if c.Pipeline.SegmentWindowSize <= 0 {
		return fmt.Errorf("SEGMENT_WINDOW_SIZE must be > 0")
	}
	if c.Pipeline.DefaultNumClips <= 0 {
		return fmt.Errorf("DEFAULT_NUM_CLIPS must be > 0")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
