package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings configures the vitae commands
type Settings struct {
	// Addr is the listen address of the HTTP service
	Addr string

	// LexiconPath is an optional YAML lexicon overlay
	LexiconPath string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is "json" or "text"
	LogFormat string

	// MaxUploadMB caps the size of uploaded documents
	MaxUploadMB int
}

// LoadSettings reads settings from the environment, loading a .env file
// first when one exists
func LoadSettings() Settings {
	// Missing .env is fine
	_ = godotenv.Load()

	return Settings{
		Addr:        getEnv("VITAE_ADDR", ":8080"),
		LexiconPath: os.Getenv("VITAE_LEXICON"),
		LogLevel:    getEnv("VITAE_LOG_LEVEL", "info"),
		LogFormat:   getEnv("VITAE_LOG_FORMAT", "json"),
		MaxUploadMB: getEnvInt("VITAE_MAX_UPLOAD_MB", 16),
	}
}

// Lexicon returns the configured lexicon, or the defaults when no lexicon
// file is set
func (s Settings) Lexicon() (Lexicon, error) {
	if s.LexiconPath == "" {
		return DefaultLexicon(), nil
	}
	return LoadLexicon(s.LexiconPath)
}

// NewLogger builds a structured logger writing to w
func (s Settings) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(s.LogLevel)}
	if strings.EqualFold(s.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
