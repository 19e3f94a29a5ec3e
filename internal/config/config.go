// Package config loads runtime configuration for claude-sync.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the ambient configuration for a sync run. It is loaded
// once at startup and passed down explicitly; there is no package-level
// mutable state.
type Config struct {
	// Host is the GitHub host to talk to (GitHub Enterprise support).
	Host string

	// Marker is the substring the advisory verification step looks for
	// in the downloaded file. Empty means "derive from the remote path".
	Marker string

	// AssumeNo answers every interactive prompt with its default,
	// so automated runs never block on stdin.
	AssumeNo bool
}

// Load reads configuration from environment variables, with an optional
// .env file in the working directory as a fallback source.
func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Host:     getEnv("GH_HOST", "github.com"),
		Marker:   os.Getenv("CLAUDE_SYNC_MARKER"),
		AssumeNo: os.Getenv("CLAUDE_SYNC_ASSUME_NO") == "1",
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
