package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GH_HOST", "")
		t.Setenv("CLAUDE_SYNC_MARKER", "")
		t.Setenv("CLAUDE_SYNC_ASSUME_NO", "")

		cfg := Load()
		if cfg.Host != "github.com" {
			t.Errorf("Host = %q, want %q", cfg.Host, "github.com")
		}
		if cfg.Marker != "" {
			t.Errorf("Marker = %q, want empty", cfg.Marker)
		}
		if cfg.AssumeNo {
			t.Error("AssumeNo = true, want false")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GH_HOST", "github.example.com")
		t.Setenv("CLAUDE_SYNC_MARKER", "GUIDE.md")
		t.Setenv("CLAUDE_SYNC_ASSUME_NO", "1")

		cfg := Load()
		if cfg.Host != "github.example.com" {
			t.Errorf("Host = %q, want %q", cfg.Host, "github.example.com")
		}
		if cfg.Marker != "GUIDE.md" {
			t.Errorf("Marker = %q, want %q", cfg.Marker, "GUIDE.md")
		}
		if !cfg.AssumeNo {
			t.Error("AssumeNo = false, want true")
		}
	})

	t.Run("reads .env file from working directory", func(t *testing.T) {
		// godotenv only fills in variables that are absent, so the
		// marker must be fully unset, not just empty.
		t.Setenv("CLAUDE_SYNC_MARKER", "")
		_ = os.Unsetenv("CLAUDE_SYNC_MARKER")

		tmpDir := t.TempDir()
		envFile := filepath.Join(tmpDir, ".env")
		if err := os.WriteFile(envFile, []byte("CLAUDE_SYNC_MARKER=FromDotEnv\n"), 0644); err != nil {
			t.Fatalf("Failed to create test .env: %v", err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if err := os.Chdir(tmpDir); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		defer func() { _ = os.Chdir(cwd) }()

		cfg := Load()
		if cfg.Marker != "FromDotEnv" {
			t.Errorf("Marker = %q, want %q", cfg.Marker, "FromDotEnv")
		}
	})
}
