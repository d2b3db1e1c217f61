package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvMakesDotEnvVisible(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=error\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	// godotenv never overrides variables already present, so make sure the
	// key is genuinely unset first (t.Setenv registers the restore).
	t.Setenv("LOG_LEVEL", "placeholder")
	os.Unsetenv("LOG_LEVEL")

	if !loadEnv() {
		t.Fatalf("expected .env to be loaded")
	}
	if got := os.Getenv("LOG_LEVEL"); got != "error" {
		t.Fatalf("LOG_LEVEL not visible after loadEnv, got %q", got)
	}
}

func TestLoadEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if loadEnv() {
		t.Fatalf("expected no .env to be found")
	}
}
