package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "auto" {
		t.Fatalf("unexpected log settings: %+v", cfg)
	}
	if cfg.DialTimeout != 0 {
		t.Fatalf("DialTimeout = %v, want 0", cfg.DialTimeout)
	}
	if cfg.ReadBufferSize != 4096 {
		t.Fatalf("ReadBufferSize = %d, want 4096", cfg.ReadBufferSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SBNET_LOG_LEVEL", "debug")
	t.Setenv("SBNET_LOG_FORMAT", "JSON")
	t.Setenv("SBNET_DIAL_TIMEOUT_SECONDS", "5")
	t.Setenv("SBNET_READ_BUFFER_SIZE", "1024")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log settings: %+v", cfg)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Fatalf("DialTimeout = %v, want 5s", cfg.DialTimeout)
	}
	if cfg.ReadBufferSize != 1024 {
		t.Fatalf("ReadBufferSize = %d, want 1024", cfg.ReadBufferSize)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SBNET_READ_BUFFER_SIZE=512\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv does not override variables that are already set; make sure
	// the key is absent and removed again afterwards.
	t.Setenv("SBNET_READ_BUFFER_SIZE", "")
	os.Unsetenv("SBNET_READ_BUFFER_SIZE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReadBufferSize != 512 {
		t.Fatalf("ReadBufferSize = %d, want 512", cfg.ReadBufferSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"SBNET_LOG_FORMAT":           "xml",
		"SBNET_DIAL_TIMEOUT_SECONDS": "-1",
		"SBNET_READ_BUFFER_SIZE":     "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
