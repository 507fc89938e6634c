// internal/appconfig/load_integration_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	return tempDir
}

func TestLoadDefaultPath(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	tempDir := chdirTemp(t)
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	payload := `{"endpoint": "http://localhost:11434/api/generate", "careerMaxContexts": 5}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != DefaultConfigPath {
		t.Fatalf("expected default path, got %q", cfg.ConfigPath)
	}
	if cfg.CareerContexts() != 5 {
		t.Fatalf("expected 5 career contexts, got %d", cfg.CareerContexts())
	}
}

func TestLoadLegacyFallback(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvModel, "")
	tempDir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(tempDir, "config.json"), []byte(`{"model": "phi3"}`), 0o644); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != legacyConfigPath || cfg.ModelName() != "phi3" {
		t.Fatalf("unexpected legacy load: %+v", cfg)
	}
}

func TestLoadMissingFileError(t *testing.T) {
	chdirTemp(t)
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for missing config")
	}
}
