// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad covers a valid file, malformed JSON and a missing path.
func TestLoad(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvModel, "")

	path := writeConfigFile(t, `{
  "endpoint": "http://localhost:11434/api/generate",
  "model": "llama3.1",
  "options": {"temperature": 0.3},
  "timeout": 30
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Endpoint != "http://localhost:11434/api/generate" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.ModelName() != "llama3.1" {
		t.Fatalf("unexpected model %q", cfg.ModelName())
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath %q, got %q", path, cfg.ConfigPath)
	}
	opts := cfg.ResolvedOptions()
	if *opts.Temperature != 0.3 {
		t.Fatalf("expected explicit temperature 0.3, got %v", *opts.Temperature)
	}
	if *opts.TopK != 10 || *opts.TopP != 0.5 || *opts.NumPredict != -1 {
		t.Fatalf("expected strict defaults for unset options, got %+v", opts)
	}

	if _, err := Load(writeConfigFile(t, `{ "endpoint": `)); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.ModelName() != DefaultModel {
		t.Fatalf("expected default model, got %q", cfg.ModelName())
	}
	if cfg.RequestTimeout() != 0 {
		t.Fatalf("expected no timeout by default, got %v", cfg.RequestTimeout())
	}
	if cfg.CareerContexts() != 3 || cfg.TimetableContexts() != 2 {
		t.Fatalf("unexpected context caps %d/%d", cfg.CareerContexts(), cfg.TimetableContexts())
	}
	if cfg.ListenAddr() != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr())
	}
	if (Config{Listen: "9090"}).ListenAddr() != ":9090" {
		t.Fatal("expected bare port to be prefixed with a colon")
	}
	if cfg.LogFilePath() != "careerpath.log" {
		t.Fatalf("unexpected log path %q", cfg.LogFilePath())
	}
	if cfg.DatabaseFile() != "data/careerpath.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabaseFile())
	}
}

func TestNegativeTimeoutClampsToNone(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	cfg, err := Load(writeConfigFile(t, `{"timeout": -5}`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TimeoutSeconds != 0 || cfg.RequestTimeout() != 0 {
		t.Fatalf("expected timeout clamp, got %d", cfg.TimeoutSeconds)
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://env-host:11434/api/generate")
	t.Setenv(EnvModel, "mistral")

	cfg, err := Load(writeConfigFile(t, `{"endpoint": "http://file-host/api/generate", "model": "llama3.2"}`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Endpoint != "http://env-host:11434/api/generate" {
		t.Fatalf("expected env endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Model != "mistral" {
		t.Fatalf("expected env model, got %q", cfg.Model)
	}
}

func TestLoadEnvReadsDotenv(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	os.Unsetenv(EnvEndpoint)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvEndpoint+"=http://dotenv:11434/api/generate\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"), path); err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if got := os.Getenv(EnvEndpoint); got != "http://dotenv:11434/api/generate" {
		t.Fatalf("expected dotenv endpoint, got %q", got)
	}
}

func TestOptionsForPreset(t *testing.T) {
	if got := *OptionsForPreset("").Temperature; got != 0.15 {
		t.Fatalf("empty preset temperature = %v", got)
	}
	if got := *OptionsForPreset(" Creative ").TopK; got != 80 {
		t.Fatalf("creative top_k = %d", got)
	}
	if got := *OptionsForPreset("unknown").TopP; got != 0.5 {
		t.Fatalf("unknown preset should fall back to strict, top_p = %v", got)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Endpoint: "http://localhost:11434/api/generate", Preset: "balanced", TimeoutSeconds: 10}
	ShowConfig(&buf, "config/config.json", &cfg, Config{})
	out := buf.String()
	for _, want := range []string{
		"Config file: config/config.json",
		"Endpoint:        http://localhost:11434/api/generate",
		"Model:           llama3.2",
		"Preset:          balanced",
		"Timeout:         10s",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "", nil, Config{})
	if !strings.Contains(buf.String(), "No config file loaded") || !strings.Contains(buf.String(), "Timeout:         none") {
		t.Fatalf("unexpected fallback output:\n%s", buf.String())
	}
}
