// internal/commands/root_flags_test.go
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mwiater/careerpath/internal/appconfig"
	"github.com/mwiater/careerpath/internal/logging"
)

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// useConfig points the root command at a fresh config file, a temp database
// and a temp log file, clearing endpoint environment overrides.
func useConfig(t *testing.T, content string) string {
	t.Helper()
	t.Setenv(appconfig.EnvEndpoint, "")
	t.Setenv(appconfig.EnvModel, "")

	configPath := writeTempConfig(t, content)
	prevCfgFile := cfgFile
	cfgFile = configPath
	viper.SetConfigFile(configPath)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		currentConfig = nil
	})
	t.Cleanup(func() { _ = logging.Close() })

	resetFlags(rootCmd.PersistentFlags())
	dir := filepath.Dir(configPath)
	_ = rootCmd.PersistentFlags().Set("logFile", filepath.Join(dir, "careerpath.log"))
	_ = rootCmd.PersistentFlags().Set("databasePath", filepath.Join(dir, "careerpath.db"))
	return configPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	configPath := useConfig(t, `{"endpoint":"http://file:11434/api/generate","model":"phi3","timeout":-4}`)

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("jsonMode", "true")
	_ = rootCmd.PersistentFlags().Set("model", "llama3.1")
	_ = rootCmd.PersistentFlags().Set("preset", "creative")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	if currentConfig == nil || currentConfig.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s", configPath)
	}
	if !currentConfig.Debug || !currentConfig.JSONMode {
		t.Fatalf("expected flag values to flow into config: %+v", currentConfig)
	}
	if currentConfig.Model != "llama3.1" || currentConfig.Preset != "creative" {
		t.Fatalf("expected flags to override file: %+v", currentConfig)
	}
	if currentConfig.Endpoint != "http://file:11434/api/generate" {
		t.Fatalf("expected endpoint from file, got %q", currentConfig.Endpoint)
	}
	if currentConfig.TimeoutSeconds != 0 {
		t.Fatalf("expected negative timeout clamped, got %d", currentConfig.TimeoutSeconds)
	}
}

func TestPersistentPreRunEEnvOverridesFile(t *testing.T) {
	useConfig(t, `{"endpoint":"http://file:11434/api/generate"}`)
	t.Setenv(appconfig.EnvEndpoint, "http://env:11434/api/generate")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}
	if currentConfig.Endpoint != "http://env:11434/api/generate" {
		t.Fatalf("expected env endpoint, got %q", currentConfig.Endpoint)
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := useConfig(t, `{"careerMaxContexts": 4}`)

	out, err := execute(t, "--debug", "show", "config")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
	if !strings.Contains(out, "Career Contexts: 4") {
		t.Fatalf("expected career contexts from file, got %s", out)
	}
	if !strings.Contains(out, "(unset, export LLAMA_API_ENDPOINT)") {
		t.Fatalf("expected unset endpoint hint, got %s", out)
	}
}

func TestListCommands(t *testing.T) {
	useConfig(t, `{}`)

	out, err := execute(t, "list", "commands")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	for _, want := range []string{"careerpath commands:", "careerpath advise", "careerpath rag preview", "careerpath sessions delete"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
}
