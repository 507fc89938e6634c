// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the flat config location checked when the default path is missing.
	legacyConfigPath = "config.json"
	// DefaultModel is the model requested when the config leaves it empty.
	DefaultModel = "llama3.2"
	// defaultCareerMaxContexts caps knowledge snippets embedded in the career prompt.
	defaultCareerMaxContexts = 3
	// defaultTimetableMaxContexts caps knowledge snippets embedded in the timetable prompt.
	defaultTimetableMaxContexts = 2
	defaultListen               = ":8080"
	defaultDatabasePath         = "data/careerpath.db"

	// EnvEndpoint names the environment variable holding the completion endpoint URL.
	EnvEndpoint = "LLAMA_API_ENDPOINT"
	// EnvModel names the environment variable overriding the model identifier.
	EnvModel = "LLAMA_MODEL"
)

// Config represents the top-level application configuration.
type Config struct {
	Endpoint             string  `json:"endpoint" mapstructure:"endpoint"`
	Model                string  `json:"model" mapstructure:"model"`
	Preset               string  `json:"preset,omitempty" mapstructure:"preset"`
	Options              Options `json:"options" mapstructure:"options"`
	TimeoutSeconds       int     `json:"timeout,omitempty" mapstructure:"timeout"`
	Debug                bool    `json:"debug" mapstructure:"debug"`
	JSONMode             bool    `json:"jsonMode" mapstructure:"jsonMode"`
	TUI                  bool    `json:"tui" mapstructure:"tui"`
	LogFile              string  `json:"logFile,omitempty" mapstructure:"logFile"`
	DatabasePath         string  `json:"databasePath,omitempty" mapstructure:"databasePath"`
	CareerCorpusPath     string  `json:"careerCorpusPath,omitempty" mapstructure:"careerCorpusPath"`
	TimetableCorpusPath  string  `json:"timetableCorpusPath,omitempty" mapstructure:"timetableCorpusPath"`
	CareerMaxContexts    int     `json:"careerMaxContexts,omitempty" mapstructure:"careerMaxContexts"`
	TimetableMaxContexts int     `json:"timetableMaxContexts,omitempty" mapstructure:"timetableMaxContexts"`
	StrictSchema         bool    `json:"strictSchema" mapstructure:"strictSchema"`
	Listen               string  `json:"listen,omitempty" mapstructure:"listen"`
	ConfigPath           string  `json:"-" mapstructure:"-"`
}

// Options holds the sampling options forwarded to the completion endpoint.
// Nil fields fall back to the selected preset.
type Options struct {
	Temperature *float64 `json:"temperature,omitempty" mapstructure:"temperature"`
	NumPredict  *int     `json:"num_predict,omitempty" mapstructure:"num_predict"`
	TopK        *int     `json:"top_k,omitempty" mapstructure:"top_k"`
	TopP        *float64 `json:"top_p,omitempty" mapstructure:"top_p"`
}

// RequestTimeout returns the HTTP timeout for completion requests. Zero means
// the request is bounded only by the caller's context.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ModelName returns the configured model or DefaultModel.
func (c Config) ModelName() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return DefaultModel
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "careerpath.log"
}

// DatabaseFile returns the SQLite file backing terms and saved sessions.
func (c Config) DatabaseFile() string {
	if path := strings.TrimSpace(c.DatabasePath); path != "" {
		return path
	}
	return defaultDatabasePath
}

// ListenAddr returns the HTTP listen address for the serve command.
func (c Config) ListenAddr() string {
	addr := strings.TrimSpace(c.Listen)
	if addr == "" {
		return defaultListen
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return addr
}

// CareerContexts returns how many knowledge snippets the career prompt embeds.
func (c Config) CareerContexts() int {
	if c.CareerMaxContexts <= 0 {
		return defaultCareerMaxContexts
	}
	return c.CareerMaxContexts
}

// TimetableContexts returns how many knowledge snippets the timetable prompt embeds.
func (c Config) TimetableContexts() int {
	if c.TimetableMaxContexts <= 0 {
		return defaultTimetableMaxContexts
	}
	return c.TimetableMaxContexts
}

// ResolvedOptions merges explicit options over the configured preset.
func (c Config) ResolvedOptions() Options {
	base := OptionsForPreset(c.Preset)
	if c.Options.Temperature != nil {
		base.Temperature = c.Options.Temperature
	}
	if c.Options.NumPredict != nil {
		base.NumPredict = c.Options.NumPredict
	}
	if c.Options.TopK != nil {
		base.TopK = c.Options.TopK
	}
	if c.Options.TopP != nil {
		base.TopP = c.Options.TopP
	}
	return base
}

// LoadEnv reads .env files into the process environment. Missing files are
// ignored; variables already set in the environment win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv copies endpoint and model overrides from the environment into c.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		c.Model = v
	}
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
// Environment overrides are applied to the result.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		config.ApplyEnv()
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				config.ApplyEnv()
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds < 0 {
		config.TimeoutSeconds = 0
	}

	return config, nil
}
