// internal/commands/root.go

// Package commands implements the careerpath command line.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/careerpath/internal/appconfig"
	"github.com/mwiater/careerpath/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

var (
	boolFlags   = []string{"debug", "jsonMode", "tui", "strictSchema"}
	stringFlags = []string{"endpoint", "model", "preset", "logFile", "databasePath"}
	intFlags    = []string{"timeout"}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "careerpath",
	Short: "careerpath - career suggestions and learning timetables from a local model",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := appconfig.LoadEnv(); err != nil {
			return err
		}
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range boolFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}
		for _, name := range stringFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		for _, name := range intFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.Itoa(viper.GetInt(name)))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		cfg.ApplyEnv()
		if cmd.Flags().Changed("endpoint") {
			cfg.Endpoint = viper.GetString("endpoint")
		}
		if cmd.Flags().Changed("model") {
			cfg.Model = viper.GetString("model")
		}
		if cfg.TimeoutSeconds < 0 {
			cfg.TimeoutSeconds = 0
		}
		currentConfig = &cfg

		logging.SetQuiet(cfg.JSONMode || cfg.TUI)
		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	pf.Bool("debug", false, "enable debug logging and request dumps")
	pf.Bool("jsonMode", false, "print results as JSON")
	pf.Bool("tui", false, "show the streaming view while generating")
	pf.Bool("strictSchema", false, "validate model responses against the JSON schemas")
	pf.String("endpoint", "", "completion endpoint URL (overrides "+appconfig.EnvEndpoint+")")
	pf.String("model", "", "model name (overrides "+appconfig.EnvModel+")")
	pf.String("preset", "", "sampling preset: strict, balanced or creative")
	pf.String("logFile", "", "path to the log file")
	pf.String("databasePath", "", "SQLite file for terms and saved sessions")
	pf.Int("timeout", 0, "request timeout in seconds (0 = none)")

	for _, name := range append(append(append([]string{}, boolFlags...), stringFlags...), intFlags...) {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file. A missing file leaves defaults in place.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
