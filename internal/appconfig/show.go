package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "(unset, export " + EnvEndpoint + ")"
	}
	opts := cfg.ResolvedOptions()

	fmt.Fprintf(out, "  Endpoint:        %s\n", endpoint)
	fmt.Fprintf(out, "  Model:           %s\n", cfg.ModelName())
	fmt.Fprintf(out, "  Preset:          %s\n", presetLabel(cfg.Preset))
	fmt.Fprintf(out, "  Temperature:     %v\n", *opts.Temperature)
	fmt.Fprintf(out, "  Num Predict:     %d\n", *opts.NumPredict)
	fmt.Fprintf(out, "  Top K:           %d\n", *opts.TopK)
	fmt.Fprintf(out, "  Top P:           %v\n", *opts.TopP)
	if t := cfg.RequestTimeout(); t > 0 {
		fmt.Fprintf(out, "  Timeout:         %s\n", t)
	} else {
		fmt.Fprintln(out, "  Timeout:         none")
	}
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode:       %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  TUI:             %v\n", cfg.TUI)
	fmt.Fprintf(out, "  Strict Schema:   %v\n", cfg.StrictSchema)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Database:        %s\n", cfg.DatabaseFile())
	fmt.Fprintf(out, "  Listen:          %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Career Contexts: %d\n", cfg.CareerContexts())
	fmt.Fprintf(out, "  Timetable Contexts: %d\n", cfg.TimetableContexts())
	if cfg.CareerCorpusPath != "" {
		fmt.Fprintf(out, "  Career Corpus:   %s\n", cfg.CareerCorpusPath)
	}
	if cfg.TimetableCorpusPath != "" {
		fmt.Fprintf(out, "  Timetable Corpus: %s\n", cfg.TimetableCorpusPath)
	}
}

func presetLabel(name string) string {
	switch PresetName(normalizePresetName(name)) {
	case PresetBalanced, PresetCreative:
		return normalizePresetName(name)
	default:
		return string(PresetStrict)
	}
}
