// internal/appconfig/parameter_templates.go
package appconfig

import "strings"

// PresetName identifies a sampling preset.
type PresetName string

const (
	// PresetStrict favours deterministic, schema-following JSON output.
	PresetStrict   PresetName = "strict"
	PresetBalanced PresetName = "balanced"
	PresetCreative PresetName = "creative"
)

// OptionsForPreset selects sampling options by preset name.
// Behavior:
//   - empty string => strict (default)
//   - unknown string => strict (default)
func OptionsForPreset(name string) Options {
	switch PresetName(normalizePresetName(name)) {
	case PresetBalanced:
		return DefaultBalancedOptions()
	case PresetCreative:
		return DefaultCreativeOptions()
	case PresetStrict:
		fallthrough
	default:
		return DefaultStrictOptions()
	}
}

// DefaultStrictOptions keeps temperature low so the timetable duration rules are followed.
func DefaultStrictOptions() Options {
	return Options{
		Temperature: ptrFloat(0.15),
		NumPredict:  ptrInt(-1), // no cap; the JSON document decides its own length
		TopK:        ptrInt(10),
		TopP:        ptrFloat(0.5),
	}
}

func DefaultBalancedOptions() Options {
	return Options{
		Temperature: ptrFloat(0.4),
		NumPredict:  ptrInt(-1),
		TopK:        ptrInt(40),
		TopP:        ptrFloat(0.9),
	}
}

// DefaultCreativeOptions widens role suggestions at the cost of format adherence.
func DefaultCreativeOptions() Options {
	return Options{
		Temperature: ptrFloat(0.8),
		NumPredict:  ptrInt(-1),
		TopK:        ptrInt(80),
		TopP:        ptrFloat(0.95),
	}
}

func normalizePresetName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	return n
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
