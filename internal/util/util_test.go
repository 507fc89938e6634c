// internal/util/util_test.go
package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "plan.json")
	if err := WriteJSONFile(path, map[string]string{"title": "Go Developer"}); err != nil {
		t.Fatalf("WriteJSONFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid json %q: %v", data, err)
	}
	if got["title"] != "Go Developer" {
		t.Fatalf("unexpected contents %v", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "roadmap", max: 10, want: "roadmap"},
		{name: "ascii", in: "curriculum", max: 5, want: "curri…"},
		{name: "multibyte", in: "こんにちは世界", max: 4, want: "こんにち…"},
		{name: "zero keeps text", in: "phase", max: 0, want: "phase"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()

	got := Indent("Week 1\n\nWeek 2", "  ")
	if got != "  Week 1\n\n  Week 2" {
		t.Fatalf("unexpected indent %q", got)
	}
}

func TestWrapToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "wrap words",
			text:  "learn sql then build dashboards",
			width: 16,
			want:  "learn sql then\nbuild dashboards",
		},
		{
			name:  "long word split",
			text:  "https://roadmap.sh/backend",
			width: 10,
			want: strings.Join([]string{
				"https://ro",
				"admap.sh/b",
				"ackend",
			}, "\n"),
		},
		{
			name:  "preserve blank lines",
			text:  "phase one\n\nphase two",
			width: 20,
			want:  "phase one\n\nphase two",
		},
		{
			name:  "non-positive width no-op",
			text:  "no wrap",
			width: 0,
			want:  "no wrap",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WrapToWidth(tt.text, tt.width); got != tt.want {
				t.Fatalf("WrapToWidth(%q,%d)=%q want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
