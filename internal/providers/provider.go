// internal/providers/provider.go

// Package providers defines the completion abstraction shared by the advisor,
// the CLI and the HTTP server. A Completer sends one prompt to a model endpoint,
// reports streamed text through a ProgressFunc and returns the accumulated text.
package providers

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Completion kinds used for logging and metrics labels.
const (
	KindCareer    = "career"
	KindTimetable = "timetable"
)

// Fragment branches for a decoded stream line.
const (
	BranchParsed = "parsed"
	BranchRaw    = "raw"
)

// StreamChunk is a single progress notification. Text is empty when IsFinal is set.
type StreamChunk struct {
	Text    string `json:"chunk"`
	IsFinal bool   `json:"final"`
}

// ProgressFunc receives streamed chunks in arrival order. It may be nil.
type ProgressFunc func(StreamChunk)

// CompletionRequest describes one completion call.
type CompletionRequest struct {
	Prompt string
	// Kind labels the call in logs and metrics ("career", "timetable").
	Kind string
	// Model overrides the configured model when non-empty.
	Model string
}

// Completer is implemented by completion backends.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest, progress ProgressFunc) (string, error)
}

// FragmentObserver is notified once per decoded stream line with its branch.
type FragmentObserver func(kind, branch string)

var fencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripCodeFence trims text and, when the whole of it is wrapped in a ``` or
// ```json fence, returns the trimmed inner body. Applying it twice yields the
// same result as applying it once for fence-free JSON.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	m := fencePattern.FindStringSubmatch(trimmed)
	if m == nil || m[1] == "" {
		return trimmed
	}
	return strings.TrimSpace(m[1])
}

// DecodeFinal strips fences from the accumulated completion and unmarshals it into T.
func DecodeFinal[T any](accumulated string) (T, error) {
	var out T
	body := StripCodeFence(accumulated)
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		var zero T
		return zero, newFinalParseError(accumulated, err)
	}
	return out, nil
}

// GenerateJSON runs a completion and decodes the result into T.
// Every failure after the request is dispatched leaves the final progress
// notification delivered exactly once by the Completer.
func GenerateJSON[T any](ctx context.Context, c Completer, req CompletionRequest, progress ProgressFunc) (T, error) {
	var zero T
	text, err := c.Complete(ctx, req, progress)
	if err != nil {
		return zero, err
	}
	return DecodeFinal[T](text)
}
