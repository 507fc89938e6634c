package providers

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxExcerptRunes bounds the accumulated text carried by a FinalParseError.
const MaxExcerptRunes = 500

// ErrConfiguration is returned before any network I/O when no endpoint is configured.
var ErrConfiguration = errors.New("completion endpoint is not configured (set LLAMA_API_ENDPOINT)")

// TransportError reports a non-success response or a response without a body.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	body := strings.TrimSpace(e.Body)
	if e.StatusCode == 0 {
		return "completion endpoint returned no response body"
	}
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if body == "" {
		return fmt.Sprintf("completion endpoint returned %s", status)
	}
	return fmt.Sprintf("completion endpoint returned %s: %s", status, body)
}

// NetworkError wraps a failure to send the request or read the stream.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("completion %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FinalParseError reports accumulated text that is not a valid JSON document.
type FinalParseError struct {
	// Excerpt holds at most MaxExcerptRunes runes of the accumulated text.
	Excerpt string
	Err     error
}

func (e *FinalParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v (excerpt: %q)", e.Err, e.Excerpt)
}

func (e *FinalParseError) Unwrap() error { return e.Err }

func newFinalParseError(text string, err error) *FinalParseError {
	return &FinalParseError{Excerpt: headRunes(text, MaxExcerptRunes), Err: err}
}

func headRunes(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}
