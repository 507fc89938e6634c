// Package logging routes the standard logger to stdout and an optional log file
// and formats request/response traffic with the completion endpoint.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DirectionOut tags payloads sent to the completion endpoint.
	DirectionOut = "CAREERPATH->LLM"
	// DirectionIn tags payloads received from the completion endpoint.
	DirectionIn = "LLM->CAREERPATH"
)

var (
	mu      sync.Mutex
	logFile *os.File
	quiet   bool
)

// Init sends log output to stdout and, when logPath is set, appends it to that file.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if !quiet {
		writers = append(writers, os.Stdout)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// SetQuiet drops stdout from the writer set on the next Init. The streaming
// view and JSON output mode use it so log lines do not interleave with output.
func SetQuiet(v bool) {
	mu.Lock()
	quiet = v
	mu.Unlock()
}

// Close releases the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogWarning records a recoverable problem that is not reported to the caller.
func LogWarning(format string, args ...any) {
	log.Println("[WARN] " + fmt.Sprintf(format, args...))
}

func LogRequest(direction, endpoint, model, tag string, payload any) {
	msg := buildRequestMessage(direction, endpoint, model, tag, payload)
	log.Println(msg)
}

func buildRequestMessage(direction, endpoint, model, tag string, payload any) string {
	dir := strings.TrimSpace(direction)
	if dir != "" {
		dir = strings.ToUpper(dir)
	}
	endpointValue := strings.TrimSpace(endpoint)
	if endpointValue == "" {
		endpointValue = "unknown"
	}
	modelValue := strings.TrimSpace(model)
	if modelValue == "" {
		modelValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", dir)}
	parts = append(parts, fmt.Sprintf("endpoint=%s", endpointValue))
	parts = append(parts, fmt.Sprintf("model=%s", modelValue))
	if tag = strings.TrimSpace(tag); tag != "" {
		parts = append(parts, fmt.Sprintf("kind=%s", tag))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
