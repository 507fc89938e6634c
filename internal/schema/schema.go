// Package schema validates model output against the expected JSON shapes.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Document kinds, matching the completion kinds.
const (
	CareerAdvice = "career"
	Timetable    = "timetable"
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Kind     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s response failed schema validation: %s", e.Kind, strings.Join(e.Problems, ", "))
}

func str() map[string]any { return map[string]any{"type": "string"} }

func strArray() map[string]any {
	return map[string]any{"type": "array", "items": str()}
}

func object(required []string, props map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// CareerAdviceDefinition describes a career suggestion response.
func CareerAdviceDefinition() map[string]any {
	role := object([]string{"title", "description", "roadmap"}, map[string]any{
		"title":               str(),
		"description":         str(),
		"relevanceScore":      map[string]any{"type": []string{"number", "string"}},
		"roadmap":             str(),
		"estimatedPayBracket": str(),
		"marketDemand":        str(),
		"learningEffort":      str(),
	})
	return object([]string{"suggestedRoles"}, map[string]any{
		"suggestedRoles":    map[string]any{"type": "array", "items": role, "minItems": 1},
		"keyConsiderations": str(),
		"generalAdvice":     str(),
	})
}

// TimetableDefinition describes a learning timetable response.
func TimetableDefinition() map[string]any {
	resource := object([]string{"type", "details"}, map[string]any{
		"type":    str(),
		"details": str(),
	})
	task := object([]string{"taskDescription"}, map[string]any{
		"taskDescription":    str(),
		"skillsToFocus":      strArray(),
		"suggestedResources": map[string]any{"type": "array", "items": resource},
	})
	week := object([]string{"weekRange", "focusArea", "tasks"}, map[string]any{
		"weekRange": str(),
		"focusArea": str(),
		"tasks":     map[string]any{"type": "array", "items": task},
	})
	phase := object([]string{"phaseTitle", "weeks"}, map[string]any{
		"phaseTitle":    str(),
		"phaseDuration": str(),
		"summary":       str(),
		"weeks":         map[string]any{"type": "array", "items": week},
	})
	return object([]string{"title", "phases"}, map[string]any{
		"title":            str(),
		"introductoryNote": str(),
		"phases":           map[string]any{"type": "array", "items": phase, "minItems": 1},
		"generalTips":      strArray(),
	})
}

// Definition returns the schema for kind.
func Definition(kind string) (map[string]any, error) {
	switch kind {
	case CareerAdvice:
		return CareerAdviceDefinition(), nil
	case Timetable:
		return TimetableDefinition(), nil
	default:
		return nil, fmt.Errorf("no schema for %q", kind)
	}
}

// Validate checks doc against the schema for kind.
func Validate(kind string, doc []byte) error {
	def, err := Definition(kind)
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(def), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Kind: kind, Problems: problems}
}
