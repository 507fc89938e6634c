// internal/store/store.go
// Package store persists the user-defined term registry and saved sessions.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/careerpath/internal/advisor"
)

var (
	// ErrNotFound is returned when a session id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned for terms or sessions missing required fields.
	ErrInvalid = errors.New("invalid record")
)

// Term is a user-defined skill or interest. Count is the number of times it was added.
type Term struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Terms is the user-defined term registry.
type Terms interface {
	ListTerms(ctx context.Context) ([]Term, error)
	// AddTerm inserts the term with count 1, or increments the count of an
	// existing term with the same type and case-insensitive name.
	AddTerm(ctx context.Context, t Term) (Term, error)
	TermNames(ctx context.Context) ([]string, error)
	Record(ctx context.Context, name, kind string) error
}

// Sessions stores saved timetables.
type Sessions interface {
	SaveSession(ctx context.Context, s advisor.SavedSession) error
	// ListSessions returns sessions newest first.
	ListSessions(ctx context.Context) ([]advisor.SavedSession, error)
	GetSession(ctx context.Context, id string) (advisor.SavedSession, error)
	DeleteSession(ctx context.Context, id string) error
	ClearSessions(ctx context.Context) error
}

// Store combines both registries.
type Store interface {
	Terms
	Sessions
	Close() error
}

func normalizeTerm(t Term) (Term, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.Name == "" {
		return Term{}, fmt.Errorf("%w: term name is required", ErrInvalid)
	}
	if t.Type != advisor.TermSkill && t.Type != advisor.TermInterest {
		return Term{}, fmt.Errorf("%w: term type must be %q or %q, got %q", ErrInvalid, advisor.TermSkill, advisor.TermInterest, t.Type)
	}
	return t, nil
}

func termKey(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func validateSession(s advisor.SavedSession) error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return fmt.Errorf("%w: session id is required", ErrInvalid)
	case strings.TrimSpace(s.UserName) == "":
		return fmt.Errorf("%w: session user name is required", ErrInvalid)
	case strings.TrimSpace(s.SelectedJob.Title) == "":
		return fmt.Errorf("%w: session job title is required", ErrInvalid)
	case len(s.GeneratedTimetable.Phases) == 0:
		return fmt.Errorf("%w: session timetable has no phases", ErrInvalid)
	}
	return nil
}

// Open returns a SQLite store for path, or an in-memory store when path is ":memory:".
func Open(path string) (Store, error) {
	if path == ":memory:" {
		return NewMemoryStore(), nil
	}
	return NewSQLiteStore(path)
}
