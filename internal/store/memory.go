// internal/store/memory.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mwiater/careerpath/internal/advisor"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	terms    []Term
	sessions map[string]advisor.SavedSession
	order    []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]advisor.SavedSession)}
}

func (m *MemoryStore) ListTerms(ctx context.Context) ([]Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Term, len(m.terms))
	copy(out, m.terms)
	return out, nil
}

func (m *MemoryStore) AddTerm(ctx context.Context, t Term) (Term, error) {
	t, err := normalizeTerm(t)
	if err != nil {
		return Term{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := termKey(t.Name)
	for i := range m.terms {
		if termKey(m.terms[i].Name) == key && m.terms[i].Type == t.Type {
			m.terms[i].Count++
			return m.terms[i], nil
		}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Count = 1
	m.terms = append(m.terms, t)
	return t, nil
}

func (m *MemoryStore) TermNames(ctx context.Context) ([]string, error) {
	terms, _ := m.ListTerms(ctx)
	return termNames(terms), nil
}

func (m *MemoryStore) Record(ctx context.Context, name, kind string) error {
	_, err := m.AddTerm(ctx, Term{Name: name, Type: kind})
	return err
}

func (m *MemoryStore) SaveSession(ctx context.Context, s advisor.SavedSession) error {
	if err := validateSession(s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) ListSessions(ctx context.Context) ([]advisor.SavedSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]advisor.SavedSession, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.sessions[m.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *MemoryStore) GetSession(ctx context.Context, id string) (advisor.SavedSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return advisor.SavedSession{}, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return s, nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	delete(m.sessions, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStore) ClearSessions(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]advisor.SavedSession)
	m.order = nil
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func termNames(terms []Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Name)
	}
	return out
}
