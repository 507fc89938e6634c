// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/mwiater/careerpath/internal/advisor"
)

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore opens (and creates if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS terms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		name_key TEXT NOT NULL,
		type TEXT NOT NULL,
		count INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (name_key, type)
	);
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		job_title TEXT NOT NULL,
		payload TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ListTerms returns every term in insertion order.
func (s *SQLiteStore) ListTerms(ctx context.Context) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, count FROM terms ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying terms: %w", err)
	}
	defer rows.Close()

	var out []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// AddTerm upserts a term.
func (s *SQLiteStore) AddTerm(ctx context.Context, t Term) (Term, error) {
	t, err := normalizeTerm(t)
	if err != nil {
		return Term{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Term{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var existing Term
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, type, count FROM terms WHERE name_key = ? AND type = ?`,
		termKey(t.Name), t.Type,
	).Scan(&existing.ID, &existing.Name, &existing.Type, &existing.Count)
	switch {
	case err == nil:
		existing.Count++
		if _, err := tx.ExecContext(ctx, `UPDATE terms SET count = ? WHERE id = ?`, existing.Count, existing.ID); err != nil {
			return Term{}, fmt.Errorf("updating term: %w", err)
		}
		t = existing
	case errors.Is(err, sql.ErrNoRows):
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		t.Count = 1
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO terms (id, name, name_key, type, count) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Name, termKey(t.Name), t.Type, t.Count,
		); err != nil {
			return Term{}, fmt.Errorf("inserting term: %w", err)
		}
	default:
		return Term{}, fmt.Errorf("looking up term: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Term{}, fmt.Errorf("committing term: %w", err)
	}
	return t, nil
}

// TermNames returns the names of every term.
func (s *SQLiteStore) TermNames(ctx context.Context) ([]string, error) {
	terms, err := s.ListTerms(ctx)
	if err != nil {
		return nil, err
	}
	return termNames(terms), nil
}

// Record adds a term by name and kind.
func (s *SQLiteStore) Record(ctx context.Context, name, kind string) error {
	_, err := s.AddTerm(ctx, Term{Name: name, Type: kind})
	return err
}

// SaveSession inserts or replaces a session.
func (s *SQLiteStore) SaveSession(ctx context.Context, sess advisor.SavedSession) error {
	if err := validateSession(sess); err != nil {
		return err
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, timestamp, user_name, job_title, payload) VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Timestamp, sess.UserName, sess.SelectedJob.Title, string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// ListSessions returns sessions newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]advisor.SavedSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM sessions ORDER BY timestamp DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []advisor.SavedSession
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		var sess advisor.SavedSession
		if err := json.Unmarshal([]byte(payload), &sess); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// GetSession returns the session with id or ErrNotFound.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (advisor.SavedSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return advisor.SavedSession{}, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return advisor.SavedSession{}, fmt.Errorf("loading session: %w", err)
	}
	var sess advisor.SavedSession
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return advisor.SavedSession{}, fmt.Errorf("decoding session: %w", err)
	}
	return sess, nil
}

// DeleteSession removes a session or returns ErrNotFound.
func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return nil
}

// ClearSessions removes every session.
func (s *SQLiteStore) ClearSessions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
