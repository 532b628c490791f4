package prefstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yanqian/runready/internal/domain/preferences"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS preferences (
	profile TEXT PRIMARY KEY,
	document TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteStore persists preferences in a local SQLite file, the single-node
// counterpart of browser local storage.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Load implements preferences.Store.
func (s *SQLiteStore) Load(ctx context.Context, profile string) ([]byte, bool, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM preferences WHERE profile = ?`, profile).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc), true, nil
}

// Save upserts the document of a profile.
func (s *SQLiteStore) Save(ctx context.Context, profile string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (profile, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at
	`, profile, string(doc), s.now().UTC().Format(time.RFC3339))
	return err
}

// Delete removes a profile.
func (s *SQLiteStore) Delete(ctx context.Context, profile string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE profile = ?`, profile)
	return err
}

// Ping checks the database handle.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ preferences.Store = (*SQLiteStore)(nil)
