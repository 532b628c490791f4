package prefstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/runready/internal/domain/preferences"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS runner_preferences (
	profile TEXT PRIMARY KEY,
	document JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists preferences in Postgres.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the preferences table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresSchema)
	return err
}

// Load implements preferences.Store.
func (s *PostgresStore) Load(ctx context.Context, profile string) ([]byte, bool, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `
		SELECT document
		FROM runner_preferences
		WHERE profile = $1
	`, profile).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Save upserts the document of a profile.
func (s *PostgresStore) Save(ctx context.Context, profile string, doc []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO runner_preferences (profile, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (profile) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`, profile, string(doc))
	return err
}

// Delete removes a profile.
func (s *PostgresStore) Delete(ctx context.Context, profile string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM runner_preferences WHERE profile = $1`, profile)
	return err
}

var _ preferences.Store = (*PostgresStore)(nil)
