/*
Package storage
File: postgres.go
Description:
    Postgres-backed save store: one row per save key holding the JSON
    document, upserted on every save.
*/

package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/everforgeworks/pet-cafe-server/internal/game"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Init creates the saves table if it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS saves (
			save_key   TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc []byte
	err := s.DB.QueryRowContext(ctx,
		`SELECT document FROM saves WHERE save_key = $1`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrNoSave
	}
	return doc, err
}

func (s *PostgresStore) Save(ctx context.Context, key string, doc []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO saves (save_key, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (save_key) DO UPDATE
		SET document = EXCLUDED.document, updated_at = now()
	`, key, doc)
	return err
}
