package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema for the blob table. Applied when the pool is opened at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS app_blobs (
  key        TEXT PRIMARY KEY,
  data       BYTEA NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type PG struct{ db *pgxpool.Pool }

func NewPG(db *pgxpool.Pool) *PG { return &PG{db: db} }

func (s *PG) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var data []byte
	err := s.db.QueryRow(ctx, `
		SELECT data FROM app_blobs WHERE key=$1
	`, key).Scan(&data)
	// Only a missing row reads as "absent". Outages must propagate: the
	// pool connects lazily, and treating a dial error as an empty blob
	// would start the app on an empty snapshot and overwrite history on
	// the next flush.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PG) Put(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		INSERT INTO app_blobs (key, data, updated_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, key, data)
	return err
}
