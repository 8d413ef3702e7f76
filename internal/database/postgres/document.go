package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Minefut_Go/internal/repository"
)

// DocumentStore implements repository.DocumentStore over the documents table
type DocumentStore struct {
	db *pgxpool.Pool
}

// NewDocumentStore creates a store on an already migrated pool. The store
// takes ownership of the pool.
func NewDocumentStore(db *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Load(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(ctx, `
		SELECT body::text
		FROM documents
		WHERE key = $1`,
		key,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, wrapPgError("load document", err)
	}
	return body, nil
}

// Save upserts the body in one statement
func (s *DocumentStore) Save(ctx context.Context, key string, body []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO documents (key, body, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		key, string(body),
	)
	if err != nil {
		return wrapPgError("save document", err)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM documents WHERE key = $1`, key)
	if err != nil {
		return wrapPgError("delete document", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrDocumentNotFound
	}
	return nil
}

// DeleteAll removes keys in a single transaction and returns the keys that
// existed. A factory reset either clears every progress document or none.
func (s *DocumentStore) DeleteAll(ctx context.Context, keys []string) ([]string, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, wrapPgError("begin reset", err)
	}
	defer SafeRollback(ctx, tx)

	rows, err := tx.Query(ctx, `DELETE FROM documents WHERE key = ANY($1) RETURNING key`, keys)
	if err != nil {
		return nil, wrapPgError("reset documents", err)
	}
	deleted, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapPgError("reset documents", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapPgError("commit reset", err)
	}
	return deleted, nil
}

// Close closes the underlying pool
func (s *DocumentStore) Close() error {
	s.db.Close()
	return nil
}

var _ repository.BulkDeleter = (*DocumentStore)(nil)
