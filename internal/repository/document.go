package repository

import (
	"context"
	"errors"
)

// Document keys, one per progress concern
const (
	DocCollection  = "collection"
	DocWallet      = "wallet"
	DocProfile     = "profile"
	DocSBCProgress = "sbc_progress"
	DocDefi        = "defi_progress"
	DocSeasonPass  = "season_pass_progress"
	DocDailyReward = "daily_rewards"
)

// ProgressDocuments lists every document removed by a factory reset.
// Static catalogs are code, not documents, and never appear here.
var ProgressDocuments = []string{
	DocCollection,
	DocProfile,
	DocWallet,
	DocSBCProgress,
	DocDefi,
	DocSeasonPass,
	DocDailyReward,
}

// ErrDocumentNotFound is returned by Load when a document was never saved.
var ErrDocumentNotFound = errors.New("document not found")

// ErrBulkDeleteUnsupported is returned by a BulkDeleter that wraps a store
// without transactional deletes. Callers fall back to Delete per key.
var ErrBulkDeleteUnsupported = errors.New("bulk delete not supported")

// BulkDeleter is implemented by stores that remove several documents in one
// transaction. DeleteAll returns the keys that existed.
type BulkDeleter interface {
	DeleteAll(ctx context.Context, keys []string) ([]string, error)
}

// DocumentStore persists whole JSON documents by key.
// Save must replace the previous body atomically: a failed Save leaves the
// old body readable. Load and Delete report ErrDocumentNotFound for keys
// that were never saved.
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, body []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
