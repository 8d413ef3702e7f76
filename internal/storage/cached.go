package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Minefut_Go/internal/repository"
)

// CacheSchemaVersion is bumped when the cached representation changes so old
// entries are ignored
const CacheSchemaVersion = "1.0"

type cachedEntry struct {
	Version  string
	Body     []byte
	Missing  bool
	CachedAt time.Time
}

// CachedStore is a read-through, write-through LRU in front of a remote
// DocumentStore. Every command loads several documents; the cache keeps
// round trips to the configured engine for writes only.
type CachedStore struct {
	inner repository.DocumentStore
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedStore wraps inner with an LRU of size entries expiring after ttl
func NewCachedStore(inner repository.DocumentStore, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	if entry, ok := s.lru.Get(key); ok {
		if entry.Version != CacheSchemaVersion {
			s.lru.Remove(key)
		} else if entry.Missing {
			return nil, repository.ErrDocumentNotFound
		} else {
			return append([]byte(nil), entry.Body...), nil
		}
	}

	body, err := s.inner.Load(ctx, key)
	switch {
	case errors.Is(err, repository.ErrDocumentNotFound):
		s.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Missing: true, CachedAt: time.Now()})
		return nil, err
	case err != nil:
		return nil, err
	}

	s.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Body: append([]byte(nil), body...), CachedAt: time.Now()})
	return body, nil
}

// Save writes through; the cache is only updated once the inner store accepted the body
func (s *CachedStore) Save(ctx context.Context, key string, body []byte) error {
	if err := s.inner.Save(ctx, key, body); err != nil {
		s.lru.Remove(key)
		return err
	}
	s.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Body: append([]byte(nil), body...), CachedAt: time.Now()})
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	s.lru.Remove(key)
	return s.inner.Delete(ctx, key)
}

// DeleteAll forwards to the inner store when it deletes in bulk
func (s *CachedStore) DeleteAll(ctx context.Context, keys []string) ([]string, error) {
	bulk, ok := s.inner.(repository.BulkDeleter)
	if !ok {
		return nil, repository.ErrBulkDeleteUnsupported
	}
	for _, key := range keys {
		s.lru.Remove(key)
	}
	return bulk.DeleteAll(ctx, keys)
}

// Purge drops every cached entry
func (s *CachedStore) Purge() {
	s.lru.Purge()
}

func (s *CachedStore) Close() error {
	s.lru.Purge()
	return s.inner.Close()
}
