package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// Document is the repository object for one persisted record. Every method
// is a complete transaction under the record's lock: Update loads the whole
// record, applies the mutation in memory and writes the whole record back.
type Document[T any] struct {
	store    DocumentStore
	key      string
	lock     *sync.Mutex
	defaults func() T
	repair   func(*T)
}

// NewDocument binds a typed document to its key. defaults builds the value
// used before the first save; repair (optional) normalizes loaded values.
func NewDocument[T any](store DocumentStore, locks *concurrency.LockManager, key string, defaults func() T, repair func(*T)) *Document[T] {
	return &Document[T]{
		store:    store,
		key:      key,
		lock:     locks.GetLock(key),
		defaults: defaults,
		repair:   repair,
	}
}

// Key returns the document key.
func (d *Document[T]) Key() string {
	return d.key
}

// Load reads the current value.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.loadLocked(ctx)
}

// Update runs fn over the current value and persists the result. When fn
// returns an error nothing is written and the error is returned unchanged.
func (d *Document[T]) Update(ctx context.Context, fn func(*T) error) (T, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	value, err := d.loadLocked(ctx)
	if err != nil {
		return value, err
	}
	if err := fn(&value); err != nil {
		var zero T
		return zero, err
	}
	if err := d.saveLocked(ctx, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Delete removes the document so the next Load returns the defaults.
func (d *Document[T]) Delete(ctx context.Context) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if err := d.store.Delete(ctx, d.key); err != nil && !errors.Is(err, ErrDocumentNotFound) {
		return domain.Persistence("delete", d.key, err)
	}
	return nil
}

func (d *Document[T]) loadLocked(ctx context.Context) (T, error) {
	body, err := d.store.Load(ctx, d.key)
	if errors.Is(err, ErrDocumentNotFound) {
		return d.defaults(), nil
	}
	if err != nil {
		var zero T
		return zero, domain.Persistence("load", d.key, err)
	}

	value := d.defaults()
	if err := json.Unmarshal(body, &value); err != nil {
		var zero T
		return zero, domain.Persistence("decode", d.key, err)
	}
	if d.repair != nil {
		d.repair(&value)
	}
	return value, nil
}

func (d *Document[T]) saveLocked(ctx context.Context, value T) error {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return domain.Persistence("encode", d.key, err)
	}
	if err := d.store.Save(ctx, d.key, body); err != nil {
		logger.FromContext(ctx).Error("Failed to save document", "key", d.key, "error", err)
		return domain.Persistence("save", d.key, err)
	}
	return nil
}
