// Package testutil holds fakes shared by the service and engine tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/storage"
)

// ErrInjected is returned by a FlakyStore operation switched to failure
var ErrInjected = errors.New("injected store failure")

// FlakyStore is an in-memory document store whose loads, saves and deletes
// can be made to fail per key.
type FlakyStore struct {
	*storage.MemoryStore

	mu         sync.Mutex
	failSave   map[string]bool
	failLoad   map[string]bool
	failDelete map[string]bool
	failAfter  map[string]int
	saves      map[string]int
}

// NewFlakyStore creates an empty store where every operation succeeds
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{
		MemoryStore: storage.NewMemoryStore(),
		failSave:    make(map[string]bool),
		failLoad:    make(map[string]bool),
		failDelete:  make(map[string]bool),
		failAfter:   make(map[string]int),
		saves:       make(map[string]int),
	}
}

// FailSaves toggles save failures for key
func (s *FlakyStore) FailSaves(key string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSave[key] = fail
}

// FailSaveAfter lets the next n saves of key succeed and fails the one
// after them, once
func (s *FlakyStore) FailSaveAfter(key string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAfter[key] = n + 1
}

// FailLoads toggles load failures for key
func (s *FlakyStore) FailLoads(key string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLoad[key] = fail
}

// FailDeletes toggles delete failures for key
func (s *FlakyStore) FailDeletes(key string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDelete[key] = fail
}

// Saves returns how many successful saves key received
func (s *FlakyStore) Saves(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[key]
}

func (s *FlakyStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	fail := s.failLoad[key]
	s.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return s.MemoryStore.Load(ctx, key)
}

func (s *FlakyStore) Save(ctx context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave[key] {
		return ErrInjected
	}
	if n, ok := s.failAfter[key]; ok {
		if n <= 1 {
			delete(s.failAfter, key)
			return ErrInjected
		}
		s.failAfter[key] = n - 1
	}
	if err := s.MemoryStore.Save(ctx, key, body); err != nil {
		return err
	}
	s.saves[key]++
	return nil
}

func (s *FlakyStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	fail := s.failDelete[key]
	s.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return s.MemoryStore.Delete(ctx, key)
}

var _ repository.DocumentStore = (*FlakyStore)(nil)
