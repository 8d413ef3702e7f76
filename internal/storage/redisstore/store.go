// Package redisstore keeps progress documents as Redis string values.
package redisstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/Minefut_Go/internal/repository"
)

// Store is a DocumentStore backed by go-redis
type Store struct {
	client redis.UniversalClient
	prefix string
}

// Config configures a Store
type Config struct {
	// Prefix namespaces every key, e.g. "minefut:"
	Prefix string
}

// New wraps an existing client
func New(client redis.UniversalClient, cfg Config) *Store {
	return &Store{client: client, prefix: cfg.Prefix}
}

// Dial creates a client for addr
func Dial(addr string, cfg Config) *Store {
	return New(redis.NewClient(&redis.Options{Addr: addr}), cfg)
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

// Ping checks the server is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Save replaces the value in a single SET
func (s *Store) Save(ctx context.Context, key string, body []byte) error {
	return s.client.Set(ctx, s.key(key), body, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, s.key(key)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrDocumentNotFound
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
