package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/Minefut_Go/internal/logger"
)

// Connection retry defaults
const (
	DefaultConnectRetries     = 5
	DefaultConnectInitialWait = 200 * time.Millisecond
	DefaultConnectMaxWait     = 5 * time.Second
)

// RetryConnect retries fn with exponential backoff until it succeeds, the
// retries are exhausted or ctx is cancelled. Only used while opening a
// store: commands themselves are never retried.
func RetryConnect(ctx context.Context, what string, maxRetries uint64, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultConnectInitialWait
	b.MaxInterval = DefaultConnectMaxWait

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err != nil {
			logger.FromContext(ctx).Warn("Store connection failed, retrying", "store", what, "attempt", attempt, "error", err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx))
}
