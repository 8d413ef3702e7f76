// Package engine is the command facade over the progression services. Every
// command runs under one lock, carries its own command id for log
// correlation and is observed by the command metrics.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/daily"
	"github.com/osse101/Minefut_Go/internal/defi"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/inventory"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/metrics"
	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/sbc"
	"github.com/osse101/Minefut_Go/internal/seasonpass"
	"github.com/osse101/Minefut_Go/internal/shop"
	"github.com/osse101/Minefut_Go/internal/wallet"
	"github.com/osse101/Minefut_Go/internal/xp"
)

// Services are the ledgers and engines the facade drives
type Services struct {
	Inventory  inventory.Service
	Wallet     wallet.Service
	XP         xp.Service
	SBC        sbc.Service
	Defi       defi.Service
	SeasonPass seasonpass.Service
	Daily      daily.Service
	Shop       shop.Service
}

// Engine serializes multi-document commands
type Engine struct {
	mu    sync.Mutex
	svc   Services
	store repository.DocumentStore
	locks *concurrency.LockManager
	bus   event.Bus
	gates bool
}

// Option configures an Engine
type Option func(*Engine)

// WithFeatureGates makes SBC submissions require the sbc feature and task
// claims require the defi feature
func WithFeatureGates(enabled bool) Option {
	return func(e *Engine) { e.gates = enabled }
}

// New builds the facade. Feature gates are on unless disabled.
func New(store repository.DocumentStore, locks *concurrency.LockManager, svc Services, bus event.Bus, opts ...Option) *Engine {
	e := &Engine{
		svc:   svc,
		store: store,
		locks: locks,
		bus:   bus,
		gates: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run executes fn as one command
func run[T any](e *Engine, ctx context.Context, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx = logger.WithCommandID(ctx, logger.GenerateCommandID())
	logger.FromContext(ctx).Debug(LogMsgCommandStarted, LogFieldCommand, name)

	var out T
	err := metrics.ObserveCommand(name, func() error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

func (e *Engine) requireFeature(ctx context.Context, feature string) error {
	if !e.gates {
		return nil
	}
	unlocked, err := e.svc.SeasonPass.IsFeatureUnlocked(ctx, feature)
	if err != nil {
		return err
	}
	if !unlocked {
		logger.FromContext(ctx).Warn(LogMsgFeatureLocked, LogFieldFeature, feature)
		return fmt.Errorf("%w: %s", domain.ErrFeatureLocked, feature)
	}
	return nil
}

// GrantCards adds one copy of every name to the collection
func (e *Engine) GrantCards(ctx context.Context, names []string) (map[string]int, error) {
	return run(e, ctx, CmdGrantCards, func(ctx context.Context) (map[string]int, error) {
		return e.svc.Inventory.Grant(ctx, names)
	})
}

// Credit adds minecoins
func (e *Engine) Credit(ctx context.Context, amount int) (int, error) {
	return run(e, ctx, CmdCredit, func(ctx context.Context) (int, error) {
		return e.svc.Wallet.Credit(ctx, amount)
	})
}

// Debit spends minecoins
func (e *Engine) Debit(ctx context.Context, amount int) (int, error) {
	return run(e, ctx, CmdDebit, func(ctx context.Context) (int, error) {
		return e.svc.Wallet.Debit(ctx, amount)
	})
}

func (e *Engine) AddXP(ctx context.Context, amount int) (int, error) {
	return run(e, ctx, CmdAddXP, func(ctx context.Context) (int, error) {
		return e.svc.XP.AddXP(ctx, amount)
	})
}

func (e *Engine) SetName(ctx context.Context, name string) (string, error) {
	return run(e, ctx, CmdSetName, func(ctx context.Context) (string, error) {
		return e.svc.XP.SetName(ctx, name)
	})
}

func (e *Engine) OpenPack(ctx context.Context, pack string) (*domain.PackOpening, error) {
	return run(e, ctx, CmdOpenPack, func(ctx context.Context) (*domain.PackOpening, error) {
		return e.svc.Shop.OpenPack(ctx, pack)
	})
}

func (e *Engine) SubmitChallenge(ctx context.Context, selection []string, challengeID string) (*sbc.SubmitResult, error) {
	return run(e, ctx, CmdSubmitChallenge, func(ctx context.Context) (*sbc.SubmitResult, error) {
		if err := e.requireFeature(ctx, domain.FeatureSBC); err != nil {
			return nil, err
		}
		return e.svc.SBC.Submit(ctx, selection, challengeID)
	})
}

func (e *Engine) ClaimTask(ctx context.Context, taskID string) (*defi.ClaimResult, error) {
	return run(e, ctx, CmdClaimTask, func(ctx context.Context) (*defi.ClaimResult, error) {
		if err := e.requireFeature(ctx, domain.FeatureDefi); err != nil {
			return nil, err
		}
		return e.svc.Defi.Claim(ctx, taskID)
	})
}

func (e *Engine) SetActivePass(ctx context.Context, passID string) error {
	_, err := run(e, ctx, CmdSetActivePass, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, e.svc.SeasonPass.SetActive(ctx, passID)
	})
	return err
}

func (e *Engine) ClaimPassLevel(ctx context.Context, passID string, level int) (domain.Reward, error) {
	return run(e, ctx, CmdClaimPassLevel, func(ctx context.Context) (domain.Reward, error) {
		return e.svc.SeasonPass.Claim(ctx, passID, level)
	})
}

func (e *Engine) ClaimDaily(ctx context.Context) (*daily.ClaimResult, error) {
	return run(e, ctx, CmdClaimDaily, func(ctx context.Context) (*daily.ClaimResult, error) {
		return e.svc.Daily.ClaimToday(ctx)
	})
}

// DocumentReset is the outcome of removing one progress document
type DocumentReset struct {
	Key string
	Err error
}

// Reset deletes every progress document. Static catalogs are untouched.
// Stores that delete in bulk clear all documents in one transaction;
// otherwise every document is attempted and the error joins the failures.
func (e *Engine) Reset(ctx context.Context) ([]DocumentReset, error) {
	return run(e, ctx, CmdReset, func(ctx context.Context) ([]DocumentReset, error) {
		log := logger.FromContext(ctx)

		report, err := e.resetBulk(ctx)
		if errors.Is(err, repository.ErrBulkDeleteUnsupported) {
			report, err = e.resetEach(ctx)
		}

		failures := 0
		for _, r := range report {
			if r.Err != nil {
				log.Error(LogMsgResetFailed, LogFieldDocument, r.Key, LogFieldError, r.Err)
				failures++
			}
		}
		log.Info(LogMsgResetDone, LogFieldFailures, failures)
		event.PublishBestEffort(ctx, e.bus, event.NewProgressResetEvent(ctx))
		return report, err
	})
}

// resetBulk holds every document lock while the store deletes them together
func (e *Engine) resetBulk(ctx context.Context) ([]DocumentReset, error) {
	bulk, ok := e.store.(repository.BulkDeleter)
	if !ok {
		return nil, repository.ErrBulkDeleteUnsupported
	}

	for _, key := range repository.ProgressDocuments {
		lock := e.locks.GetLock(key)
		lock.Lock()
		defer lock.Unlock()
	}

	_, err := bulk.DeleteAll(ctx, repository.ProgressDocuments)
	if errors.Is(err, repository.ErrBulkDeleteUnsupported) {
		return nil, err
	}
	if err != nil {
		err = domain.Persistence("delete", ResetScope, err)
	}
	report := make([]DocumentReset, 0, len(repository.ProgressDocuments))
	for _, key := range repository.ProgressDocuments {
		report = append(report, DocumentReset{Key: key, Err: err})
	}
	return report, err
}

func (e *Engine) resetEach(ctx context.Context) ([]DocumentReset, error) {
	report := make([]DocumentReset, 0, len(repository.ProgressDocuments))
	var errs []error
	for _, key := range repository.ProgressDocuments {
		err := e.locks.WithLock(key, func() error {
			if err := e.store.Delete(ctx, key); err != nil && !errors.Is(err, repository.ErrDocumentNotFound) {
				return domain.Persistence("delete", key, err)
			}
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
		report = append(report, DocumentReset{Key: key, Err: err})
	}
	return report, errors.Join(errs...)
}
