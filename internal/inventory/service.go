package inventory

import (
	"context"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// Service is the inventory ledger: owned card counts keyed by base name
type Service interface {
	// Grant adds one copy per name. Empty names are skipped.
	Grant(ctx context.Context, names []string) (map[string]int, error)

	// Consume removes one copy per name, all or nothing
	Consume(ctx context.Context, names []string) error

	// CanConsume checks Consume without mutating
	CanConsume(ctx context.Context, names []string) error

	Count(ctx context.Context, name string) (int, error)
	Snapshot(ctx context.Context) (map[string]int, error)
}

type service struct {
	doc *repository.Document[domain.Collection]
	bus event.Bus
}

// NewService creates a new inventory service. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		doc: repository.NewDocument(store, locks, repository.DocCollection, newCollection, repairCollection),
		bus: bus,
	}
}

func newCollection() domain.Collection {
	return domain.Collection{Owned: make(map[string]int)}
}

// repairCollection prunes zero and negative counts and re-keys variant names
func repairCollection(c *domain.Collection) {
	if c.Owned == nil {
		c.Owned = make(map[string]int)
		return
	}
	for name, count := range c.Owned {
		base := domain.BaseName(name)
		if count <= 0 || base == "" {
			delete(c.Owned, name)
			continue
		}
		if base != name {
			delete(c.Owned, name)
			c.Owned[base] += count
		}
	}
}

// baseNames canonicalizes names, dropping the empty ones
func baseNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if b := domain.BaseName(n); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (s *service) Grant(ctx context.Context, names []string) (map[string]int, error) {
	log := logger.FromContext(ctx)

	bases := baseNames(names)
	if len(bases) == 0 {
		return s.Snapshot(ctx)
	}

	updated, err := s.doc.Update(ctx, func(c *domain.Collection) error {
		for _, b := range bases {
			c.Owned[b]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCardsGranted, LogFieldNames, bases, LogFieldCount, len(bases))
	event.PublishBestEffort(ctx, s.bus, event.NewCardsGrantedEvent(ctx, bases))
	return copyCounts(updated.Owned), nil
}

func (s *service) Consume(ctx context.Context, names []string) error {
	log := logger.FromContext(ctx)

	bases := baseNames(names)
	if len(bases) == 0 {
		return nil
	}

	_, err := s.doc.Update(ctx, func(c *domain.Collection) error {
		if err := checkConsume(c.Owned, bases); err != nil {
			return err
		}
		for _, b := range bases {
			c.Owned[b]--
			if c.Owned[b] <= 0 {
				delete(c.Owned, b)
			}
		}
		return nil
	})
	if err != nil {
		log.Warn(LogMsgConsumeRejected, LogFieldNames, bases, LogFieldError, err)
		return err
	}

	log.Info(LogMsgCardsConsumed, LogFieldNames, bases, LogFieldCount, len(bases))
	event.PublishBestEffort(ctx, s.bus, event.NewCardsConsumedEvent(ctx, bases))
	return nil
}

func (s *service) CanConsume(ctx context.Context, names []string) error {
	c, err := s.doc.Load(ctx)
	if err != nil {
		return err
	}
	return checkConsume(c.Owned, baseNames(names))
}

// checkConsume reports the first name, in request order, whose multiplicity
// exceeds the owned count
func checkConsume(owned map[string]int, bases []string) error {
	need := make(map[string]int, len(bases))
	order := make([]string, 0, len(bases))
	for _, b := range bases {
		if need[b] == 0 {
			order = append(order, b)
		}
		need[b]++
	}
	for _, b := range order {
		if owned[b] < need[b] {
			return &domain.InsufficientInventoryError{Name: b, Owned: owned[b], Required: need[b]}
		}
	}
	return nil
}

func (s *service) Count(ctx context.Context, name string) (int, error) {
	c, err := s.doc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return c.Owned[domain.BaseName(name)], nil
}

func (s *service) Snapshot(ctx context.Context) (map[string]int, error) {
	c, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return copyCounts(c.Owned), nil
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
