// Package sbc is the Squad Building Challenge engine: squad validation,
// card consumption, completion tracking and bundle rewards.
package sbc

import (
	"context"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/inventory"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// PackGenerator produces the cards of a reward pack
type PackGenerator interface {
	Generate(ctx context.Context, pack string, count int) ([]domain.Card, error)
}

// BundleGrant is a bundle card handed out by a submission
type BundleGrant struct {
	BundleID string      `json:"bundle_id"`
	Card     domain.Card `json:"card"`
}

// SubmitResult is what a successful submission produced
type SubmitResult struct {
	ChallengeID string        `json:"challenge_id"`
	FirstTime   bool          `json:"first_time"`
	Cards       []domain.Card `json:"cards"`
	Bundles     []BundleGrant `json:"bundles,omitempty"`
}

// ChallengeStatus is the read model shown next to a challenge
type ChallengeStatus struct {
	Challenge domain.Challenge
	Completed bool
}

// BundleStatus reports how far a bundle is from its card
type BundleStatus struct {
	Bundle    domain.Bundle
	Completed int
	Total     int
	Granted   bool
}

// Service is the SBC engine
type Service interface {
	// Validate checks a squad against the challenge requirement. It returns
	// a *domain.ValidationError naming the first failed rule.
	Validate(selection []string, challengeID string) error

	// CanConsume checks the collection holds every selected card
	CanConsume(ctx context.Context, selection []string) error

	// Submit consumes the squad, marks the challenge completed, grants the
	// reward pack and any bundle card it completes. Failures change nothing.
	Submit(ctx context.Context, selection []string, challengeID string) (*SubmitResult, error)

	List(ctx context.Context) ([]ChallengeStatus, error)
	IsCompleted(ctx context.Context, challengeID string) (bool, error)
	BundleStatus(ctx context.Context, bundleID string) (BundleStatus, error)
}

type service struct {
	doc       *repository.Document[domain.ChallengeProgress]
	catalog   *catalog.Catalog
	inventory inventory.Service
	packs     PackGenerator
	bus       event.Bus
}

// NewService creates a new SBC engine. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, cat *catalog.Catalog,
	inv inventory.Service, packs PackGenerator, bus event.Bus) Service {
	return &service{
		doc:       repository.NewDocument(store, locks, repository.DocSBCProgress, newProgress, repairProgress),
		catalog:   cat,
		inventory: inv,
		packs:     packs,
		bus:       bus,
	}
}

func newProgress() domain.ChallengeProgress {
	return domain.ChallengeProgress{Granted: make(map[string]bool)}
}

func repairProgress(p *domain.ChallengeProgress) {
	if p.Granted == nil {
		p.Granted = make(map[string]bool)
	}
	seen := make(map[string]bool, len(p.Completed))
	kept := p.Completed[:0]
	for _, id := range p.Completed {
		if id != "" && !seen[id] {
			seen[id] = true
			kept = append(kept, id)
		}
	}
	p.Completed = kept
}

func (s *service) challenge(id string) (domain.Challenge, error) {
	ch, ok := s.catalog.Challenge(id)
	if !ok {
		return domain.Challenge{}, domain.UnknownEntity(EntityChallenge, id)
	}
	return ch, nil
}

func (s *service) Validate(selection []string, challengeID string) error {
	ch, err := s.challenge(challengeID)
	if err != nil {
		return err
	}
	return validateSelection(s.catalog.Players(), selection, ch.Requirement)
}

func (s *service) CanConsume(ctx context.Context, selection []string) error {
	return s.inventory.CanConsume(ctx, canonicalNames(s.catalog.Players(), selection))
}

func (s *service) Submit(ctx context.Context, selection []string, challengeID string) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	reject := func(err error) (*SubmitResult, error) {
		log.Warn(LogMsgSubmitRejected, LogFieldChallenge, challengeID, LogFieldError, err)
		return nil, err
	}

	ch, err := s.challenge(challengeID)
	if err != nil {
		return reject(err)
	}
	if err := validateSelection(s.catalog.Players(), selection, ch.Requirement); err != nil {
		return reject(err)
	}
	names := canonicalNames(s.catalog.Players(), selection)
	if err := s.inventory.CanConsume(ctx, names); err != nil {
		return reject(err)
	}

	// Drawn before any write so a generator failure leaves no trace
	cards, err := s.packs.Generate(ctx, ch.Reward.Pack, ch.Reward.Count)
	if err != nil {
		return reject(err)
	}

	if err := s.inventory.Consume(ctx, names); err != nil {
		return reject(err)
	}

	result := &SubmitResult{ChallengeID: ch.ID, Cards: cards}
	_, err = s.doc.Update(ctx, func(p *domain.ChallengeProgress) error {
		result.FirstTime = p.MarkCompleted(ch.ID)
		for _, b := range s.catalog.BundlesFor(ch.ID) {
			if p.Granted[b.ID] || !allCompleted(p, b) {
				continue
			}
			p.Granted[b.ID] = true
			result.Bundles = append(result.Bundles, BundleGrant{BundleID: b.ID, Card: b.Card.Card()})
		}
		return nil
	})
	if err != nil {
		log.Error(LogMsgGrantFailed, LogFieldChallenge, ch.ID, LogFieldError, err)
		s.restoreSquad(ctx, ch.ID, names)
		return nil, err
	}

	granted := make([]string, 0, len(cards)+len(result.Bundles))
	for _, c := range cards {
		granted = append(granted, c.Name)
	}
	for _, b := range result.Bundles {
		granted = append(granted, b.Card.Name)
	}
	if _, err := s.inventory.Grant(ctx, granted); err != nil {
		log.Error(LogMsgGrantFailed, LogFieldChallenge, ch.ID, LogFieldCards, granted, LogFieldError, err)
		s.unmark(ctx, result)
		s.restoreSquad(ctx, ch.ID, names)
		return nil, err
	}

	log.Info(LogMsgChallengeCompleted, LogFieldChallenge, ch.ID, LogFieldFirstTime, result.FirstTime, LogFieldCards, len(cards))
	event.PublishBestEffort(ctx, s.bus, event.NewChallengeCompletedEvent(ctx, ch.ID, result.FirstTime))
	for _, b := range result.Bundles {
		log.Info(LogMsgBundleGranted, LogFieldBundle, b.BundleID, LogFieldCard, b.Card.Name)
		event.PublishBestEffort(ctx, s.bus, event.NewBundleGrantedEvent(ctx, b.BundleID, b.Card))
	}
	return result, nil
}

// unmark reverts the completion and bundle flags set by a submission whose
// reward could not be granted
func (s *service) unmark(ctx context.Context, result *SubmitResult) {
	_, err := s.doc.Update(ctx, func(p *domain.ChallengeProgress) error {
		if result.FirstTime {
			kept := p.Completed[:0]
			for _, id := range p.Completed {
				if id != result.ChallengeID {
					kept = append(kept, id)
				}
			}
			p.Completed = kept
		}
		for _, b := range result.Bundles {
			delete(p.Granted, b.BundleID)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, LogFieldChallenge, result.ChallengeID, LogFieldError, err)
	}
}

// restoreSquad gives the consumed cards back
func (s *service) restoreSquad(ctx context.Context, challengeID string, names []string) {
	log := logger.FromContext(ctx)
	if _, err := s.inventory.Grant(ctx, names); err != nil {
		log.Error(LogMsgRollbackFailed, LogFieldChallenge, challengeID, LogFieldCards, names, LogFieldError, err)
		return
	}
	log.Warn(LogMsgRolledBack, LogFieldChallenge, challengeID, LogFieldCards, names)
}

func allCompleted(p *domain.ChallengeProgress, b domain.Bundle) bool {
	for _, id := range b.Challenges {
		if !p.IsCompleted(id) {
			return false
		}
	}
	return true
}

func (s *service) List(ctx context.Context) ([]ChallengeStatus, error) {
	p, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ChallengeStatus, 0, len(s.catalog.Challenges()))
	for _, ch := range s.catalog.Challenges() {
		out = append(out, ChallengeStatus{Challenge: ch, Completed: p.IsCompleted(ch.ID)})
	}
	return out, nil
}

func (s *service) IsCompleted(ctx context.Context, challengeID string) (bool, error) {
	p, err := s.doc.Load(ctx)
	if err != nil {
		return false, err
	}
	return p.IsCompleted(challengeID), nil
}

func (s *service) BundleStatus(ctx context.Context, bundleID string) (BundleStatus, error) {
	var bundle *domain.Bundle
	for _, b := range s.catalog.Bundles() {
		if b.ID == bundleID {
			b := b
			bundle = &b
			break
		}
	}
	if bundle == nil {
		return BundleStatus{}, domain.UnknownEntity(EntityBundle, bundleID)
	}

	p, err := s.doc.Load(ctx)
	if err != nil {
		return BundleStatus{}, err
	}
	status := BundleStatus{Bundle: *bundle, Total: len(bundle.Challenges), Granted: p.Granted[bundle.ID]}
	for _, id := range bundle.Challenges {
		if p.IsCompleted(id) {
			status.Completed++
		}
	}
	return status, nil
}
