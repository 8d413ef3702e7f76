// Package defi is the Défi task tracker: event counters, daily cycles and
// one-shot claims.
package defi

import (
	"context"
	"errors"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/gametime"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// RewardApplier pays a claimed task
type RewardApplier interface {
	Apply(ctx context.Context, source string, r domain.Reward) error
	ApplyCard(ctx context.Context, source string, card *domain.CardReward) error
}

// ClaimResult is what a successful claim paid
type ClaimResult struct {
	Task   domain.Task
	Reward domain.Reward
	Card   *domain.Card
}

// Service is the Défi tracker
type Service interface {
	// AddProgress adds amount to the all-time counter of key.
	// Non-positive amounts are a no-op.
	AddProgress(ctx context.Context, key string, amount int) error

	// Progress resolves an event key: dynamic keys are computed from the
	// other ledgers, daily: keys report the delta since the cycle baseline,
	// anything else is the all-time counter.
	Progress(ctx context.Context, key string) (int, error)

	// CanClaim returns nil when the task can be claimed, otherwise a
	// *domain.NotEligibleError naming the cause
	CanClaim(ctx context.Context, taskID string) error
	Claim(ctx context.Context, taskID string) (*ClaimResult, error)

	List(ctx context.Context, group string) ([]domain.TaskStatus, error)
	Groups() []string
	Status(ctx context.Context, taskID string) (domain.TaskStatus, error)
}

type service struct {
	doc        *repository.Document[domain.TaskProgress]
	catalog    *catalog.Catalog
	resolvers  Resolvers
	rewards    RewardApplier
	clock      gametime.Clock
	calendar   gametime.Calendar
	bus        event.Bus
	dailyBases map[string]bool
}

// NewService creates a new Défi tracker. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, cat *catalog.Catalog,
	resolvers Resolvers, rewards RewardApplier, clock gametime.Clock, calendar gametime.Calendar, bus event.Bus) Service {
	s := &service{
		doc:        repository.NewDocument(store, locks, repository.DocDefi, domain.NewTaskProgress, (*domain.TaskProgress).Normalize),
		catalog:    cat,
		resolvers:  resolvers,
		rewards:    rewards,
		clock:      clock,
		calendar:   calendar,
		bus:        bus,
		dailyBases: make(map[string]bool),
	}
	for _, t := range cat.Tasks() {
		if t.IsDaily() && !isDynamicKey(domain.BaseEventKey(t.EventKey)) {
			s.dailyBases[domain.BaseEventKey(t.EventKey)] = true
		}
	}
	return s
}

// rollCycle clears the daily section when the stored cycle is not the
// current one. It reports whether anything changed.
func rollCycle(p *domain.TaskProgress, cycle string) bool {
	if p.Daily.CycleKey == cycle {
		return false
	}
	p.Daily.CycleKey = cycle
	p.Daily.Baseline = make(map[string]int)
	p.Daily.ClaimedIDs = make(map[string]bool)
	return true
}

// snapshotBaseline records the all-time counter as the cycle baseline the
// first time base is touched in a cycle
func snapshotBaseline(p *domain.TaskProgress, base string) bool {
	if _, ok := p.Daily.Baseline[base]; ok {
		return false
	}
	p.Daily.Baseline[base] = p.Events[base]
	return true
}

func dailyDelta(p domain.TaskProgress, base string) int {
	if d := p.Events[base] - p.Daily.Baseline[base]; d > 0 {
		return d
	}
	return 0
}

// current loads the document rolled to the current cycle with baselines for
// bases. It only writes when the roll or a snapshot changed something.
func (s *service) current(ctx context.Context, bases ...string) (domain.TaskProgress, error) {
	cycle := s.calendar.CycleKey(s.clock.Now())

	p, err := s.doc.Load(ctx)
	if err != nil {
		return p, err
	}
	stale := p.Daily.CycleKey != cycle
	for _, b := range bases {
		if _, ok := p.Daily.Baseline[b]; !ok {
			stale = true
		}
	}
	if !stale {
		return p, nil
	}

	return s.doc.Update(ctx, func(p *domain.TaskProgress) error {
		if rollCycle(p, cycle) {
			logger.FromContext(ctx).Info(LogMsgCycleRolled, LogFieldCycle, cycle)
		}
		for _, b := range bases {
			snapshotBaseline(p, b)
		}
		return nil
	})
}

func (s *service) AddProgress(ctx context.Context, key string, amount int) error {
	if amount <= 0 || key == "" {
		return nil
	}
	key = domain.BaseEventKey(key)
	cycle := s.calendar.CycleKey(s.clock.Now())

	p, err := s.doc.Update(ctx, func(p *domain.TaskProgress) error {
		rollCycle(p, cycle)
		if s.dailyBases[key] {
			snapshotBaseline(p, key)
		}
		p.Events[key] += amount
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgProgressAdded, LogFieldKey, key, LogFieldAmount, amount, LogFieldTotal, p.Events[key])
	return nil
}

func (s *service) Progress(ctx context.Context, key string) (int, error) {
	if isDynamicKey(key) {
		return s.resolveDynamic(ctx, key)
	}
	if domain.IsDailyKey(key) {
		base := domain.BaseEventKey(key)
		p, err := s.current(ctx, base)
		if err != nil {
			return 0, err
		}
		return dailyDelta(p, base), nil
	}
	p, err := s.doc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return p.Events[key], nil
}

// taskProgress is the progress shown for t: daily tasks always count within
// the cycle, whatever their key
func (s *service) taskProgress(ctx context.Context, t domain.Task) (int, error) {
	if t.IsDaily() && !isDynamicKey(domain.BaseEventKey(t.EventKey)) {
		return s.Progress(ctx, domain.DailyKeyPrefix+domain.BaseEventKey(t.EventKey))
	}
	return s.Progress(ctx, t.EventKey)
}

func isClaimed(p domain.TaskProgress, t domain.Task) bool {
	if t.IsDaily() {
		return p.Daily.ClaimedIDs[t.ID]
	}
	return p.Claimed[t.ID]
}

func (s *service) task(id string) (domain.Task, error) {
	t, ok := s.catalog.Task(id)
	if !ok {
		return domain.Task{}, domain.UnknownEntity(EntityTask, id)
	}
	return t, nil
}

// eligibility returns the current progress and nil when t can be claimed
func (s *service) eligibility(ctx context.Context, t domain.Task) (int, error) {
	progress, err := s.taskProgress(ctx, t)
	if err != nil {
		return 0, err
	}
	p, err := s.current(ctx)
	if err != nil {
		return progress, err
	}

	if isClaimed(p, t) {
		return progress, domain.NotEligible(domain.CauseAlreadyClaimed)
	}
	if t.Predecessor != "" {
		prev, err := s.task(t.Predecessor)
		if err != nil {
			return progress, err
		}
		if !isClaimed(p, prev) {
			return progress, domain.NotEligible(domain.CausePredecessorUnmet)
		}
	}
	if progress < t.Target {
		return progress, domain.NotEligible(domain.CauseTargetNotReached)
	}
	return progress, nil
}

func (s *service) CanClaim(ctx context.Context, taskID string) error {
	t, err := s.task(taskID)
	if err != nil {
		return err
	}
	_, err = s.eligibility(ctx, t)
	return err
}

func (s *service) Claim(ctx context.Context, taskID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	t, err := s.task(taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.eligibility(ctx, t); err != nil {
		log.Warn(LogMsgClaimRejected, LogFieldTask, taskID, LogFieldError, err)
		return nil, err
	}

	cycle := s.calendar.CycleKey(s.clock.Now())
	mark := func(claimed bool) error {
		_, err := s.doc.Update(ctx, func(p *domain.TaskProgress) error {
			rollCycle(p, cycle)
			if claimed && isClaimed(*p, t) {
				return domain.NotEligible(domain.CauseAlreadyClaimed)
			}
			if t.IsDaily() {
				setFlag(p.Daily.ClaimedIDs, t.ID, claimed)
			} else {
				setFlag(p.Claimed, t.ID, claimed)
			}
			return nil
		})
		return err
	}

	if err := mark(true); err != nil {
		log.Warn(LogMsgClaimRejected, LogFieldTask, taskID, LogFieldError, err)
		return nil, err
	}

	if err := s.pay(ctx, t); err != nil {
		log.Error(LogMsgClaimRolledBack, LogFieldTask, t.ID, LogFieldError, err)
		if rbErr := mark(false); rbErr != nil {
			log.Error(LogMsgRollbackFailed, LogFieldTask, t.ID, LogFieldError, rbErr)
		}
		return nil, err
	}

	result := &ClaimResult{Task: t, Reward: t.Reward}
	if t.GrantCard != nil {
		card := t.GrantCard.Card()
		result.Card = &card
	}

	log.Info(LogMsgTaskClaimed, LogFieldTask, t.ID, LogFieldReward, t.Reward.String())
	event.PublishBestEffort(ctx, s.bus, event.NewClaimEvent(ctx, event.TaskClaimed, domain.ClaimPayload{
		Source: catalog.SourceDefi,
		ID:     t.ID,
		Reward: t.Reward.Kind(),
	}))
	return result, nil
}

func (s *service) pay(ctx context.Context, t domain.Task) error {
	if err := s.rewards.Apply(ctx, catalog.SourceDefi, t.Reward); err != nil {
		return err
	}
	return s.rewards.ApplyCard(ctx, catalog.SourceDefi, t.GrantCard)
}

func setFlag(m map[string]bool, id string, on bool) {
	if on {
		m[id] = true
		return
	}
	delete(m, id)
}

func (s *service) Status(ctx context.Context, taskID string) (domain.TaskStatus, error) {
	t, err := s.task(taskID)
	if err != nil {
		return domain.TaskStatus{}, err
	}
	return s.status(ctx, t)
}

func (s *service) status(ctx context.Context, t domain.Task) (domain.TaskStatus, error) {
	progress, err := s.eligibility(ctx, t)
	status := domain.TaskStatus{Task: t, Progress: progress, Claimable: err == nil}
	if err != nil && !errors.Is(err, domain.ErrNotEligible) {
		return domain.TaskStatus{}, err
	}

	p, err := s.doc.Load(ctx)
	if err != nil {
		return domain.TaskStatus{}, err
	}
	status.Claimed = isClaimed(p, t)
	return status, nil
}

func (s *service) List(ctx context.Context, group string) ([]domain.TaskStatus, error) {
	var out []domain.TaskStatus
	for _, t := range s.catalog.Tasks() {
		if group != "" && t.Group != group {
			continue
		}
		st, err := s.status(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *service) Groups() []string {
	return s.catalog.TaskGroups()
}
