// Package daily runs the 28-day login calendar. Days are plain calendar
// dates in the game time zone: claiming on consecutive dates advances the
// streak, any gap restarts it at day 1.
package daily

import (
	"context"
	"strconv"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/gametime"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// RewardApplier pays a slot reward
type RewardApplier interface {
	Apply(ctx context.Context, source string, r domain.Reward) error
}

// ClaimResult is the reward paid by a claim and the slot it came from
type ClaimResult struct {
	Day             int
	Slot            domain.DailySlot
	Reward          domain.Reward
	CyclesCompleted int
}

// Status is the calendar read model
type Status struct {
	Date            string
	LastClaimDate   string
	DayIndex        int
	CyclesCompleted int
	ClaimedToday    bool
	// NextDay is the slot a claim today pays, or the slot already paid
	// today when ClaimedToday is set.
	NextDay int
}

// Service is the daily reward calendar
type Service interface {
	// ClaimToday pays today's slot. A second claim on the same date
	// returns domain.ErrAlreadyClaimed.
	ClaimToday(ctx context.Context) (*ClaimResult, error)
	NextDay(ctx context.Context) (int, error)
	Status(ctx context.Context) (Status, error)
	Slots() []domain.DailySlot
}

type service struct {
	doc      *repository.Document[domain.DailyState]
	catalog  *catalog.Catalog
	rewards  RewardApplier
	clock    gametime.Clock
	calendar gametime.Calendar
	bus      event.Bus
}

// NewService creates the daily calendar. Only calendar.Location is used.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, cat *catalog.Catalog,
	rewards RewardApplier, clock gametime.Clock, calendar gametime.Calendar, bus event.Bus) Service {
	return &service{
		doc:      repository.NewDocument(store, locks, repository.DocDailyReward, newState, (*domain.DailyState).Normalize),
		catalog:  cat,
		rewards:  rewards,
		clock:    clock,
		calendar: calendar,
		bus:      bus,
	}
}

func newState() domain.DailyState {
	return domain.DailyState{}
}

// advance computes the state after a claim on today. claimedToday is set
// when st already holds a claim for today and nothing should change.
func advance(ctx context.Context, st domain.DailyState, today string) (next domain.DailyState, claimedToday bool) {
	next = st
	next.LastClaimDate = today
	next.DayIndex = 1

	if st.LastClaimDate == "" {
		return next, false
	}
	gap, err := gametime.DaysBetween(st.LastClaimDate, today)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCorruptClaimDate, LogFieldDate, st.LastClaimDate, LogFieldError, err)
		return next, false
	}
	switch {
	case gap == 0:
		return st, true
	case gap == 1 && st.DayIndex >= domain.DailyCycleLength:
		next.CyclesCompleted++
	case gap == 1:
		next.DayIndex = st.DayIndex + 1
	}
	return next, false
}

func (s *service) today() string {
	return s.calendar.Date(s.clock.Now())
}

func (s *service) ClaimToday(ctx context.Context) (*ClaimResult, error) {
	log := logger.FromContext(ctx)
	today := s.today()

	var before, after domain.DailyState
	_, err := s.doc.Update(ctx, func(st *domain.DailyState) error {
		next, claimed := advance(ctx, *st, today)
		if claimed {
			return domain.NotEligible(domain.CauseAlreadyClaimed)
		}
		if _, ok := s.catalog.DailySlot(next.DayIndex); !ok {
			return domain.UnknownEntity(EntitySlot, strconv.Itoa(next.DayIndex))
		}
		before, after = *st, next
		*st = next
		return nil
	})
	if err != nil {
		log.Warn(LogMsgClaimRejected, LogFieldDate, today, LogFieldError, err)
		return nil, err
	}

	slot, _ := s.catalog.DailySlot(after.DayIndex)
	if err := s.rewards.Apply(ctx, catalog.SourceDaily, slot.Reward); err != nil {
		log.Error(LogMsgClaimRolledBack, LogFieldDay, after.DayIndex, LogFieldError, err)
		if _, rbErr := s.doc.Update(ctx, func(st *domain.DailyState) error {
			*st = before
			return nil
		}); rbErr != nil {
			log.Error(LogMsgRollbackFailed, LogFieldDay, after.DayIndex, LogFieldError, rbErr)
		}
		return nil, err
	}

	log.Info(LogMsgDailyClaimed, LogFieldDay, after.DayIndex, LogFieldCycles, after.CyclesCompleted,
		LogFieldReward, slot.Reward.String())
	event.PublishBestEffort(ctx, s.bus, event.NewClaimEvent(ctx, event.DailyClaimed, domain.ClaimPayload{
		Source: catalog.SourceDaily,
		ID:     today,
		Level:  after.DayIndex,
		Reward: slot.Reward.Kind(),
	}))
	return &ClaimResult{
		Day:             after.DayIndex,
		Slot:            slot,
		Reward:          slot.Reward,
		CyclesCompleted: after.CyclesCompleted,
	}, nil
}

func (s *service) NextDay(ctx context.Context) (int, error) {
	st, err := s.Status(ctx)
	if err != nil {
		return 0, err
	}
	return st.NextDay, nil
}

func (s *service) Status(ctx context.Context) (Status, error) {
	st, err := s.doc.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	today := s.today()
	next, claimed := advance(ctx, st, today)
	return Status{
		Date:            today,
		LastClaimDate:   st.LastClaimDate,
		DayIndex:        st.DayIndex,
		CyclesCompleted: st.CyclesCompleted,
		ClaimedToday:    claimed,
		NextDay:         next.DayIndex,
	}, nil
}

func (s *service) Slots() []domain.DailySlot {
	return s.catalog.DailySlots()
}
