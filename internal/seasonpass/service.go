// Package seasonpass tracks the leveling tracks of every season. Only the
// active pass accrues XP; inactive passes keep the delta frozen when they
// were switched away from.
package seasonpass

import (
	"context"
	"fmt"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// Experience reads the global XP total every pass delta is measured against
type Experience interface {
	XP(ctx context.Context) (int, error)
}

// RewardApplier pays ledger rewards (card, coins, xp)
type RewardApplier interface {
	Apply(ctx context.Context, source string, r domain.Reward) error
}

// LevelReward is one row of a pass reward track
type LevelReward struct {
	Level     int
	Reward    domain.Reward
	Claimed   bool
	Claimable bool
}

// Service manages the season passes
type Service interface {
	ActivePass(ctx context.Context) (string, error)

	// SetActive switches the live pass. Switching to the active pass is a
	// no-op; switching to a locked pass fails with CausePassLocked.
	SetActive(ctx context.Context, passID string) error

	LevelProgress(ctx context.Context, passID string) (domain.LevelProgress, error)
	CanClaim(ctx context.Context, passID string, level int) error

	// Claim pays the reward of (passID, level) and records it as claimed
	Claim(ctx context.Context, passID string, level int) (domain.Reward, error)

	ListPasses(ctx context.Context) ([]domain.PassInfo, error)
	Rewards(ctx context.Context, passID string) ([]LevelReward, error)
	IsFeatureUnlocked(ctx context.Context, feature string) (bool, error)
}

type service struct {
	doc     *repository.Document[domain.PassState]
	catalog *catalog.Catalog
	xp      Experience
	rewards RewardApplier
	bus     event.Bus
}

// NewService creates a new season pass manager. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, cat *catalog.Catalog,
	xp Experience, rewards RewardApplier, bus event.Bus) Service {
	return &service{
		doc:     repository.NewDocument(store, locks, repository.DocSeasonPass, domain.NewPassState, (*domain.PassState).Normalize),
		catalog: cat,
		xp:      xp,
		rewards: rewards,
		bus:     bus,
	}
}

func (s *service) pass(id string) (domain.SeasonPass, error) {
	p, ok := s.catalog.Pass(id)
	if !ok {
		return domain.SeasonPass{}, domain.UnknownEntity(EntityPass, id)
	}
	return p, nil
}

// delta is the XP a pass accumulated while active. A missing baseline
// counts from 0.
func delta(st domain.PassState, passID string, xp int) int {
	var d int
	if st.Active == passID {
		d = xp - st.StartXP[passID]
	} else {
		d = st.FrozenXP[passID]
	}
	if d < 0 {
		return 0
	}
	return d
}

func (s *service) ActivePass(ctx context.Context) (string, error) {
	st, err := s.doc.Load(ctx)
	if err != nil {
		return "", err
	}
	return st.Active, nil
}

func (s *service) SetActive(ctx context.Context, passID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.pass(passID); err != nil {
		return err
	}
	xp, err := s.xp.XP(ctx)
	if err != nil {
		return err
	}

	var from string
	changed := false
	_, err = s.doc.Update(ctx, func(st *domain.PassState) error {
		if !st.IsUnlocked(passID) {
			return domain.NotEligible(domain.CausePassLocked)
		}
		from = st.Active
		if from == passID {
			return nil
		}
		st.FrozenXP[from] = delta(*st, from, xp)
		if frozen, ok := st.FrozenXP[passID]; ok {
			st.StartXP[passID] = xp - frozen
			delete(st.FrozenXP, passID)
		} else {
			st.StartXP[passID] = xp
		}
		st.Active = passID
		changed = true
		return nil
	})
	if err != nil {
		log.Warn(LogMsgActivateRejected, LogFieldPass, passID, LogFieldError, err)
		return err
	}
	if !changed {
		return nil
	}

	log.Info(LogMsgPassActivated, LogFieldFrom, from, LogFieldPass, passID)
	event.PublishBestEffort(ctx, s.bus, event.NewPassActivatedEvent(ctx, from, passID))
	return nil
}

func (s *service) LevelProgress(ctx context.Context, passID string) (domain.LevelProgress, error) {
	if _, err := s.pass(passID); err != nil {
		return domain.LevelProgress{}, err
	}
	st, err := s.doc.Load(ctx)
	if err != nil {
		return domain.LevelProgress{}, err
	}
	xp, err := s.xp.XP(ctx)
	if err != nil {
		return domain.LevelProgress{}, err
	}
	return domain.LevelProgressFromXP(delta(st, passID, xp)), nil
}

// eligibility checks (passID, level) against st and returns the reward
func eligibility(st domain.PassState, p domain.SeasonPass, level, xp int) (domain.Reward, error) {
	if !st.IsUnlocked(p.ID) {
		return nil, domain.NotEligible(domain.CausePassLocked)
	}
	r, ok := p.Rewards[level]
	if !ok {
		return nil, domain.NotEligible(domain.CauseNoRewardAtLevel)
	}
	if st.IsClaimed(p.ID, level) {
		return nil, domain.NotEligible(domain.CauseAlreadyClaimed)
	}
	if domain.LevelProgressFromXP(delta(st, p.ID, xp)).Level < level {
		return nil, domain.NotEligible(domain.CauseLevelNotReached)
	}
	return r, nil
}

func (s *service) CanClaim(ctx context.Context, passID string, level int) error {
	p, err := s.pass(passID)
	if err != nil {
		return err
	}
	st, err := s.doc.Load(ctx)
	if err != nil {
		return err
	}
	xp, err := s.xp.XP(ctx)
	if err != nil {
		return err
	}
	_, err = eligibility(st, p, level, xp)
	return err
}

func (s *service) Claim(ctx context.Context, passID string, level int) (domain.Reward, error) {
	log := logger.FromContext(ctx)

	p, err := s.pass(passID)
	if err != nil {
		return nil, err
	}
	xp, err := s.xp.XP(ctx)
	if err != nil {
		return nil, err
	}

	// Unlock rewards land in the pass document itself, so they are paid in
	// the same write that marks the level claimed.
	var reward domain.Reward
	_, err = s.doc.Update(ctx, func(st *domain.PassState) error {
		r, err := eligibility(*st, p, level, xp)
		if err != nil {
			return err
		}
		reward = r
		st.MarkClaimed(passID, level)

		switch r := r.(type) {
		case domain.UnlockPassReward:
			st.Unlock(r.PassID)
		case domain.UnlockFeatureReward:
			st.Features[r.Feature] = true
		case domain.CardReward, domain.CoinsReward, domain.XPReward:
		default:
			return fmt.Errorf("%w: unsupported reward %T", domain.ErrInvalidInput, r)
		}
		return nil
	})
	if err != nil {
		log.Warn(LogMsgClaimRejected, LogFieldPass, passID, LogFieldLevel, level, LogFieldError, err)
		return nil, err
	}

	switch r := reward.(type) {
	case domain.UnlockPassReward:
		log.Info(LogMsgPassUnlocked, LogFieldPass, r.PassID)
	case domain.UnlockFeatureReward:
		log.Info(LogMsgFeatureUnlocked, LogFieldFeature, r.Feature)
	case domain.CardReward, domain.CoinsReward, domain.XPReward:
		if err := s.rewards.Apply(ctx, catalog.SourcePass, r); err != nil {
			log.Error(LogMsgClaimRolledBack, LogFieldPass, passID, LogFieldLevel, level, LogFieldError, err)
			if rbErr := s.unmark(ctx, passID, level); rbErr != nil {
				log.Error(LogMsgRollbackFailed, LogFieldPass, passID, LogFieldLevel, level, LogFieldError, rbErr)
			}
			return nil, err
		}
	}

	log.Info(LogMsgLevelClaimed, LogFieldPass, passID, LogFieldLevel, level, LogFieldReward, reward.String())
	event.PublishBestEffort(ctx, s.bus, event.NewClaimEvent(ctx, event.PassLevelClaimed, domain.ClaimPayload{
		Source: catalog.SourcePass,
		ID:     passID,
		Level:  level,
		Reward: reward.Kind(),
	}))
	return reward, nil
}

func (s *service) unmark(ctx context.Context, passID string, level int) error {
	_, err := s.doc.Update(ctx, func(st *domain.PassState) error {
		levels := st.Claimed[passID][:0]
		for _, l := range st.Claimed[passID] {
			if l != level {
				levels = append(levels, l)
			}
		}
		st.Claimed[passID] = levels
		return nil
	})
	return err
}

func (s *service) ListPasses(ctx context.Context) ([]domain.PassInfo, error) {
	st, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	passes := s.catalog.Passes()
	out := make([]domain.PassInfo, 0, len(passes))
	for _, p := range passes {
		info := domain.PassInfo{
			ID:       p.ID,
			Name:     p.Name,
			Unlocked: st.IsUnlocked(p.ID),
			Active:   st.Active == p.ID,
		}
		if !info.Unlocked {
			info.UnlockHint = s.catalog.UnlockHint(p.ID)
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *service) Rewards(ctx context.Context, passID string) ([]LevelReward, error) {
	p, err := s.pass(passID)
	if err != nil {
		return nil, err
	}
	st, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	xp, err := s.xp.XP(ctx)
	if err != nil {
		return nil, err
	}

	levels := p.Levels()
	out := make([]LevelReward, 0, len(levels))
	for _, lvl := range levels {
		_, claimErr := eligibility(st, p, lvl, xp)
		out = append(out, LevelReward{
			Level:     lvl,
			Reward:    p.Rewards[lvl],
			Claimed:   st.IsClaimed(passID, lvl),
			Claimable: claimErr == nil,
		})
	}
	return out, nil
}

func (s *service) IsFeatureUnlocked(ctx context.Context, feature string) (bool, error) {
	st, err := s.doc.Load(ctx)
	if err != nil {
		return false, err
	}
	return st.Features[feature], nil
}
