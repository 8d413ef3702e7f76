package engine

import (
	"context"

	"github.com/osse101/Minefut_Go/internal/daily"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/sbc"
	"github.com/osse101/Minefut_Go/internal/seasonpass"
)

// Profile is the header shown on every screen
type Profile struct {
	Name       string
	XP         int
	Level      domain.LevelProgress
	Balance    int
	ActivePass string
	PassLevel  domain.LevelProgress
	Cards      int
}

// Profile gathers the player summary
func (e *Engine) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	var err error

	if p.Name, err = e.svc.XP.Name(ctx); err != nil {
		return Profile{}, err
	}
	if p.XP, err = e.svc.XP.XP(ctx); err != nil {
		return Profile{}, err
	}
	p.Level = domain.LevelProgressFromXP(p.XP)
	if p.Balance, err = e.svc.Wallet.Balance(ctx); err != nil {
		return Profile{}, err
	}
	if p.ActivePass, err = e.svc.SeasonPass.ActivePass(ctx); err != nil {
		return Profile{}, err
	}
	if p.PassLevel, err = e.svc.SeasonPass.LevelProgress(ctx, p.ActivePass); err != nil {
		return Profile{}, err
	}
	owned, err := e.svc.Inventory.Snapshot(ctx)
	if err != nil {
		return Profile{}, err
	}
	for _, n := range owned {
		p.Cards += n
	}
	return p, nil
}

func (e *Engine) Collection(ctx context.Context) (map[string]int, error) {
	return e.svc.Inventory.Snapshot(ctx)
}

func (e *Engine) Challenges(ctx context.Context) ([]sbc.ChallengeStatus, error) {
	return e.svc.SBC.List(ctx)
}

func (e *Engine) BundleStatus(ctx context.Context, bundleID string) (sbc.BundleStatus, error) {
	return e.svc.SBC.BundleStatus(ctx, bundleID)
}

// ValidateSquad checks a selection without consuming anything
func (e *Engine) ValidateSquad(ctx context.Context, selection []string, challengeID string) error {
	if err := e.svc.SBC.Validate(selection, challengeID); err != nil {
		return err
	}
	return e.svc.SBC.CanConsume(ctx, selection)
}

func (e *Engine) Tasks(ctx context.Context, group string) ([]domain.TaskStatus, error) {
	return e.svc.Defi.List(ctx, group)
}

func (e *Engine) TaskGroups() []string {
	return e.svc.Defi.Groups()
}

func (e *Engine) Passes(ctx context.Context) ([]domain.PassInfo, error) {
	return e.svc.SeasonPass.ListPasses(ctx)
}

func (e *Engine) PassRewards(ctx context.Context, passID string) ([]seasonpass.LevelReward, error) {
	return e.svc.SeasonPass.Rewards(ctx, passID)
}

func (e *Engine) PassLevel(ctx context.Context, passID string) (domain.LevelProgress, error) {
	return e.svc.SeasonPass.LevelProgress(ctx, passID)
}

func (e *Engine) FeatureUnlocked(ctx context.Context, feature string) (bool, error) {
	return e.svc.SeasonPass.IsFeatureUnlocked(ctx, feature)
}

func (e *Engine) DailyStatus(ctx context.Context) (daily.Status, error) {
	return e.svc.Daily.Status(ctx)
}

func (e *Engine) DailySlots() []domain.DailySlot {
	return e.svc.Daily.Slots()
}

func (e *Engine) Packs() []domain.PackDefinition {
	return e.svc.Shop.Packs()
}
