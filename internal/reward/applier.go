// Package reward pays out the ledger rewards shared by Défis, the Season Pass
// and the Daily calendar.
package reward

import (
	"context"
	"fmt"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// Granter adds cards to the collection
type Granter interface {
	Grant(ctx context.Context, names []string) (map[string]int, error)
}

// Crediter adds minecoins
type Crediter interface {
	Credit(ctx context.Context, amount int) (int, error)
}

// Experience adds XP
type Experience interface {
	AddXP(ctx context.Context, amount int) (int, error)
}

// Applier pays card, coin and XP rewards. Unlock rewards belong to the season
// pass document and are rejected here.
type Applier struct {
	cards Granter
	coins Crediter
	xp    Experience
}

// NewApplier creates a reward applier over the three ledgers
func NewApplier(cards Granter, coins Crediter, xp Experience) *Applier {
	return &Applier{cards: cards, coins: coins, xp: xp}
}

// Apply pays r. source is only used for logging.
func (a *Applier) Apply(ctx context.Context, source string, r domain.Reward) error {
	var err error
	switch r := r.(type) {
	case domain.CardReward:
		_, err = a.cards.Grant(ctx, []string{r.Name})
	case domain.CoinsReward:
		_, err = a.coins.Credit(ctx, r.Amount)
	case domain.XPReward:
		_, err = a.xp.AddXP(ctx, r.Amount)
	case domain.UnlockPassReward, domain.UnlockFeatureReward:
		return fmt.Errorf(ErrMsgUnsupportedKindFmt, domain.ErrInvalidInput, r.Kind())
	case nil:
		return fmt.Errorf(ErrMsgMissingReward, domain.ErrInvalidInput)
	default:
		return fmt.Errorf(ErrMsgUnsupportedKindFmt, domain.ErrInvalidInput, r.Kind())
	}
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgRewardApplied, LogFieldSource, source, LogFieldReward, r.String())
	return nil
}

// ApplyCard grants a bonus card that accompanies another reward
func (a *Applier) ApplyCard(ctx context.Context, source string, card *domain.CardReward) error {
	if card == nil {
		return nil
	}
	return a.Apply(ctx, source, *card)
}
