package domain

import "fmt"

// RewardKind names a reward variant in persisted and logged form.
type RewardKind string

const (
	RewardKindCard          RewardKind = "card"
	RewardKindCoins         RewardKind = "coins"
	RewardKindXP            RewardKind = "xp"
	RewardKindUnlockPass    RewardKind = "unlock_pass"
	RewardKindUnlockFeature RewardKind = "unlock_feature"
)

// Reward is a closed set of payouts. Only the types below implement it.
type Reward interface {
	Kind() RewardKind
	String() string
	isReward()
}

// CardReward grants one card to the collection.
type CardReward struct {
	Name     string `validate:"required"`
	Rarity   string `validate:"required,rarity"`
	Rating   int    `validate:"gte=0,lte=99"`
	AssetKey string
}

// CoinsReward credits the wallet.
type CoinsReward struct {
	Amount int
}

// XPReward adds experience.
type XPReward struct {
	Amount int
}

// UnlockPassReward adds a season pass to the unlocked set.
type UnlockPassReward struct {
	PassID string
}

// UnlockFeatureReward turns a feature flag on.
type UnlockFeatureReward struct {
	Feature string
}

func (CardReward) Kind() RewardKind          { return RewardKindCard }
func (CoinsReward) Kind() RewardKind         { return RewardKindCoins }
func (XPReward) Kind() RewardKind            { return RewardKindXP }
func (UnlockPassReward) Kind() RewardKind    { return RewardKindUnlockPass }
func (UnlockFeatureReward) Kind() RewardKind { return RewardKindUnlockFeature }

func (r CardReward) String() string          { return fmt.Sprintf("card %s (%d)", r.Name, r.Rating) }
func (r CoinsReward) String() string         { return fmt.Sprintf("%d minecoins", r.Amount) }
func (r XPReward) String() string            { return fmt.Sprintf("%d xp", r.Amount) }
func (r UnlockPassReward) String() string    { return "unlock pass " + r.PassID }
func (r UnlockFeatureReward) String() string { return "unlock feature " + r.Feature }

func (CardReward) isReward()          {}
func (CoinsReward) isReward()         {}
func (XPReward) isReward()            {}
func (UnlockPassReward) isReward()    {}
func (UnlockFeatureReward) isReward() {}

// Card converts a card reward into the card handed to the player.
func (r CardReward) Card() Card {
	return Card{Name: r.Name, Rarity: r.Rarity, Rating: r.Rating, AssetKey: r.AssetKey}
}
