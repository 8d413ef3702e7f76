package domain

// Event type constants used across the engine for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "pack.opened")
const (
	// EventTypeCoinsSpent is published when minecoins are debited from the wallet
	EventTypeCoinsSpent = "wallet.coins_spent"

	// EventTypeCoinsCredited is published when minecoins are credited to the wallet
	EventTypeCoinsCredited = "wallet.coins_credited"

	// EventTypePackOpened is published when a shop pack is opened
	EventTypePackOpened = "pack.opened"

	// EventTypeCardsGranted is published when cards are added to the collection
	EventTypeCardsGranted = "collection.cards_granted"

	// EventTypeCardsConsumed is published when an SBC consumes cards
	EventTypeCardsConsumed = "collection.cards_consumed"

	// EventTypeXPAdded is published when experience is added to the profile
	EventTypeXPAdded = "profile.xp_added"

	// EventTypeChallengeCompleted is published after a successful SBC submission
	EventTypeChallengeCompleted = "sbc.completed"

	// EventTypeBundleGranted is published when a bundle's special card is granted
	EventTypeBundleGranted = "sbc.bundle_granted"

	// EventTypeTaskClaimed is published when a Défi reward is claimed
	EventTypeTaskClaimed = "defi.claimed"

	// EventTypePassLevelClaimed is published when a season pass level is claimed
	EventTypePassLevelClaimed = "season_pass.level_claimed"

	// EventTypePassActivated is published when the active pass changes
	EventTypePassActivated = "season_pass.activated"

	// EventTypeDailyClaimed is published when the daily reward is claimed
	EventTypeDailyClaimed = "daily.claimed"

	// EventTypeProgressReset is published after a factory reset
	EventTypeProgressReset = "progress.reset"
)

// Défi counter keys fed by engine events
const (
	CounterCoinsSpent    = "coins_spent"
	CounterPackOpened    = "pack_opened"
	CounterSBCCompleted  = "sbc_completed"
	CounterDailyClaimed  = "daily_claimed"
	CounterPassLevelsWon = "pass_levels_claimed"
)
