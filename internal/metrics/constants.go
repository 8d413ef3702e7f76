package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Command metric names
const (
	MetricNameCommandsTotal    = "minefut_commands_total"
	MetricNameCommandDuration  = "minefut_command_duration_seconds"
	MetricNameCommandsInFlight = "minefut_commands_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "minefut_events_published_total"
)

// Business metric names
const (
	MetricNameCoinsCredited  = "minefut_coins_credited_total"
	MetricNameCoinsSpent     = "minefut_coins_spent_total"
	MetricNamePacksOpened    = "minefut_packs_opened_total"
	MetricNameCardsGranted   = "minefut_cards_granted_total"
	MetricNameCardsConsumed  = "minefut_cards_consumed_total"
	MetricNameXPAdded        = "minefut_xp_added_total"
	MetricNameChallengesDone = "minefut_challenges_completed_total"
	MetricNameBundlesGranted = "minefut_bundles_granted_total"
	MetricNameRewardsClaimed = "minefut_rewards_claimed_total"
	MetricNameProgressResets = "minefut_progress_resets_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Command metric help text
const (
	HelpTextCommandsTotal    = "Total number of engine commands by outcome"
	HelpTextCommandDuration  = "Engine command latency in seconds"
	HelpTextCommandsInFlight = "Current number of engine commands being executed"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextCoinsCredited  = "Total minecoins credited to the wallet"
	HelpTextCoinsSpent     = "Total minecoins debited from the wallet"
	HelpTextPacksOpened    = "Total number of shop packs opened"
	HelpTextCardsGranted   = "Total number of cards granted to the collection"
	HelpTextCardsConsumed  = "Total number of cards consumed by challenges"
	HelpTextXPAdded        = "Total experience added to the profile"
	HelpTextChallengesDone = "Total number of successful challenge submissions"
	HelpTextBundlesGranted = "Total number of bundle cards granted"
	HelpTextRewardsClaimed = "Total number of rewards claimed per progression loop"
	HelpTextProgressResets = "Total number of factory resets"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelType    = "type"
	LabelPack    = "pack"
	LabelSource  = "source"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// CommandLatencyBuckets covers local file writes (sub-millisecond) up to
// remote store round trips (seconds)
var CommandLatencyBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
	LogMsgTextfileWritten   = "Metrics textfile written"
)
