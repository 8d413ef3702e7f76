package reward

const (
	LogMsgRewardApplied = "Reward applied"

	LogFieldSource = "source"
	LogFieldReward = "reward"
)

const (
	ErrMsgUnsupportedKindFmt = "%w: reward kind %s cannot be applied to a ledger"
	ErrMsgMissingReward      = "%w: missing reward"
)
