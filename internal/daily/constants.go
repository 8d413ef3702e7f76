package daily

// Log messages
const (
	LogMsgDailyClaimed     = "Daily reward claimed"
	LogMsgClaimRejected    = "Daily reward claim rejected"
	LogMsgClaimRolledBack  = "Daily reward failed, claim rolled back"
	LogMsgRollbackFailed   = "Daily reward rollback failed"
	LogMsgCorruptClaimDate = "Unreadable last claim date, restarting the cycle"
)

// Log field keys
const (
	LogFieldDay    = "day"
	LogFieldDate   = "date"
	LogFieldCycles = "cycles"
	LogFieldReward = "reward"
	LogFieldError  = "error"
)

// EntitySlot is the unknown-entity kind for calendar days
const EntitySlot = "daily slot"
