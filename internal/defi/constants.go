package defi

// Log messages
const (
	LogMsgProgressAdded   = "Défi progress added"
	LogMsgCycleRolled     = "Daily défi cycle started"
	LogMsgTaskClaimed     = "Défi claimed"
	LogMsgClaimRejected   = "Défi claim rejected"
	LogMsgClaimRolledBack = "Défi reward failed, claim rolled back"
	LogMsgRollbackFailed  = "Failed to roll back défi claim"
	LogMsgResolverFailed  = "Dynamic progress resolver failed"
	LogMsgHandlerFailed   = "Failed to record défi progress from event"
)

// Log field keys
const (
	LogFieldKey    = "key"
	LogFieldAmount = "amount"
	LogFieldTotal  = "total"
	LogFieldTask   = "task"
	LogFieldCycle  = "cycle"
	LogFieldReward = "reward"
	LogFieldEvent  = "event_type"
	LogFieldError  = "error"
)

// EntityTask is the kind reported for unknown task ids
const EntityTask = "task"

// ownedMinParts is the number of fields after the owned_min: prefix
const ownedMinParts = 3
