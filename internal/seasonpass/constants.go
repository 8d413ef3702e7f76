package seasonpass

// Log messages
const (
	LogMsgPassActivated    = "Season pass activated"
	LogMsgLevelClaimed     = "Season pass level claimed"
	LogMsgClaimRejected    = "Season pass claim rejected"
	LogMsgActivateRejected = "Season pass switch rejected"
	LogMsgClaimRolledBack  = "Season pass reward failed, claim rolled back"
	LogMsgRollbackFailed   = "Season pass claim rollback failed"
	LogMsgPassUnlocked     = "Season pass unlocked"
	LogMsgFeatureUnlocked  = "Feature unlocked"
)

// Log field keys
const (
	LogFieldPass    = "pass"
	LogFieldFrom    = "from"
	LogFieldLevel   = "level"
	LogFieldDelta   = "delta"
	LogFieldReward  = "reward"
	LogFieldFeature = "feature"
	LogFieldError   = "error"
)

// EntityPass is the unknown-entity kind for pass ids
const EntityPass = "season pass"
