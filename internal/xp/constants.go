package xp

// Log messages
const (
	LogMsgXPAdded     = "Experience added"
	LogMsgLevelUp     = "Profile leveled up"
	LogMsgNameChanged = "Profile name changed"
)

// Log field keys
const (
	LogFieldAmount = "amount"
	LogFieldTotal  = "total"
	LogFieldLevel  = "level"
	LogFieldName   = "name"
)
