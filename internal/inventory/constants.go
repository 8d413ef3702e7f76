package inventory

// Log messages
const (
	LogMsgCardsGranted    = "Cards granted"
	LogMsgCardsConsumed   = "Cards consumed"
	LogMsgConsumeRejected = "Consume rejected"
)

// Log field keys
const (
	LogFieldNames = "names"
	LogFieldCount = "count"
	LogFieldCard  = "card"
	LogFieldOwned = "owned"
	LogFieldError = "error"
)
