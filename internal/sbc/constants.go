package sbc

// Log messages
const (
	LogMsgSubmitRejected     = "Squad submission rejected"
	LogMsgChallengeCompleted = "Challenge completed"
	LogMsgBundleGranted      = "Bundle card granted"
	LogMsgGrantFailed        = "Cards consumed but reward grant failed"
	LogMsgRolledBack         = "Submission rolled back"
	LogMsgRollbackFailed     = "Failed to roll back submission"
)

// Log field keys
const (
	LogFieldChallenge = "challenge"
	LogFieldBundle    = "bundle"
	LogFieldCard      = "card"
	LogFieldCards     = "cards"
	LogFieldFirstTime = "first_time"
	LogFieldError     = "error"
)

// Entity kinds for unknown-entity errors
const (
	EntityChallenge = "challenge"
	EntityBundle    = "bundle"
)

// Validation detail formats
const (
	DetailCountFmt   = "(%d/%d)"
	DetailAverageFmt = "(%d < %d)"
	ReasonDetailFmt  = "%s: %s"
)
