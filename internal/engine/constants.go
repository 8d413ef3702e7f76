package engine

// Command names used for metrics and logs
const (
	CmdGrantCards      = "grant_cards"
	CmdCredit          = "credit"
	CmdDebit           = "debit"
	CmdAddXP           = "add_xp"
	CmdSetName         = "set_name"
	CmdOpenPack        = "open_pack"
	CmdSubmitChallenge = "submit_challenge"
	CmdClaimTask       = "claim_task"
	CmdSetActivePass   = "set_active_pass"
	CmdClaimPassLevel  = "claim_pass_level"
	CmdClaimDaily      = "claim_daily"
	CmdReset           = "reset"
)

// ResetScope names the document set in a failed bulk reset
const ResetScope = "progress documents"

// Log messages
const (
	LogMsgCommandStarted = "Command started"
	LogMsgFeatureLocked  = "Feature is locked"
	LogMsgResetDone      = "Progress reset"
	LogMsgResetFailed    = "Progress document could not be removed"
)

// Log field keys
const (
	LogFieldCommand  = "command"
	LogFieldFeature  = "feature"
	LogFieldDocument = "document"
	LogFieldFailures = "failures"
	LogFieldError    = "error"
)
