package wallet

// Log messages
const (
	LogMsgCoinsCredited    = "Minecoins credited"
	LogMsgCoinsDebited     = "Minecoins debited"
	LogMsgDebitRejected    = "Debit rejected"
	LogMsgBalanceOverwrite = "Wallet balance overwritten"
)

// Log field keys
const (
	LogFieldAmount  = "amount"
	LogFieldBalance = "balance"
	LogFieldError   = "error"
)

// ErrMsgNegativeBalanceFmt rejects SetBalance with a negative value
const ErrMsgNegativeBalanceFmt = "balance %d must not be negative: %w"
