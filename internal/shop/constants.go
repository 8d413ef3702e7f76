package shop

// Log messages
const (
	LogMsgPackOpened     = "Pack opened"
	LogMsgPurchaseFailed = "Pack purchase rejected"
	LogMsgRefunded       = "Pack grant failed, price refunded"
	LogMsgRefundFailed   = "Pack grant failed and refund failed"
	LogMsgXPFailed       = "Pack opened but xp award failed"
)

// Log field keys
const (
	LogFieldPack    = "pack"
	LogFieldPrice   = "price"
	LogFieldCards   = "cards"
	LogFieldBalance = "balance"
	LogFieldError   = "error"
)

// EntityPack is the unknown-entity kind for shop packs
const EntityPack = "pack"
