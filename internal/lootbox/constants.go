package lootbox

// Error messages
const (
	ErrMsgEmptyPoolFmt = "pack %q has no player for rarity %q"
)

// Log messages
const (
	LogMsgPackGenerated   = "Pack generated"
	LogMsgRarityPoolEmpty = "No packable player for drawn rarity, drawing from the whole pool"
)

// Log field keys for structured logging
const (
	LogFieldPack   = "pack"
	LogFieldCount  = "count"
	LogFieldRarity = "rarity"
	LogFieldCards  = "cards"
)

// EntityPack is the kind reported for unknown pack names
const EntityPack = "pack"
