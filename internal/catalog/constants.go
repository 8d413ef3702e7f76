package catalog

// TagRarity is the validator tag for card rarities
const TagRarity = "rarity"

// Player sources
const (
	SourcePack  = "pack"
	SourceSBC   = "sbc"
	SourceDefi  = "defi"
	SourcePass  = "pass"
	SourceDaily = "daily"
)

// Default unlock hint when no pass reward unlocks the target
const (
	UnlockHintFormat   = "unlocked at level %d of %s"
	UnlockHintFallback = "unlocked through a season pass"
)

// Error context messages
const (
	ErrContextParsePlayers   = "failed to parse player catalog"
	ErrContextInvalidContent = "invalid catalog content"
	ErrMsgDuplicateIDFmt     = "duplicate %s id %q"
	ErrMsgUnknownRefFmt      = "%s %q references unknown %s %q"
	ErrMsgDailySlotsFmt      = "daily calendar has %d slots, want %d"
	ErrMsgEmptyPackRarityFmt = "pack %q draws rarity %q but no packable player has it"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
