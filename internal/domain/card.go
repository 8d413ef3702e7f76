package domain

import "strings"

// Canonical rarity labels
const (
	RarityGoldRare    = "or rare"
	RarityGoldCommon  = "or non rare"
	RarityIcon        = "icon"
	RarityHero        = "hero"
	RarityOTW         = "otw"
	RarityWorldTour   = "world tour"
	RarityEndOfAnEra  = "fin d'une ère"
	RarityFlashback   = "flashback"
	RarityFoundation  = "squad fondation"
	RarityBallonDor   = "ballon d'or"
	RarityUltimateRun = "ultimate scream"
)

// KnownRarities lists every canonical rarity the catalogs may use
var KnownRarities = []string{
	RarityGoldRare, RarityGoldCommon, RarityIcon, RarityHero, RarityOTW,
	RarityWorldTour, RarityEndOfAnEra, RarityFlashback, RarityFoundation,
	RarityBallonDor, RarityUltimateRun,
}

// IsKnownRarity reports whether r canonicalizes to a known label
func IsKnownRarity(r string) bool {
	c := CanonicalRarity(r)
	for _, known := range KnownRarities {
		if c == known {
			return true
		}
	}
	return false
}

// VariantSeparator splits a catalog name from its variant tag ("Paul Pogba#sbc").
const VariantSeparator = "#"

// Player is a catalog entry: the card a name resolves to.
type Player struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Rating   int    `yaml:"rating" json:"rating" validate:"gte=0,lte=99"`
	Rarity   string `yaml:"rarity" json:"rarity" validate:"required,rarity"`
	AssetKey string `yaml:"asset,omitempty" json:"asset,omitempty"`
	Packable bool   `yaml:"-" json:"packable"`
	Source   string `yaml:"-" json:"source,omitempty"`
}

// Card is a card handed to the player (pack content or special grant).
type Card struct {
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	Rating   int    `json:"rating"`
	AssetKey string `json:"asset,omitempty"`
}

// BaseName strips the variant suffix and surrounding spaces from a card name.
func BaseName(name string) string {
	base, _, _ := strings.Cut(name, VariantSeparator)
	return strings.TrimSpace(base)
}

// CanonicalRarity maps the many spellings found in content to one label.
func CanonicalRarity(r string) string {
	rl := strings.ToLower(strings.TrimSpace(r))
	switch rl {
	case "or rare", "or_rare", "gold rare", "gold_rare", "rare", "rare gold", "rare_gold":
		return RarityGoldRare
	case "or non rare", "or_non_rare", "gold", "gold common", "gold_common", "commun", "common", "or commun", "common_gold":
		return RarityGoldCommon
	case "icon", "icons", "legend", "legendary", "legendaire", "légendaire":
		return RarityIcon
	case "hero", "heros", "epic", "epique", "épic":
		return RarityHero
	case "otw", "ones_to_watch", "ones to watch":
		return RarityOTW
	}
	return rl
}
