package domain

// Shop pack identifiers
const (
	PackClassic = "Pack Classique"
	PackPremium = "Pack Premium"
	PackIcon    = "Pack Icône"
)

// PackOpenXP is awarded for every paid pack opened in the shop.
const PackOpenXP = 10

// RarityWeight is one row of a pack's rarity table.
type RarityWeight struct {
	Rarity string `validate:"required,rarity"`
	Weight int    `validate:"gte=1"`
}

// PackDefinition describes a pack: what the shop charges and how its cards
// are drawn.
type PackDefinition struct {
	Name    string         `validate:"required"`
	Count   int            `validate:"gte=1"`
	Price   int            `validate:"gte=0"`
	Weights []RarityWeight `validate:"min=1,dive"`
}

// TotalWeight sums the rarity weights.
func (p PackDefinition) TotalWeight() int {
	total := 0
	for _, w := range p.Weights {
		total += w.Weight
	}
	return total
}

// PackOpening is the outcome of a shop purchase.
type PackOpening struct {
	Pack    string `json:"pack"`
	Price   int    `json:"price"`
	Cards   []Card `json:"cards"`
	Balance int    `json:"balance"`
	XP      int    `json:"xp"`
}
