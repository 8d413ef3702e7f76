package domain

// Collection is the persisted inventory document: owned counts by base name.
type Collection struct {
	Owned map[string]int `json:"owned"`
}

// Wallet is the persisted currency document.
type Wallet struct {
	Minecoins int `json:"minecoins"`
}

// Profile is the persisted experience document.
type Profile struct {
	XP   int    `json:"xp"`
	Name string `json:"name,omitempty"`
}

// Profile name defaults
const (
	DefaultProfileName   = "Joueur"
	MaxProfileNameLength = 20
)

// DefaultStartingBalance is the balance of a fresh wallet.
const DefaultStartingBalance = 500
