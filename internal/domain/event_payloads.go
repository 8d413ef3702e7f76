package domain

// CoinsPayload accompanies wallet events
type CoinsPayload struct {
	Amount  int `json:"amount"`
	Balance int `json:"balance"`
}

// PackOpenedPayload accompanies pack.opened
type PackOpenedPayload struct {
	Pack  string `json:"pack"`
	Price int    `json:"price"`
	Cards []Card `json:"cards"`
}

// CardsPayload accompanies collection events
type CardsPayload struct {
	Names []string `json:"names"`
}

// XPPayload accompanies profile.xp_added
type XPPayload struct {
	Amount int `json:"amount"`
	Total  int `json:"total"`
}

// ChallengeCompletedPayload accompanies sbc.completed
type ChallengeCompletedPayload struct {
	ChallengeID string `json:"challenge_id"`
	FirstTime   bool   `json:"first_time"`
}

// BundleGrantedPayload accompanies sbc.bundle_granted
type BundleGrantedPayload struct {
	BundleID string `json:"bundle_id"`
	Card     Card   `json:"card"`
}

// ClaimPayload accompanies claim events of every loop
type ClaimPayload struct {
	Source string     `json:"source"`
	ID     string     `json:"id"`
	Level  int        `json:"level,omitempty"`
	Reward RewardKind `json:"reward"`
}

// PassActivatedPayload accompanies season_pass.activated
type PassActivatedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}
