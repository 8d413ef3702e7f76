package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Requirement is the squad rule a challenge checks.
type Requirement struct {
	MinCount        int      `validate:"gte=1"`
	MinAvgRating    int      `validate:"gte=0,lte=99"`
	AllowedRarities []string `validate:"omitempty,dive,rarity"`
}

// PackReward names a pack and how many cards it holds.
type PackReward struct {
	Pack  string `validate:"required"`
	Count int    `validate:"gte=1"`
}

// Challenge is an immutable SBC definition.
type Challenge struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	Requirement Requirement
	Reward      PackReward
}

// Bundle is a group of challenges whose joint completion grants one card.
type Bundle struct {
	ID         string   `validate:"required"`
	Challenges []string `validate:"min=1,dive,required"`
	Card       CardReward
}

// GrantedKey is the persisted flag name for the bundle.
func (b Bundle) GrantedKey() string {
	return b.ID + bundleGrantedSuffix
}

const bundleGrantedSuffix = "_granted"

// ChallengeProgress is the persisted SBC completion set.
// On disk it is {"completed": [...], "<bundle>_granted": true, ...}.
type ChallengeProgress struct {
	Completed []string
	Granted   map[string]bool
}

// IsCompleted reports whether the challenge id is in the completion set.
func (p *ChallengeProgress) IsCompleted(id string) bool {
	for _, c := range p.Completed {
		if c == id {
			return true
		}
	}
	return false
}

// MarkCompleted adds id to the set. It returns false when already present.
func (p *ChallengeProgress) MarkCompleted(id string) bool {
	if p.IsCompleted(id) {
		return false
	}
	p.Completed = append(p.Completed, id)
	sort.Strings(p.Completed)
	return true
}

// MarshalJSON flattens bundle flags next to the completed list.
func (p ChallengeProgress) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Granted)+1)
	completed := p.Completed
	if completed == nil {
		completed = []string{}
	}
	out["completed"] = completed
	for bundleID, granted := range p.Granted {
		out[bundleID+bundleGrantedSuffix] = granted
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat document layout.
func (p *ChallengeProgress) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Completed = nil
	p.Granted = make(map[string]bool)
	for key, value := range raw {
		switch {
		case key == "completed":
			if err := json.Unmarshal(value, &p.Completed); err != nil {
				return err
			}
		case strings.HasSuffix(key, bundleGrantedSuffix):
			var granted bool
			if err := json.Unmarshal(value, &granted); err != nil {
				return err
			}
			p.Granted[strings.TrimSuffix(key, bundleGrantedSuffix)] = granted
		}
	}
	return nil
}
