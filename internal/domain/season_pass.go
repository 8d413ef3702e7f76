package domain

import "sort"

// Pass identifiers
const (
	PassLaunch    = "launch"
	PassHalloween = "halloween"
	PassRetro     = "retro"
	PassFutmas    = "futmas"
)

// Feature flags unlocked by pass rewards
const (
	FeatureSBC     = "sbc"
	FeatureDefi    = "defi"
	FeatureDraft   = "draft"
	FeatureSBCHero = "sbc_hero"
	FeatureSBCIcon = "sbc_icon"
)

// DefaultFeatures lists the flags present in a fresh document.
var DefaultFeatures = []string{FeatureSBC, FeatureDefi, FeatureDraft, FeatureSBCHero, FeatureSBCIcon}

// XPPerLevel is shared by the global profile level and every pass.
const XPPerLevel = 100

// SeasonPass is a static pass definition.
type SeasonPass struct {
	ID      string `validate:"required"`
	Name    string `validate:"required"`
	Rewards map[int]Reward
}

// Levels returns the reward levels in ascending order.
func (p SeasonPass) Levels() []int {
	levels := make([]int, 0, len(p.Rewards))
	for lvl := range p.Rewards {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// PassState is the persisted season pass document.
type PassState struct {
	Active   string           `json:"active"`
	Claimed  map[string][]int `json:"claimed"`
	Unlocked []string         `json:"unlocked"`
	Features map[string]bool  `json:"features"`
	StartXP  map[string]int   `json:"start_xp"`
	FrozenXP map[string]int   `json:"frozen_xp"`
}

// NewPassState returns the default document: launch active and unlocked.
func NewPassState() PassState {
	s := PassState{
		Active:   PassLaunch,
		Claimed:  make(map[string][]int),
		Unlocked: []string{PassLaunch},
		Features: make(map[string]bool),
		StartXP:  make(map[string]int),
		FrozenXP: make(map[string]int),
	}
	for _, f := range DefaultFeatures {
		s.Features[f] = false
	}
	return s
}

// Normalize repairs missing sections and an active pass that is not unlocked.
func (s *PassState) Normalize() {
	if s.Claimed == nil {
		s.Claimed = make(map[string][]int)
	}
	if len(s.Unlocked) == 0 {
		s.Unlocked = []string{PassLaunch}
	}
	if s.Features == nil {
		s.Features = make(map[string]bool)
	}
	for _, f := range DefaultFeatures {
		if _, ok := s.Features[f]; !ok {
			s.Features[f] = false
		}
	}
	if s.StartXP == nil {
		s.StartXP = make(map[string]int)
	}
	if s.FrozenXP == nil {
		s.FrozenXP = make(map[string]int)
	}
	if s.Active == "" || !s.IsUnlocked(s.Active) {
		s.Active = PassLaunch
	}
}

// IsUnlocked reports whether passID is in the unlocked set.
func (s *PassState) IsUnlocked(passID string) bool {
	for _, id := range s.Unlocked {
		if id == passID {
			return true
		}
	}
	return false
}

// Unlock adds passID to the unlocked set, keeping it sorted.
func (s *PassState) Unlock(passID string) {
	if s.IsUnlocked(passID) {
		return
	}
	s.Unlocked = append(s.Unlocked, passID)
	sort.Strings(s.Unlocked)
}

// IsClaimed reports whether (passID, level) was claimed.
func (s *PassState) IsClaimed(passID string, level int) bool {
	for _, l := range s.Claimed[passID] {
		if l == level {
			return true
		}
	}
	return false
}

// MarkClaimed records (passID, level).
func (s *PassState) MarkClaimed(passID string, level int) {
	if s.IsClaimed(passID, level) {
		return
	}
	levels := append(s.Claimed[passID], level)
	sort.Ints(levels)
	s.Claimed[passID] = levels
}

// LevelProgress is (level, xp inside the level, xp needed for the next one).
type LevelProgress struct {
	Level   int `json:"level"`
	InLevel int `json:"xp_in_level"`
	Needed  int `json:"xp_needed"`
}

// LevelProgressFromXP applies the shared curve: XPPerLevel per level, level >= 1.
func LevelProgressFromXP(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	return LevelProgress{
		Level:   xp/XPPerLevel + 1,
		InLevel: xp % XPPerLevel,
		Needed:  XPPerLevel,
	}
}

// PassInfo is the read model for the pass selector.
type PassInfo struct {
	ID         string
	Name       string
	Unlocked   bool
	Active     bool
	UnlockHint string
}
