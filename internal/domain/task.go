package domain

import "strings"

// DailyKeyPrefix marks an event key whose progress is scoped to the daily cycle.
const DailyKeyPrefix = "daily:"

// Event keys with these prefixes are computed from other ledgers on read
// instead of being counted.
const (
	KeyPrefixOwned     = "owned:"     // owned:<name>
	KeyPrefixOwnedMin  = "owned_min:" // owned_min:<name>:<rating>:<rarity>
	KeyPrefixPassLevel = "pass_level:"
	KeyPrefixSBCDone   = "sbc_done:"
)

// Task is an immutable Défi definition.
type Task struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	EventKey    string `validate:"required"`
	Target      int    `validate:"gte=1"`
	Reward      Reward `validate:"required"`
	Group       string `validate:"required"`
	// Daily tasks are claimable once per cycle instead of once ever.
	Daily       bool
	Predecessor string
	GrantCard   *CardReward
	AssetKey    string
}

// IsDaily reports whether claims are scoped to the current cycle.
func (t Task) IsDaily() bool {
	return t.Daily || IsDailyKey(t.EventKey)
}

// IsDailyKey reports whether an event key uses the daily namespace.
func IsDailyKey(key string) bool {
	return strings.HasPrefix(key, DailyKeyPrefix)
}

// BaseEventKey strips the daily namespace from a key.
func BaseEventKey(key string) string {
	return strings.TrimPrefix(key, DailyKeyPrefix)
}

// TaskProgress is the persisted Défi document.
type TaskProgress struct {
	Events  map[string]int  `json:"events"`
	Claimed map[string]bool `json:"claimed"`
	Daily   DailyTaskState  `json:"daily"`
}

// DailyTaskState holds the per-cycle baselines and claims.
type DailyTaskState struct {
	CycleKey   string          `json:"cycle_key"`
	Baseline   map[string]int  `json:"baseline"`
	ClaimedIDs map[string]bool `json:"claimed_ids"`
}

// NewTaskProgress returns the default empty document.
func NewTaskProgress() TaskProgress {
	return TaskProgress{
		Events:  make(map[string]int),
		Claimed: make(map[string]bool),
		Daily: DailyTaskState{
			Baseline:   make(map[string]int),
			ClaimedIDs: make(map[string]bool),
		},
	}
}

// Normalize fills nil maps left by older or hand-edited documents.
func (p *TaskProgress) Normalize() {
	if p.Events == nil {
		p.Events = make(map[string]int)
	}
	if p.Claimed == nil {
		p.Claimed = make(map[string]bool)
	}
	if p.Daily.Baseline == nil {
		p.Daily.Baseline = make(map[string]int)
	}
	if p.Daily.ClaimedIDs == nil {
		p.Daily.ClaimedIDs = make(map[string]bool)
	}
}

// TaskStatus is the read model shown next to a task.
type TaskStatus struct {
	Task      Task
	Progress  int
	Claimed   bool
	Claimable bool
}
