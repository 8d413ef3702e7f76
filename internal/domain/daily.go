package domain

// DailyCycleLength is the number of slots in the daily reward calendar.
const DailyCycleLength = 28

// DailySlot is one configured day of the calendar.
type DailySlot struct {
	Day    int    `validate:"gte=1,lte=28"`
	Reward Reward `validate:"required"`
}

// DailyState is the persisted daily reward document.
type DailyState struct {
	LastClaimDate   string `json:"last_claim_date"`
	DayIndex        int    `json:"day_index"`
	CyclesCompleted int    `json:"cycles_completed"`
}

// Normalize clamps values from hand-edited documents.
func (s *DailyState) Normalize() {
	if s.DayIndex < 0 {
		s.DayIndex = 0
	}
	if s.DayIndex > DailyCycleLength {
		s.DayIndex = DailyCycleLength
	}
	if s.CyclesCompleted < 0 {
		s.CyclesCompleted = 0
	}
}
