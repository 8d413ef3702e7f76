package catalog

import "github.com/osse101/Minefut_Go/internal/domain"

// DefaultDailySlots is the 28-day reward calendar. Unlisted days pay 10 XP.
func DefaultDailySlots() []domain.DailySlot {
	rewards := make([]domain.Reward, domain.DailyCycleLength)
	for i := range rewards {
		rewards[i] = xp(10)
	}
	set := func(r domain.Reward, days ...int) {
		for _, d := range days {
			rewards[d-1] = r
		}
	}

	set(xp(25), 1, 8, 15, 22)
	set(xp(50), 4, 11, 18, 25)
	set(coins(250), 2, 9, 16, 23)
	set(coins(500), 6, 13, 20, 27)
	set(card("Teun Koopmeiners", domain.RarityFoundation, 84), 7)
	set(card("Matteo Ruggeri", domain.RarityFoundation, 84), 14)
	set(card("Josip Stanisic", domain.RarityFoundation, 84), 21)
	set(card("Wataru Endo", domain.RarityFoundation, 84), 28)

	slots := make([]domain.DailySlot, 0, domain.DailyCycleLength)
	for i, r := range rewards {
		slots = append(slots, domain.DailySlot{Day: i + 1, Reward: r})
	}
	return slots
}
