package catalog

import (
	"fmt"

	"github.com/osse101/Minefut_Go/internal/domain"
)

// Task groups
const (
	GroupDaily      = "Quotidien"
	GroupWeekly     = "Hebdo"
	GroupEvent      = "Événement"
	GroupHalloween  = "Ultimate Scream"
	GroupLaunch     = "Lancement"
	eventSBCKey     = domain.CounterSBCCompleted
	dailySBCKey     = domain.DailyKeyPrefix + domain.CounterSBCCompleted
	dailyPackKey    = domain.DailyKeyPrefix + domain.CounterPackOpened
	dailyCoinsKey   = domain.DailyKeyPrefix + domain.CounterCoinsSpent
	passLevelLaunch = domain.KeyPrefixPassLevel + domain.PassLaunch
)

func xp(amount int) domain.Reward    { return domain.XPReward{Amount: amount} }
func coins(amount int) domain.Reward { return domain.CoinsReward{Amount: amount} }

func grant(name, rarity string, rating int) *domain.CardReward {
	return &domain.CardReward{Name: name, Rarity: rarity, Rating: rating, AssetKey: assetKey(rarity, name)}
}

// sbcSeries builds an n-step event series where step i needs i SBCs and
// rewards alternate xp/coins. The last step grants card.
func sbcSeries(prefix, title, group string, rewards []domain.Reward, card *domain.CardReward) []domain.Task {
	n := len(rewards)
	tasks := make([]domain.Task, 0, n)
	for i := 1; i <= n; i++ {
		t := domain.Task{
			ID:          fmt.Sprintf("%s_%d", prefix, i),
			Name:        fmt.Sprintf("%s %d/%d", title, i, n),
			Description: fmt.Sprintf("Complète %d SBC.", i),
			EventKey:    eventSBCKey,
			Target:      i,
			Reward:      rewards[i-1],
			Group:       group,
		}
		if i == n && card != nil {
			t.Description = fmt.Sprintf("Complète %d SBC pour obtenir la carte.", i)
			t.GrantCard = card
			t.AssetKey = card.AssetKey
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// DefaultTasks is the Défi catalog
func DefaultTasks() []domain.Task {
	tasks := []domain.Task{
		{ID: "daily_spend_1500", Name: "Dépenser 1500 Minecoins", Description: "Dépense 1500 Minecoins aujourd'hui.",
			EventKey: dailyCoinsKey, Target: 1500, Reward: xp(10), Group: GroupDaily, Daily: true},
		{ID: "daily_complete_1_sbc", Name: "Compléter 1 SBC", Description: "Valide 1 SBC aujourd'hui.",
			EventKey: dailySBCKey, Target: 1, Reward: xp(10), Group: GroupDaily, Daily: true},
		{ID: "daily_open_5_packs", Name: "Ouvrir 5 packs", Description: "Ouvre 5 packs aujourd'hui.",
			EventKey: dailyPackKey, Target: 5, Reward: coins(150), Group: GroupDaily, Daily: true},
		{ID: "weekly_complete_1_sbc", Name: "Compléter 1 SBC", Description: "Valide un défi SBC.",
			EventKey: eventSBCKey, Target: 1, Reward: coins(300), Group: GroupWeekly},
	}

	tasks = append(tasks, sbcSeries("boateng_eoe", "Jérôme Boateng - Fin d'une ère", GroupEvent,
		[]domain.Reward{xp(100), coins(200), xp(150), coins(300), xp(200), coins(400)},
		grant("Jérôme Boateng", domain.RarityEndOfAnEra, 90))...)
	tasks = append(tasks, sbcSeries("juninho_hero", "Juninho - Héro", GroupEvent,
		[]domain.Reward{xp(100), coins(200), xp(150), coins(300), xp(200), coins(400)},
		grant("Juninho", domain.RarityHero, 91))...)
	tasks = append(tasks, sbcSeries("lacazette_flashback", "Lacazette - Flashback", GroupEvent,
		[]domain.Reward{xp(100), coins(200), xp(150), coins(300)},
		grant("Lacazette", domain.RarityFlashback, 90))...)
	tasks = append(tasks, sbcSeries("iniesta_icon_debut", "Iniesta - Icon début", GroupEvent,
		[]domain.Reward{xp(100), coins(200), xp(150), coins(300), xp(200), coins(400), xp(250), coins(500)},
		grant("Iniesta", domain.RarityIcon, 86))...)

	tasks = append(tasks,
		domain.Task{ID: "pogba_halloween_defi_1", Name: "Paul Pogba - Ultimate Scream 1/3",
			Description: "Complète entièrement le SBC de Pogba.",
			EventKey:    domain.KeyPrefixSBCDone + "pogba_halloween_1", Target: 1, Reward: xp(120), Group: GroupHalloween},
		domain.Task{ID: "pogba_halloween_defi_2", Name: "Paul Pogba - Ultimate Scream 2/3",
			Description: "Avoir au moins 1× Paul Pogba (79) dans ta collection.",
			EventKey:    domain.KeyPrefixOwned + "Paul Pogba", Target: 1, Reward: coins(250), Group: GroupHalloween},
		domain.Task{ID: "pogba_halloween_defi_3", Name: "Paul Pogba - Ultimate Scream 3/3",
			Description: "Complète 3 SBC pour obtenir la carte.",
			EventKey:    eventSBCKey, Target: 3, Reward: coins(350), Group: GroupHalloween,
			GrantCard: grant("Paul Pogba#defi", domain.RarityGoldRare, 86)},
		domain.Task{ID: "forsberg_flashback_1", Name: "Emil Forsberg - Flashback 1/2",
			Description: "Complète 1 SBC.",
			EventKey:    eventSBCKey, Target: 1, Reward: xp(120), Group: GroupHalloween},
		domain.Task{ID: "forsberg_flashback_2", Name: "Emil Forsberg - Flashback 2/2",
			Description: "Complète 2 SBC pour obtenir la carte.",
			EventKey:    eventSBCKey, Target: 2, Reward: coins(300), Group: GroupHalloween,
			GrantCard: grant("Emil Forsberg", domain.RarityFlashback, 83)},
		domain.Task{ID: "dembele_ballon_dor_1", Name: "Ousman Dembélé - Ballon d'or",
			Description: "Complète 1 SBC pour obtenir la carte Ballon d'or.",
			EventKey:    eventSBCKey, Target: 1, Reward: xp(150), Group: GroupEvent,
			GrantCard: grant("Ousman Dembele", domain.RarityBallonDor, 90)},

		domain.Task{ID: "tomori_world_tour_1", Name: "Tomori - World Tour 1/4",
			Description: "Atteins le niveau 5 du Pass Lancement.",
			EventKey:    passLevelLaunch, Target: 5, Reward: xp(100), Group: GroupLaunch},
		domain.Task{ID: "tomori_world_tour_2", Name: "Tomori - World Tour 2/4",
			Description: "Atteins le niveau 20 du Pass Lancement.",
			EventKey:    passLevelLaunch, Target: 20, Reward: xp(150), Group: GroupLaunch,
			Predecessor: "tomori_world_tour_1"},
		domain.Task{ID: "tomori_world_tour_3", Name: "Tomori - World Tour 3/4",
			Description: "Complète le SBC de Dolan.",
			EventKey:    domain.KeyPrefixSBCDone + "dolan_world_tour_1", Target: 1, Reward: xp(150), Group: GroupLaunch,
			Predecessor: "tomori_world_tour_2"},
		domain.Task{ID: "tomori_world_tour_4", Name: "Tomori - World Tour 4/4",
			Description: "Avoir au moins 1× Tomori (81, Or rare) dans ta collection et valider pour obtenir la carte 86 (World Tour).",
			EventKey:    domain.KeyPrefixOwnedMin + "Tomori:81:" + domain.RarityGoldRare, Target: 1, Reward: coins(200), Group: GroupLaunch,
			Predecessor: "tomori_world_tour_3",
			GrantCard:   grant("Tomori#world tour", domain.RarityWorldTour, 86)},

		domain.Task{ID: "garcia_foundations_1", Name: "Garcia - Fondations 1/4",
			Description: "Récupère Teun Koopmeiners (Fondation).",
			EventKey:    domain.KeyPrefixOwned + "Teun Koopmeiners", Target: 1, Reward: xp(120), Group: GroupLaunch},
		domain.Task{ID: "garcia_foundations_2", Name: "Garcia - Fondations 2/4",
			Description: "Récupère Matteo Ruggeri (Fondation).",
			EventKey:    domain.KeyPrefixOwned + "Matteo Ruggeri", Target: 1, Reward: coins(201), Group: GroupLaunch,
			Predecessor: "garcia_foundations_1"},
		domain.Task{ID: "garcia_foundations_3", Name: "Garcia - Fondations 3/4",
			Description: "Récupère Josip Stanišić (Fondation).",
			EventKey:    domain.KeyPrefixOwned + "Josip Stanišić", Target: 1, Reward: xp(150), Group: GroupLaunch,
			Predecessor: "garcia_foundations_2"},
		domain.Task{ID: "garcia_foundations_4", Name: "Garcia - Fondations 4/4",
			Description: "Récupère Wataru Endo (Fondation) et valide pour obtenir Garcia (84, Squad fondation).",
			EventKey:    domain.KeyPrefixOwned + "Wataru Endo", Target: 1, Reward: coins(300), Group: GroupLaunch,
			Predecessor: "garcia_foundations_3",
			GrantCard:   grant("Garcia", domain.RarityFoundation, 84)},
	)

	for i := range tasks {
		if tasks[i].AssetKey == "" {
			tasks[i].AssetKey = "defi/" + tasks[i].ID
		}
	}
	return tasks
}
