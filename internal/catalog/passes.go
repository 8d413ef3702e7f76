package catalog

import "github.com/osse101/Minefut_Go/internal/domain"

func card(name, rarity string, rating int) domain.Reward {
	return domain.CardReward{Name: name, Rarity: rarity, Rating: rating, AssetKey: assetKey(rarity, name)}
}

func unlockFeature(feature string) domain.Reward { return domain.UnlockFeatureReward{Feature: feature} }
func unlockPass(passID string) domain.Reward     { return domain.UnlockPassReward{PassID: passID} }

// PassUnlockLevel is the level whose reward unlocks the next season
const PassUnlockLevel = 41

func launchRewards() map[int]domain.Reward {
	r := map[int]domain.Reward{
		1:  unlockFeature(domain.FeatureDefi),
		2:  unlockFeature(domain.FeatureDraft),
		3:  unlockFeature(domain.FeatureSBC),
		4:  coins(200),
		5:  card("Carney Chukwuemeka", domain.RarityGoldRare, 84),
		6:  coins(250),
		7:  xp(200),
		8:  coins(300),
		9:  xp(250),
		10: card("Diego Chará", domain.RarityGoldRare, 83),
	}
	// 11-40 alternate xp/coins with a growing amount
	for lvl := 11; lvl <= 40; lvl++ {
		if lvl%2 == 1 {
			r[lvl] = xp(200 + (lvl-11)*20)
		} else {
			r[lvl] = coins(500 + (lvl-10)*50)
		}
	}
	r[15] = card("Jakub Kamiński", domain.RarityGoldRare, 83)
	r[20] = card("James Ward-Prowse", domain.RarityGoldRare, 84)
	r[25] = card("Ricardo Quaresma", domain.RarityHero, 85)
	r[26] = unlockFeature(domain.FeatureSBCHero)
	r[30] = card("João Neves", domain.RarityGoldRare, 86)
	r[35] = card("Cha Bum Kun", domain.RarityIcon, 86)
	r[36] = unlockFeature(domain.FeatureSBCIcon)
	r[40] = card("Heung Min Son", domain.RarityGoldRare, 88)
	r[PassUnlockLevel] = unlockPass(domain.PassHalloween)
	return r
}

func halloweenRewards() map[int]domain.Reward {
	return map[int]domain.Reward{
		1:               xp(50),
		2:               coins(200),
		3:               xp(100),
		4:               coins(250),
		5:               card("Guéla Doué", domain.RarityGoldRare, 84),
		6:               xp(150),
		7:               coins(300),
		8:               xp(150),
		9:               coins(400),
		10:              card("Paul Pogba#pass", domain.RarityGoldRare, 86),
		11:              xp(200),
		12:              coins(550),
		13:              xp(250),
		14:              coins(600),
		15:              card("Peter Crouch", domain.RarityHero, 87),
		16:              coins(650),
		17:              xp(350),
		18:              coins(700),
		19:              xp(400),
		20:              card("Xabi Alonso", domain.RarityIcon, 88),
		21:              xp(450),
		22:              coins(800),
		23:              xp(500),
		24:              coins(850),
		25:              card("Bryan Mbeumo", domain.RarityGoldRare, 87),
		26:              coins(900),
		27:              xp(600),
		28:              coins(950),
		29:              xp(650),
		30:              card("Ribéry", domain.RarityIcon, 89),
		PassUnlockLevel: unlockPass(domain.PassRetro),
	}
}

func retroRewards() map[int]domain.Reward {
	r := make(map[int]domain.Reward, PassUnlockLevel)
	for lvl := 1; lvl <= 40; lvl++ {
		if lvl%2 == 1 {
			r[lvl] = xp(200 + lvl*10)
		} else {
			r[lvl] = coins(500 + lvl*20)
		}
	}
	r[PassUnlockLevel] = unlockPass(domain.PassFutmas)
	return r
}

// DefaultPasses lists the seasons in release order
func DefaultPasses() []domain.SeasonPass {
	return []domain.SeasonPass{
		{ID: domain.PassLaunch, Name: "Saison 1 : Lancement", Rewards: launchRewards()},
		{ID: domain.PassHalloween, Name: "Saison 2 : Ultimate Scream", Rewards: halloweenRewards()},
		{ID: domain.PassRetro, Name: "Saison 3 : Un bon en arrière", Rewards: retroRewards()},
		{ID: domain.PassFutmas, Name: "Saison 4 : Futmas", Rewards: map[int]domain.Reward{}},
	}
}
