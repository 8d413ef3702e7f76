package catalog

import "github.com/osse101/Minefut_Go/internal/domain"

// goldRarePlus is the usual "or rare or better" rarity filter
var goldRarePlus = []string{domain.RarityGoldRare, domain.RarityHero, domain.RarityIcon, domain.RarityOTW}

func squad(minAvg int, rarities ...string) domain.Requirement {
	return domain.Requirement{MinCount: 11, MinAvgRating: minAvg, AllowedRarities: rarities}
}

func pack(name string, count int) domain.PackReward {
	return domain.PackReward{Pack: name, Count: count}
}

// DefaultChallenges is the SBC catalog
func DefaultChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID: "bronze_basic", Name: "Défi Basique",
			Description: "Soumets 3 joueurs, note moyenne ≥ 70. Rareté libre.",
			Requirement: domain.Requirement{MinCount: 3, MinAvgRating: 70},
			Reward:      pack(domain.PackClassic, 3),
		},
		{
			ID: "dolan_world_tour_1", Name: "Dolan - World Tour",
			Description: "11 joueurs, note moyenne ≥ 83. Rareté libre.",
			Requirement: squad(83),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "pogba_halloween_1", Name: "Paul Pogba - Halloween",
			Description: "11 joueurs, note moyenne ≥ 85. Raretés autorisées: Or rare/plus.",
			Requirement: squad(85, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "gold_rare", Name: "Or Rare",
			Description: "Soumets 5 joueurs or rare, note moyenne ≥ 80.",
			Requirement: domain.Requirement{MinCount: 5, MinAvgRating: 80, AllowedRarities: []string{domain.RarityGoldRare}},
			Reward:      pack(domain.PackPremium, 5),
		},
		{
			ID: "elite_heroes", Name: "Héros & Icônes",
			Description: "Soumets 3 joueurs héro/icon, note moyenne ≥ 85.",
			Requirement: domain.Requirement{MinCount: 3, MinAvgRating: 85, AllowedRarities: []string{domain.RarityHero, domain.RarityIcon}},
			Reward:      pack(domain.PackIcon, 3),
		},
		{
			ID: "busquets_eoe_1", Name: "Busquets EOE 1/4",
			Description: "11 joueurs, note moyenne ≥ 78. Rareté libre.",
			Requirement: squad(78),
			Reward:      pack(domain.PackClassic, 2),
		},
		{
			ID: "busquets_eoe_2", Name: "Busquets EOE 2/4",
			Description: "11 joueurs, note moyenne ≥ 82. Or conseillé.",
			Requirement: squad(82, domain.RarityGoldCommon, domain.RarityGoldRare, domain.RarityHero, domain.RarityIcon, domain.RarityOTW),
			Reward:      pack(domain.PackClassic, 3),
		},
		{
			ID: "busquets_eoe_3", Name: "Busquets EOE 3/4",
			Description: "11 joueurs, note moyenne ≥ 84. Raretés autorisées: Or rare/plus.",
			Requirement: squad(84, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "busquets_eoe_4", Name: "Busquets EOE 4/4",
			Description: "11 joueurs, note moyenne ≥ 86. Raretés autorisées: Or rare/plus.",
			Requirement: squad(86, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "alba_eoe_1", Name: "Jordi Alba EOE 1/3",
			Description: "11 joueurs, note moyenne ≥ 80. Rareté libre.",
			Requirement: squad(80),
			Reward:      pack(domain.PackClassic, 2),
		},
		{
			ID: "alba_eoe_2", Name: "Jordi Alba EOE 2/3",
			Description: "11 joueurs, note moyenne ≥ 84. Raretés autorisées: Or rare/plus.",
			Requirement: squad(84, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "alba_eoe_3", Name: "Jordi Alba EOE 3/3",
			Description: "11 joueurs, note moyenne ≥ 86. Raretés autorisées: Or rare/plus.",
			Requirement: squad(86, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "vanbuyten_hero_1", Name: "Van Buyten Héro 1/2",
			Description: "11 joueurs, note moyenne ≥ 83. Raretés autorisées: Or rare/plus.",
			Requirement: squad(83, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "vanbuyten_hero_2", Name: "Van Buyten Héro 2/2",
			Description: "11 joueurs, note moyenne ≥ 85. Raretés autorisées: Or rare/plus.",
			Requirement: squad(85, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "goretzka_fb_1", Name: "Goretzka Flashback 1/2",
			Description: "11 joueurs, note moyenne ≥ 84. Rareté libre.",
			Requirement: squad(84),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "goretzka_fb_2", Name: "Goretzka Flashback 2/2",
			Description: "11 joueurs, note moyenne ≥ 86. Raretés autorisées: Or rare/plus.",
			Requirement: squad(86, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "dzeko_fb_1", Name: "Džeko Flashback 1/2",
			Description: "11 joueurs, note moyenne ≥ 82. Rareté libre.",
			Requirement: squad(82),
			Reward:      pack(domain.PackClassic, 3),
		},
		{
			ID: "dzeko_fb_2", Name: "Džeko Flashback 2/2",
			Description: "11 joueurs, note moyenne ≥ 85. Raretés autorisées: Or rare/plus.",
			Requirement: squad(85, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "shaqiri_fb_1", Name: "Xherdan Shaqiri Flashback 1/2",
			Description: "11 joueurs, note moyenne ≥ 82. Rareté libre.",
			Requirement: squad(82),
			Reward:      pack(domain.PackClassic, 3),
		},
		{
			ID: "shaqiri_fb_2", Name: "Xherdan Shaqiri Flashback 2/2",
			Description: "11 joueurs, note moyenne ≥ 85. Raretés autorisées: Or rare/plus.",
			Requirement: squad(85, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "payet_hero_1", Name: "Dimitri Payet - Héro",
			Description: "11 joueurs, note moyenne ≥ 84. Raretés autorisées: Or rare/plus.",
			Requirement: squad(84, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "zlatan_icon_1", Name: "Zlatan Ibrahimović Icon début 1/5",
			Description: "11 joueurs, note moyenne ≥ 82. Rareté libre.",
			Requirement: squad(82),
			Reward:      pack(domain.PackClassic, 3),
		},
		{
			ID: "zlatan_icon_2", Name: "Zlatan Ibrahimović Icon début 2/5",
			Description: "11 joueurs, note moyenne ≥ 84. Raretés autorisées: Or rare/plus.",
			Requirement: squad(84, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "zlatan_icon_3", Name: "Zlatan Ibrahimović Icon début 3/5",
			Description: "11 joueurs, note moyenne ≥ 85. Raretés autorisées: Or rare/plus.",
			Requirement: squad(85, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 3),
		},
		{
			ID: "zlatan_icon_4", Name: "Zlatan Ibrahimović Icon début 4/5",
			Description: "11 joueurs, note moyenne ≥ 86. Raretés autorisées: Or rare/plus.",
			Requirement: squad(86, goldRarePlus...),
			Reward:      pack(domain.PackPremium, 4),
		},
		{
			ID: "zlatan_icon_5", Name: "Zlatan Ibrahimović Icon début 5/5",
			Description: "11 joueurs, note moyenne ≥ 88. Raretés autorisées: Or rare/plus.",
			Requirement: squad(88, goldRarePlus...),
			Reward:      pack(domain.PackIcon, 3),
		},
	}
}

func bundle(id, name, rarity string, rating int, challenges ...string) domain.Bundle {
	return domain.Bundle{
		ID:         id,
		Challenges: challenges,
		Card:       domain.CardReward{Name: name, Rarity: rarity, Rating: rating, AssetKey: assetKey(rarity, name)},
	}
}

// DefaultBundles groups challenges whose joint completion grants a card
func DefaultBundles() []domain.Bundle {
	return []domain.Bundle{
		bundle("busquets_eoe", "Sergio Busquets", domain.RarityEndOfAnEra, 91,
			"busquets_eoe_1", "busquets_eoe_2", "busquets_eoe_3", "busquets_eoe_4"),
		bundle("alba_eoe", "Jordi Alba", domain.RarityEndOfAnEra, 90,
			"alba_eoe_1", "alba_eoe_2", "alba_eoe_3"),
		bundle("goretzka_fb", "Goretzka", domain.RarityFlashback, 90, "goretzka_fb_1", "goretzka_fb_2"),
		bundle("dzeko_fb", "Džeko", domain.RarityFlashback, 88, "dzeko_fb_1", "dzeko_fb_2"),
		bundle("shaqiri_fb", "Xherdan Shaqiri", domain.RarityFlashback, 82, "shaqiri_fb_1", "shaqiri_fb_2"),
		bundle("vanbuyten_hero", "Van Buyten", domain.RarityHero, 89, "vanbuyten_hero_1", "vanbuyten_hero_2"),
		bundle("payet_hero", "Payet", domain.RarityHero, 85, "payet_hero_1"),
		bundle("zlatan_icon", "Ibrahimović", domain.RarityIcon, 86,
			"zlatan_icon_1", "zlatan_icon_2", "zlatan_icon_3", "zlatan_icon_4", "zlatan_icon_5"),
		bundle("pogba_halloween", "Paul Pogba#sbc", domain.RarityGoldRare, 86, "pogba_halloween_1"),
		bundle("dolan_world_tour", "Dolan", domain.RarityWorldTour, 84, "dolan_world_tour_1"),
	}
}
