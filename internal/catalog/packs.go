package catalog

import "github.com/osse101/Minefut_Go/internal/domain"

func w(rarity string, weight int) domain.RarityWeight {
	return domain.RarityWeight{Rarity: rarity, Weight: weight}
}

// DefaultPacks lists the shop packs in display order
func DefaultPacks() []domain.PackDefinition {
	return []domain.PackDefinition{
		{
			Name: domain.PackClassic, Count: 5, Price: 100,
			Weights: []domain.RarityWeight{
				w(domain.RarityOTW, 1),
				w(domain.RarityIcon, 2),
				w(domain.RarityHero, 8),
				w(domain.RarityGoldRare, 28),
				w(domain.RarityGoldCommon, 61),
			},
		},
		{
			Name: domain.PackPremium, Count: 5, Price: 300,
			Weights: []domain.RarityWeight{
				w(domain.RarityOTW, 2),
				w(domain.RarityIcon, 4),
				w(domain.RarityHero, 14),
				w(domain.RarityGoldRare, 40),
				w(domain.RarityGoldCommon, 40),
			},
		},
		{
			Name: domain.PackIcon, Count: 3, Price: 800,
			Weights: []domain.RarityWeight{
				w(domain.RarityIcon, 60),
				w(domain.RarityHero, 25),
				w(domain.RarityGoldRare, 10),
				w(domain.RarityOTW, 3),
				w(domain.RarityGoldCommon, 2),
			},
		},
	}
}
