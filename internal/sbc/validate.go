package sbc

import (
	"fmt"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/domain"
)

// validateSelection applies the requirement checks in priority order: squad
// size, unknown players, average rating, then rarities.
func validateSelection(players *catalog.Index, selection []string, req domain.Requirement) error {
	if len(selection) < req.MinCount {
		return domain.NewValidationError(domain.ReasonIncompleteSelection, fmt.Sprintf(DetailCountFmt, len(selection), req.MinCount))
	}

	sum := 0
	rarities := make([]string, 0, len(selection))
	for _, name := range selection {
		p, ok := players.Lookup(name)
		if !ok {
			return &domain.ValidationError{Reason: fmt.Sprintf(ReasonDetailFmt, domain.ReasonUnknownPlayer, name)}
		}
		sum += p.Rating
		rarities = append(rarities, domain.CanonicalRarity(p.Rarity))
	}

	if avg := roundedAverage(sum, len(selection)); avg < req.MinAvgRating {
		return domain.NewValidationError(domain.ReasonRatingTooLow, fmt.Sprintf(DetailAverageFmt, avg, req.MinAvgRating))
	}

	if len(req.AllowedRarities) > 0 {
		allowed := make(map[string]bool, len(req.AllowedRarities))
		for _, r := range req.AllowedRarities {
			allowed[domain.CanonicalRarity(r)] = true
		}
		for _, r := range rarities {
			if !allowed[r] {
				return &domain.ValidationError{Reason: fmt.Sprintf(ReasonDetailFmt, domain.ReasonDisallowedRarity, r)}
			}
		}
	}
	return nil
}

// roundedAverage is the integer average rounded half up
func roundedAverage(sum, n int) int {
	if n <= 0 {
		return 0
	}
	return (2*sum + n) / (2 * n)
}

// canonicalNames maps each selected name to the collection key of the
// catalog entry it resolves to, so "mbappe" consumes an owned "Mbappé".
func canonicalNames(players *catalog.Index, selection []string) []string {
	out := make([]string, 0, len(selection))
	for _, name := range selection {
		if p, ok := players.Lookup(name); ok {
			out = append(out, domain.BaseName(p.Name))
			continue
		}
		out = append(out, name)
	}
	return out
}
