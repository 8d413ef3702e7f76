package catalog

import (
	"sort"
	"strings"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/naming"
)

// Index answers "which card is this name" for the rule checkers. Lookups go
// through the base name, so "Paul Pogba#sbc" and "paul pogba" land on the
// same entry: the best-rated packable player, or a special entry when no
// packable player carries that name.
type Index struct {
	entries  []domain.Player
	best     map[string]domain.Player
	unique   map[string]domain.Player
	byRarity map[string][]domain.Player
	packable []domain.Player
	resolver naming.Resolver
}

// NewIndex builds the index. Packable players win the base-name slot over
// specials; among packables the highest rating wins.
func NewIndex(packable, specials []domain.Player) *Index {
	idx := &Index{
		best:     make(map[string]domain.Player),
		unique:   make(map[string]domain.Player),
		byRarity: make(map[string][]domain.Player),
		resolver: naming.NewResolver(),
	}

	for _, p := range packable {
		p.Rarity = domain.CanonicalRarity(p.Rarity)
		p.Packable = true
		if p.Source == "" {
			p.Source = SourcePack
		}
		idx.entries = append(idx.entries, p)
		idx.packable = append(idx.packable, p)
		idx.byRarity[p.Rarity] = append(idx.byRarity[p.Rarity], p)

		key := naming.Fold(p.Name)
		if cur, ok := idx.best[key]; !ok || p.Rating > cur.Rating {
			idx.best[key] = p
			idx.unique[key] = p
		}
		idx.resolver.Register(p.Name)
	}

	for _, s := range specials {
		s.Rarity = domain.CanonicalRarity(s.Rarity)
		s.Packable = false
		idx.entries = append(idx.entries, s)

		// Variants keep their own display slot
		displayKey := foldFull(s.Name)
		if _, ok := idx.unique[displayKey]; !ok {
			idx.unique[displayKey] = s
		}
		key := naming.Fold(s.Name)
		if _, ok := idx.best[key]; !ok {
			idx.best[key] = s
		}
		idx.resolver.Register(s.Name)
	}

	return idx
}

// foldFull folds a name but keeps its variant tag
func foldFull(name string) string {
	base := naming.Fold(name)
	if tag := variantTag(name); tag != "" {
		return base + domain.VariantSeparator + naming.Fold(tag)
	}
	return base
}

func variantTag(name string) string {
	_, tag, _ := strings.Cut(name, domain.VariantSeparator)
	return strings.TrimSpace(tag)
}

// Lookup returns the entry a card name resolves to
func (i *Index) Lookup(name string) (domain.Player, bool) {
	p, ok := i.best[naming.Fold(name)]
	return p, ok
}

// Resolve maps user input to the canonical base name, ignoring case and accents
func (i *Index) Resolve(input string) (string, bool) {
	return i.resolver.Resolve(input)
}

// HasMatch reports whether any entry named name has at least minRating and
// the given rarity
func (i *Index) HasMatch(name string, minRating int, rarity string) bool {
	key := naming.Fold(name)
	want := domain.CanonicalRarity(rarity)
	for _, p := range i.entries {
		if naming.Fold(p.Name) != key {
			continue
		}
		if p.Rating >= minRating && p.Rarity == want {
			return true
		}
	}
	return false
}

// Packable returns the packable players of one canonical rarity
func (i *Index) Packable(rarity string) []domain.Player {
	return i.byRarity[domain.CanonicalRarity(rarity)]
}

// AllPackable returns every packable player
func (i *Index) AllPackable() []domain.Player {
	return i.packable
}

// Unique returns one entry per display name, best rating first
func (i *Index) Unique() []domain.Player {
	out := make([]domain.Player, 0, len(i.unique))
	for _, p := range i.unique {
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Rating != out[b].Rating {
			return out[a].Rating > out[b].Rating
		}
		return out[a].Name < out[b].Name
	})
	return out
}

// Len returns the number of raw entries
func (i *Index) Len() int {
	return len(i.entries)
}
