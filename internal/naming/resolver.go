package naming

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/Minefut_Go/internal/domain"
)

// Fold reduces a card name to its comparison key: base name (variant suffix
// dropped), diacritics removed, case folded and inner whitespace collapsed.
// "Josip Stanišić" and "josip  stanisic#sbc" fold to the same key.
func Fold(name string) string {
	base := domain.BaseName(name)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, base)
	if err != nil {
		stripped = base
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// Equal reports whether two card names designate the same player
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// DisplayRarity title-cases a canonical rarity for presentation ("or rare" -> "Or Rare")
func DisplayRarity(rarity string) string {
	return cases.Title(language.French).String(rarity)
}

// DisplayCard formats a card as "<name> (<Rarity>)"
func DisplayCard(card domain.Card) string {
	return fmt.Sprintf(DisplayFormatTemplate, card.Name, DisplayRarity(card.Rarity))
}

// Resolver maps user-typed card names to the canonical names the catalog and
// collection use
type Resolver interface {
	// Register adds a canonical name
	Register(name string)

	// Resolve returns the canonical name matching input, ignoring case,
	// accents and variant suffixes
	Resolve(input string) (canonical string, ok bool)

	// Names returns the number of registered names
	Names() int
}

type resolver struct {
	mu     sync.RWMutex
	byFold map[string]string
}

// NewResolver creates a resolver preloaded with names
func NewResolver(names ...string) Resolver {
	r := &resolver{byFold: make(map[string]string, len(names))}
	for _, name := range names {
		r.Register(name)
	}
	return r
}

// Register keeps the first canonical spelling registered for a folded key
func (r *resolver) Register(name string) {
	base := domain.BaseName(name)
	if base == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := Fold(base)
	if _, exists := r.byFold[key]; !exists {
		r.byFold[key] = base
	}
}

func (r *resolver) Resolve(input string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, ok := r.byFold[Fold(input)]
	return canonical, ok
}

func (r *resolver) Names() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFold)
}
