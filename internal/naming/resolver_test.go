package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Minefut_Go/internal/domain"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Wirtz", "wirtz"},
		{"accents", "Josip Stanišić", "josip stanisic"},
		{"variant suffix", "Paul Pogba#sbc", "paul pogba"},
		{"caron", "Džeko", "dzeko"},
		{"extra whitespace", "  Heung   Min Son ", "heung min son"},
		{"cedilla and acute", "João Neves", "joao neves"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Josip Stanisic", "Josip Stanišić"))
	assert.True(t, Equal("RIBÉRY", "ribery"))
	assert.False(t, Equal("Son", "Heung Min Son"))
}

func TestResolver(t *testing.T) {
	r := NewResolver("Džeko", "Paul Pogba#pass", "Josip Stanišić", "")

	tests := []struct {
		input  string
		want   string
		wantOk bool
	}{
		{"dzeko", "Džeko", true},
		{"DŽEKO", "Džeko", true},
		{"paul pogba", "Paul Pogba", true},
		{"Josip Stanisic", "Josip Stanišić", true},
		{"Mbappé", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 3, r.Names())
}

func TestResolver_FirstSpellingWins(t *testing.T) {
	r := NewResolver("Josip Stanišić")
	r.Register("Josip Stanisic")

	got, ok := r.Resolve("josip stanisic")
	assert.True(t, ok)
	assert.Equal(t, "Josip Stanišić", got)
}

func TestDisplayCard(t *testing.T) {
	card := domain.Card{Name: "Dolan", Rarity: domain.RarityWorldTour, Rating: 84}
	assert.Equal(t, "Dolan (World Tour)", DisplayCard(card))
	assert.Equal(t, "Or Rare", DisplayRarity(domain.RarityGoldRare))
}

func BenchmarkFold(b *testing.B) {
	names := []string{"Josip Stanišić", "Paul Pogba#sbc", "  Heung   Min Son ", "Wirtz"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Fold(names[i%len(names)])
	}
}
