// Package lootbox draws the cards of a pack from weighted rarity tables.
package lootbox

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// PackSource resolves pack definitions by name
type PackSource interface {
	Pack(name string) (domain.PackDefinition, bool)
}

// PlayerSource lists the players a pack can draw
type PlayerSource interface {
	Packable(rarity string) []domain.Player
	AllPackable() []domain.Player
}

// Service generates pack contents
type Service interface {
	// Generate draws count cards from the named pack. A count <= 0 uses the
	// pack's own size.
	Generate(ctx context.Context, pack string, count int) ([]domain.Card, error)
}

// flatTable is a pack's rarity table with cumulative weights for a binary
// search draw.
type flatTable struct {
	rarities    []string
	cumulWeight []int
	totalWeight int
}

type service struct {
	packs   PackSource
	players PlayerSource

	mu     sync.Mutex
	rnd    *rand.Rand
	tables map[string]*flatTable
}

// Option configures the generator
type Option func(*service)

// WithRand injects the random source, for deterministic tests
func WithRand(r *rand.Rand) Option {
	return func(s *service) {
		s.rnd = r
	}
}

// NewService creates a new pack generator
func NewService(packs PackSource, players PlayerSource, opts ...Option) Service {
	s := &service{
		packs:   packs,
		players: players,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		tables:  make(map[string]*flatTable),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func flatten(def domain.PackDefinition) *flatTable {
	t := &flatTable{}
	for _, w := range def.Weights {
		if w.Weight <= 0 {
			continue
		}
		t.totalWeight += w.Weight
		t.rarities = append(t.rarities, domain.CanonicalRarity(w.Rarity))
		t.cumulWeight = append(t.cumulWeight, t.totalWeight)
	}
	return t
}

func (s *service) Generate(ctx context.Context, pack string, count int) ([]domain.Card, error) {
	log := logger.FromContext(ctx)

	def, ok := s.packs.Pack(pack)
	if !ok {
		return nil, domain.UnknownEntity(EntityPack, pack)
	}
	if count <= 0 {
		count = def.Count
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[def.Name]
	if !ok {
		table = flatten(def)
		s.tables[def.Name] = table
	}

	cards := make([]domain.Card, 0, count)
	for i := 0; i < count; i++ {
		rarity := s.drawRarity(table)
		pool := s.players.Packable(rarity)
		if len(pool) == 0 {
			log.Warn(LogMsgRarityPoolEmpty, LogFieldPack, def.Name, LogFieldRarity, rarity)
			pool = s.players.AllPackable()
		}
		if len(pool) == 0 {
			return nil, fmt.Errorf(ErrMsgEmptyPoolFmt, def.Name, rarity)
		}
		p := pool[s.rnd.IntN(len(pool))]
		cards = append(cards, domain.Card{Name: p.Name, Rarity: p.Rarity, Rating: p.Rating, AssetKey: p.AssetKey})
	}

	log.Debug(LogMsgPackGenerated, LogFieldPack, def.Name, LogFieldCount, len(cards))
	return cards, nil
}

// drawRarity picks a rarity with probability weight/total. Caller holds mu.
func (s *service) drawRarity(t *flatTable) string {
	if t.totalWeight == 0 {
		return domain.RarityGoldCommon
	}
	roll := s.rnd.IntN(t.totalWeight)
	idx := sort.Search(len(t.cumulWeight), func(i int) bool {
		return t.cumulWeight[i] > roll
	})
	return t.rarities[idx]
}
