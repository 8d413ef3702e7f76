package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/naming"
)

//go:embed players.yaml
var playersYAML []byte

// playersFile is the layout of players.yaml
type playersFile struct {
	Players []domain.Player `yaml:"players" validate:"min=1,dive"`
}

// Content is the static game content apart from the player list
type Content struct {
	Challenges []domain.Challenge
	Bundles    []domain.Bundle
	Tasks      []domain.Task
	Passes     []domain.SeasonPass
	DailySlots []domain.DailySlot
	Packs      []domain.PackDefinition
}

// DefaultContent returns the shipped content
func DefaultContent() Content {
	return Content{
		Challenges: DefaultChallenges(),
		Bundles:    DefaultBundles(),
		Tasks:      DefaultTasks(),
		Passes:     DefaultPasses(),
		DailySlots: DefaultDailySlots(),
		Packs:      DefaultPacks(),
	}
}

// Catalog is the validated, read-only content every engine reads from.
// It never changes after construction and is safe for concurrent use.
type Catalog struct {
	players    *Index
	content    Content
	challenges map[string]domain.Challenge
	bundlesFor map[string][]domain.Bundle
	tasks      map[string]domain.Task
	passes     map[string]domain.SeasonPass
	packs      map[string]domain.PackDefinition
}

// Load parses the embedded player list and validates it with the shipped
// content.
func Load() (*Catalog, error) {
	players, err := ParsePlayers(playersYAML)
	if err != nil {
		return nil, err
	}
	return New(players, DefaultContent())
}

// ParsePlayers decodes and validates a players.yaml document
func ParsePlayers(data []byte) ([]domain.Player, error) {
	var file playersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParsePlayers, err)
	}
	if err := NewValidator().ValidateStruct(file); err != nil {
		return nil, fmt.Errorf("%s: %s", ErrContextParsePlayers, FormatValidationError(err))
	}
	return file.Players, nil
}

// New validates content against the packable players and builds the catalog.
func New(packable []domain.Player, content Content) (*Catalog, error) {
	if err := validateContent(packable, content); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidContent, err)
	}

	c := &Catalog{
		players:    NewIndex(packable, specialPlayers(content)),
		content:    content,
		challenges: make(map[string]domain.Challenge, len(content.Challenges)),
		bundlesFor: make(map[string][]domain.Bundle),
		tasks:      make(map[string]domain.Task, len(content.Tasks)),
		passes:     make(map[string]domain.SeasonPass, len(content.Passes)),
		packs:      make(map[string]domain.PackDefinition, len(content.Packs)),
	}
	for _, ch := range content.Challenges {
		c.challenges[ch.ID] = ch
	}
	for _, b := range content.Bundles {
		for _, id := range b.Challenges {
			c.bundlesFor[id] = append(c.bundlesFor[id], b)
		}
	}
	for _, t := range content.Tasks {
		c.tasks[t.ID] = t
	}
	for _, p := range content.Passes {
		c.passes[p.ID] = p
	}
	for _, p := range content.Packs {
		c.packs[p.Name] = p
	}
	return c, nil
}

func validateContent(packable []domain.Player, content Content) error {
	v := NewValidator()
	var errs []error

	check := func(what string, s interface{}) {
		if err := v.ValidateStruct(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s", what, FormatValidationError(err)))
		}
	}
	unique := func(kind string, seen map[string]bool, id string) {
		if seen[id] {
			errs = append(errs, fmt.Errorf(ErrMsgDuplicateIDFmt, kind, id))
		}
		seen[id] = true
	}

	packs := make(map[string]bool)
	for _, p := range content.Packs {
		check("pack "+p.Name, p)
		unique("pack", packs, p.Name)
	}
	rarities := make(map[string]bool)
	for _, p := range packable {
		rarities[domain.CanonicalRarity(p.Rarity)] = true
	}
	for _, p := range content.Packs {
		for _, wt := range p.Weights {
			if !rarities[domain.CanonicalRarity(wt.Rarity)] {
				errs = append(errs, fmt.Errorf(ErrMsgEmptyPackRarityFmt, p.Name, wt.Rarity))
			}
		}
	}

	challenges := make(map[string]bool)
	for _, ch := range content.Challenges {
		check("challenge "+ch.ID, ch)
		unique("challenge", challenges, ch.ID)
		if !packs[ch.Reward.Pack] {
			errs = append(errs, fmt.Errorf(ErrMsgUnknownRefFmt, "challenge", ch.ID, "pack", ch.Reward.Pack))
		}
	}

	bundles := make(map[string]bool)
	for _, b := range content.Bundles {
		check("bundle "+b.ID, b)
		unique("bundle", bundles, b.ID)
		for _, id := range b.Challenges {
			if !challenges[id] {
				errs = append(errs, fmt.Errorf(ErrMsgUnknownRefFmt, "bundle", b.ID, "challenge", id))
			}
		}
	}

	tasks := make(map[string]bool)
	for _, t := range content.Tasks {
		check("task "+t.ID, t)
		unique("task", tasks, t.ID)
	}
	for _, t := range content.Tasks {
		if t.Predecessor != "" && !tasks[t.Predecessor] {
			errs = append(errs, fmt.Errorf(ErrMsgUnknownRefFmt, "task", t.ID, "task", t.Predecessor))
		}
	}

	passes := make(map[string]bool)
	for _, p := range content.Passes {
		check("pass "+p.ID, p)
		unique("pass", passes, p.ID)
	}
	for _, p := range content.Passes {
		for _, lvl := range p.Levels() {
			if u, ok := p.Rewards[lvl].(domain.UnlockPassReward); ok && !passes[u.PassID] {
				errs = append(errs, fmt.Errorf(ErrMsgUnknownRefFmt, "pass", p.ID, "pass", u.PassID))
			}
		}
	}

	if len(content.DailySlots) != domain.DailyCycleLength {
		errs = append(errs, fmt.Errorf(ErrMsgDailySlotsFmt, len(content.DailySlots), domain.DailyCycleLength))
	}
	for i, slot := range content.DailySlots {
		check(fmt.Sprintf("daily slot %d", i+1), slot)
		if slot.Day != i+1 {
			errs = append(errs, fmt.Errorf("daily slot %d has day %d", i+1, slot.Day))
		}
	}

	return errors.Join(errs...)
}

// specialPlayers collects the cards content can hand out outside of packs
func specialPlayers(content Content) []domain.Player {
	var out []domain.Player
	add := func(r domain.CardReward, source string) {
		out = append(out, domain.Player{
			Name:     r.Name,
			Rating:   r.Rating,
			Rarity:   r.Rarity,
			AssetKey: r.AssetKey,
			Source:   source,
		})
	}

	for _, b := range content.Bundles {
		add(b.Card, SourceSBC)
	}
	for _, t := range content.Tasks {
		if t.GrantCard != nil {
			add(*t.GrantCard, SourceDefi)
		}
	}
	for _, p := range content.Passes {
		for _, lvl := range p.Levels() {
			if r, ok := p.Rewards[lvl].(domain.CardReward); ok {
				add(r, SourcePass)
			}
		}
	}
	for _, slot := range content.DailySlots {
		if r, ok := slot.Reward.(domain.CardReward); ok {
			add(r, SourceDaily)
		}
	}
	return out
}

// assetKey derives the logical art key of a card, e.g. "cards/hero/juninho"
func assetKey(rarity, name string) string {
	slug := func(s string) string {
		s = strings.ReplaceAll(naming.Fold(s), "'", "")
		return strings.ReplaceAll(s, " ", "_")
	}
	return "cards/" + slug(domain.CanonicalRarity(rarity)) + "/" + slug(name)
}

// Players returns the player index
func (c *Catalog) Players() *Index {
	return c.players
}

// Challenges returns the SBC definitions in display order
func (c *Catalog) Challenges() []domain.Challenge {
	return c.content.Challenges
}

// Challenge returns the definition for id
func (c *Catalog) Challenge(id string) (domain.Challenge, bool) {
	ch, ok := c.challenges[id]
	return ch, ok
}

// Bundles returns every bundle
func (c *Catalog) Bundles() []domain.Bundle {
	return c.content.Bundles
}

// BundlesFor returns the bundles that contain challengeID
func (c *Catalog) BundlesFor(challengeID string) []domain.Bundle {
	return c.bundlesFor[challengeID]
}

// Tasks returns the Défi definitions in display order
func (c *Catalog) Tasks() []domain.Task {
	return c.content.Tasks
}

// Task returns the definition for id
func (c *Catalog) Task(id string) (domain.Task, bool) {
	t, ok := c.tasks[id]
	return t, ok
}

// TaskGroups returns the distinct task groups, sorted
func (c *Catalog) TaskGroups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, t := range c.content.Tasks {
		if !seen[t.Group] {
			seen[t.Group] = true
			groups = append(groups, t.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// Passes returns the season passes in release order
func (c *Catalog) Passes() []domain.SeasonPass {
	return c.content.Passes
}

// Pass returns the definition for id
func (c *Catalog) Pass(id string) (domain.SeasonPass, bool) {
	p, ok := c.passes[id]
	return p, ok
}

// UnlockHint explains how a locked pass is unlocked
func (c *Catalog) UnlockHint(passID string) string {
	for _, src := range c.content.Passes {
		for _, lvl := range src.Levels() {
			if u, ok := src.Rewards[lvl].(domain.UnlockPassReward); ok && u.PassID == passID {
				return fmt.Sprintf(UnlockHintFormat, lvl, src.Name)
			}
		}
	}
	return UnlockHintFallback
}

// DailySlots returns the 28 calendar slots
func (c *Catalog) DailySlots() []domain.DailySlot {
	return c.content.DailySlots
}

// DailySlot returns the slot for day (1..28)
func (c *Catalog) DailySlot(day int) (domain.DailySlot, bool) {
	if day < 1 || day > len(c.content.DailySlots) {
		return domain.DailySlot{}, false
	}
	return c.content.DailySlots[day-1], true
}

// Packs returns the shop packs in display order
func (c *Catalog) Packs() []domain.PackDefinition {
	return c.content.Packs
}

// Pack returns the pack definition for name
func (c *Catalog) Pack(name string) (domain.PackDefinition, bool) {
	p, ok := c.packs[name]
	return p, ok
}
