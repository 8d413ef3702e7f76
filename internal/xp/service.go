package xp

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// Service is the experience record and the profile display name
type Service interface {
	// AddXP adds experience and returns the new total. Non-positive amounts
	// are a no-op.
	AddXP(ctx context.Context, amount int) (int, error)

	XP(ctx context.Context) (int, error)
	LevelProgress(ctx context.Context) (domain.LevelProgress, error)

	Name(ctx context.Context) (string, error)
	// SetName stores the trimmed name cut to MaxProfileNameLength runes and
	// returns what was stored. A blank name restores the default.
	SetName(ctx context.Context, name string) (string, error)
}

type service struct {
	doc *repository.Document[domain.Profile]
	bus event.Bus
}

// NewService creates a new experience service. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		doc: repository.NewDocument(store, locks, repository.DocProfile, newProfile, repairProfile),
		bus: bus,
	}
}

func newProfile() domain.Profile {
	return domain.Profile{Name: domain.DefaultProfileName}
}

func repairProfile(p *domain.Profile) {
	if p.XP < 0 {
		p.XP = 0
	}
	p.Name = SanitizeName(p.Name)
}

// SanitizeName applies the display name rules
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DefaultProfileName
	}
	if utf8.RuneCountInString(name) > domain.MaxProfileNameLength {
		name = strings.TrimSpace(string([]rune(name)[:domain.MaxProfileNameLength]))
	}
	return name
}

func (s *service) AddXP(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return s.XP(ctx)
	}

	var before int
	p, err := s.doc.Update(ctx, func(p *domain.Profile) error {
		before = p.XP
		p.XP += amount
		return nil
	})
	if err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgXPAdded, LogFieldAmount, amount, LogFieldTotal, p.XP)
	if lvl := domain.LevelProgressFromXP(p.XP).Level; lvl > domain.LevelProgressFromXP(before).Level {
		log.Info(LogMsgLevelUp, LogFieldLevel, lvl)
	}

	event.PublishBestEffort(ctx, s.bus, event.NewXPAddedEvent(ctx, amount, p.XP))
	return p.XP, nil
}

func (s *service) XP(ctx context.Context) (int, error) {
	p, err := s.doc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return p.XP, nil
}

func (s *service) LevelProgress(ctx context.Context) (domain.LevelProgress, error) {
	total, err := s.XP(ctx)
	if err != nil {
		return domain.LevelProgress{}, err
	}
	return domain.LevelProgressFromXP(total), nil
}

func (s *service) Name(ctx context.Context) (string, error) {
	p, err := s.doc.Load(ctx)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func (s *service) SetName(ctx context.Context, name string) (string, error) {
	clean := SanitizeName(name)
	if _, err := s.doc.Update(ctx, func(p *domain.Profile) error {
		p.Name = clean
		return nil
	}); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info(LogMsgNameChanged, LogFieldName, clean)
	return clean, nil
}
