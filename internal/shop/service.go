// Package shop sells packs for minecoins.
package shop

import (
	"context"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// Wallet is the minecoin ledger
type Wallet interface {
	Withdraw(ctx context.Context, amount int) (int, error)
	Credit(ctx context.Context, amount int) (int, error)
}

// Collection receives the opened cards
type Collection interface {
	Grant(ctx context.Context, names []string) (map[string]int, error)
}

// Experience receives the opening bonus
type Experience interface {
	AddXP(ctx context.Context, amount int) (int, error)
}

// Generator draws pack contents
type Generator interface {
	Generate(ctx context.Context, pack string, count int) ([]domain.Card, error)
}

// Service is the pack shop
type Service interface {
	// OpenPack charges the pack price, grants the drawn cards and awards
	// domain.PackOpenXP. Insufficient funds change nothing.
	OpenPack(ctx context.Context, pack string) (*domain.PackOpening, error)
	Packs() []domain.PackDefinition
}

type service struct {
	catalog    *catalog.Catalog
	wallet     Wallet
	collection Collection
	xp         Experience
	generator  Generator
	bus        event.Bus
}

// NewService creates the shop. bus may be nil.
func NewService(cat *catalog.Catalog, wallet Wallet, collection Collection, xp Experience, generator Generator, bus event.Bus) Service {
	return &service{
		catalog:    cat,
		wallet:     wallet,
		collection: collection,
		xp:         xp,
		generator:  generator,
		bus:        bus,
	}
}

func (s *service) OpenPack(ctx context.Context, pack string) (*domain.PackOpening, error) {
	log := logger.FromContext(ctx)

	def, ok := s.catalog.Pack(pack)
	if !ok {
		return nil, domain.UnknownEntity(EntityPack, pack)
	}

	cards, err := s.generator.Generate(ctx, def.Name, def.Count)
	if err != nil {
		return nil, err
	}

	// The spend is published only once the cards are granted, so a refunded
	// purchase never counts toward coins_spent
	balance, err := s.wallet.Withdraw(ctx, def.Price)
	if err != nil {
		log.Warn(LogMsgPurchaseFailed, LogFieldPack, def.Name, LogFieldPrice, def.Price, LogFieldError, err)
		return nil, err
	}

	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name)
	}
	if _, err := s.collection.Grant(ctx, names); err != nil {
		if _, rfErr := s.wallet.Credit(ctx, def.Price); rfErr != nil {
			log.Error(LogMsgRefundFailed, LogFieldPack, def.Name, LogFieldError, rfErr)
		} else {
			log.Warn(LogMsgRefunded, LogFieldPack, def.Name, LogFieldError, err)
		}
		return nil, err
	}

	opening := &domain.PackOpening{Pack: def.Name, Price: def.Price, Cards: cards, Balance: balance}
	// A failed XP bonus does not undo the purchase.
	if total, err := s.xp.AddXP(ctx, domain.PackOpenXP); err != nil {
		log.Error(LogMsgXPFailed, LogFieldPack, def.Name, LogFieldError, err)
	} else {
		opening.XP = total
	}

	log.Info(LogMsgPackOpened, LogFieldPack, def.Name, LogFieldCards, len(cards), LogFieldBalance, balance)
	if def.Price > 0 {
		event.PublishBestEffort(ctx, s.bus, event.NewCoinsSpentEvent(ctx, def.Price, balance))
	}
	event.PublishBestEffort(ctx, s.bus, event.NewPackOpenedEvent(ctx, def.Name, def.Price, cards))
	return opening, nil
}

func (s *service) Packs() []domain.PackDefinition {
	return s.catalog.Packs()
}
