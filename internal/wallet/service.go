package wallet

import (
	"context"
	"fmt"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// Service is the minecoin account
type Service interface {
	// Credit adds amount to the balance. Non-positive amounts are a no-op.
	Credit(ctx context.Context, amount int) (int, error)

	// Debit removes amount from the balance and returns the new balance.
	// It fails with domain.ErrInsufficientFunds, leaving the balance
	// untouched, when amount exceeds the balance.
	Debit(ctx context.Context, amount int) (int, error)

	// Withdraw is Debit without the coins_spent event. Callers that may
	// still refund publish the spend themselves once the purchase stands.
	Withdraw(ctx context.Context, amount int) (int, error)

	Balance(ctx context.Context) (int, error)

	// SetBalance overwrites the balance (admin and test fixtures only)
	SetBalance(ctx context.Context, balance int) error
}

type service struct {
	doc *repository.Document[domain.Wallet]
	bus event.Bus
}

// Option configures the wallet service
type Option func(*options)

type options struct {
	startingBalance int
}

// WithStartingBalance sets the balance of a wallet that was never saved
func WithStartingBalance(balance int) Option {
	return func(o *options) {
		if balance >= 0 {
			o.startingBalance = balance
		}
	}
}

// NewService creates a new wallet service. bus may be nil.
func NewService(store repository.DocumentStore, locks *concurrency.LockManager, bus event.Bus, opts ...Option) Service {
	o := options{startingBalance: domain.DefaultStartingBalance}
	for _, opt := range opts {
		opt(&o)
	}

	defaults := func() domain.Wallet {
		return domain.Wallet{Minecoins: o.startingBalance}
	}
	return &service{
		doc: repository.NewDocument(store, locks, repository.DocWallet, defaults, repairWallet),
		bus: bus,
	}
}

func repairWallet(w *domain.Wallet) {
	if w.Minecoins < 0 {
		w.Minecoins = 0
	}
}

func (s *service) Credit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return s.Balance(ctx)
	}

	w, err := s.doc.Update(ctx, func(w *domain.Wallet) error {
		w.Minecoins += amount
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgCoinsCredited, LogFieldAmount, amount, LogFieldBalance, w.Minecoins)
	event.PublishBestEffort(ctx, s.bus, event.NewCoinsCreditedEvent(ctx, amount, w.Minecoins))
	return w.Minecoins, nil
}

func (s *service) Debit(ctx context.Context, amount int) (int, error) {
	balance, err := s.Withdraw(ctx, amount)
	if err != nil || amount <= 0 {
		return balance, err
	}
	event.PublishBestEffort(ctx, s.bus, event.NewCoinsSpentEvent(ctx, amount, balance))
	return balance, nil
}

func (s *service) Withdraw(ctx context.Context, amount int) (int, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return s.Balance(ctx)
	}

	w, err := s.doc.Update(ctx, func(w *domain.Wallet) error {
		if amount > w.Minecoins {
			return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, w.Minecoins)
		}
		w.Minecoins -= amount
		return nil
	})
	if err != nil {
		log.Warn(LogMsgDebitRejected, LogFieldAmount, amount, LogFieldError, err)
		return 0, err
	}

	log.Info(LogMsgCoinsDebited, LogFieldAmount, amount, LogFieldBalance, w.Minecoins)
	return w.Minecoins, nil
}

func (s *service) Balance(ctx context.Context) (int, error) {
	w, err := s.doc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return w.Minecoins, nil
}

func (s *service) SetBalance(ctx context.Context, balance int) error {
	if balance < 0 {
		return fmt.Errorf(ErrMsgNegativeBalanceFmt, balance, domain.ErrInvalidInput)
	}
	_, err := s.doc.Update(ctx, func(w *domain.Wallet) error {
		w.Minecoins = balance
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgBalanceOverwrite, LogFieldBalance, balance)
	return nil
}
