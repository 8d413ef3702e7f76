package defi

import (
	"context"
	"errors"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// EventHandler turns engine events into Défi counters
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new Défi event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes the handler to the events that feed counters
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.CoinsSpent, h.HandleCoinsSpent)
	bus.Subscribe(event.PackOpened, h.count(domain.CounterPackOpened))
	bus.Subscribe(event.ChallengeCompleted, h.count(domain.CounterSBCCompleted))
	bus.Subscribe(event.DailyClaimed, h.count(domain.CounterDailyClaimed))
	bus.Subscribe(event.PassLevelClaimed, h.count(domain.CounterPassLevelsWon))
}

// HandleCoinsSpent adds the debited amount to coins_spent
func (h *EventHandler) HandleCoinsSpent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CoinsPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgHandlerFailed, LogFieldEvent, evt.Type, LogFieldError, err)
		return nil
	}
	return h.add(ctx, evt, domain.CounterCoinsSpent, payload.Amount)
}

func (h *EventHandler) count(key string) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		return h.add(ctx, evt, key, 1)
	}
}

// add records progress. Only persistence failures are reported back to the
// bus; the publishing command has already been saved either way.
func (h *EventHandler) add(ctx context.Context, evt event.Event, key string, amount int) error {
	if err := h.service.AddProgress(ctx, key, amount); err != nil {
		logger.FromContext(ctx).Warn(LogMsgHandlerFailed, LogFieldEvent, evt.Type, LogFieldKey, key, LogFieldError, err)
		if errors.Is(err, domain.ErrPersistence) {
			return err
		}
	}
	return nil
}
