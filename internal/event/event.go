package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Engine event types, aliased from the domain constants so handlers can
// subscribe without string conversions.
const (
	CoinsSpent         Type = domain.EventTypeCoinsSpent
	CoinsCredited      Type = domain.EventTypeCoinsCredited
	PackOpened         Type = domain.EventTypePackOpened
	CardsGranted       Type = domain.EventTypeCardsGranted
	CardsConsumed      Type = domain.EventTypeCardsConsumed
	XPAdded            Type = domain.EventTypeXPAdded
	ChallengeCompleted Type = domain.EventTypeChallengeCompleted
	BundleGranted      Type = domain.EventTypeBundleGranted
	TaskClaimed        Type = domain.EventTypeTaskClaimed
	PassLevelClaimed   Type = domain.EventTypePassLevelClaimed
	PassActivated      Type = domain.EventTypePassActivated
	DailyClaimed       Type = domain.EventTypeDailyClaimed
	ProgressReset      Type = domain.EventTypeProgressReset
)

// AllTypes lists every event type the engine publishes
var AllTypes = []Type{
	CoinsSpent, CoinsCredited, PackOpened, CardsGranted, CardsConsumed, XPAdded,
	ChallengeCompleted, BundleGranted, TaskClaimed, PassLevelClaimed, PassActivated,
	DailyClaimed, ProgressReset,
}

func newEvent(ctx context.Context, eventType Type, payload interface{}) Event {
	evt := Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
	if id, ok := logger.CommandIDFromContext(ctx); ok {
		evt.Metadata = Metadata{MetadataKeyCommandID: id}
	}
	return evt
}

// NewCoinsSpentEvent creates a wallet debit event
func NewCoinsSpentEvent(ctx context.Context, amount, balance int) Event {
	return newEvent(ctx, CoinsSpent, domain.CoinsPayload{Amount: amount, Balance: balance})
}

// NewCoinsCreditedEvent creates a wallet credit event
func NewCoinsCreditedEvent(ctx context.Context, amount, balance int) Event {
	return newEvent(ctx, CoinsCredited, domain.CoinsPayload{Amount: amount, Balance: balance})
}

// NewPackOpenedEvent creates a shop pack event
func NewPackOpenedEvent(ctx context.Context, pack string, price int, cards []domain.Card) Event {
	return newEvent(ctx, PackOpened, domain.PackOpenedPayload{Pack: pack, Price: price, Cards: cards})
}

// NewCardsGrantedEvent creates a collection grant event
func NewCardsGrantedEvent(ctx context.Context, names []string) Event {
	return newEvent(ctx, CardsGranted, domain.CardsPayload{Names: names})
}

// NewCardsConsumedEvent creates a collection consume event
func NewCardsConsumedEvent(ctx context.Context, names []string) Event {
	return newEvent(ctx, CardsConsumed, domain.CardsPayload{Names: names})
}

// NewXPAddedEvent creates a profile experience event
func NewXPAddedEvent(ctx context.Context, amount, total int) Event {
	return newEvent(ctx, XPAdded, domain.XPPayload{Amount: amount, Total: total})
}

// NewChallengeCompletedEvent creates an SBC completion event
func NewChallengeCompletedEvent(ctx context.Context, challengeID string, firstTime bool) Event {
	return newEvent(ctx, ChallengeCompleted, domain.ChallengeCompletedPayload{ChallengeID: challengeID, FirstTime: firstTime})
}

// NewBundleGrantedEvent creates an SBC bundle reward event
func NewBundleGrantedEvent(ctx context.Context, bundleID string, card domain.Card) Event {
	return newEvent(ctx, BundleGranted, domain.BundleGrantedPayload{BundleID: bundleID, Card: card})
}

// NewClaimEvent creates a claim event for one of the progression loops
func NewClaimEvent(ctx context.Context, eventType Type, payload domain.ClaimPayload) Event {
	return newEvent(ctx, eventType, payload)
}

// NewPassActivatedEvent creates a season pass switch event
func NewPassActivatedEvent(ctx context.Context, from, to string) Event {
	return newEvent(ctx, PassActivated, domain.PassActivatedPayload{From: from, To: to})
}

// NewProgressResetEvent creates a factory reset event
func NewProgressResetEvent(ctx context.Context) Event {
	return newEvent(ctx, ProgressReset, nil)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to every subscriber synchronously, in
// subscription order. Handler errors are collected, never short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes and logs handler failures instead of returning
// them. Used after a command has already been persisted.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
