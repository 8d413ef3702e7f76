package metrics

import (
	"context"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. It never fails the
// publishing command.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CoinsCredited:
		var p domain.CoinsPayload
		if p, err = event.DecodePayload[domain.CoinsPayload](evt.Payload); err == nil {
			CoinsCredited.Add(float64(p.Amount))
		}
	case event.CoinsSpent:
		var p domain.CoinsPayload
		if p, err = event.DecodePayload[domain.CoinsPayload](evt.Payload); err == nil {
			CoinsSpent.Add(float64(p.Amount))
		}
	case event.PackOpened:
		var p domain.PackOpenedPayload
		if p, err = event.DecodePayload[domain.PackOpenedPayload](evt.Payload); err == nil {
			PacksOpened.WithLabelValues(p.Pack).Inc()
		}
	case event.CardsGranted:
		var p domain.CardsPayload
		if p, err = event.DecodePayload[domain.CardsPayload](evt.Payload); err == nil {
			CardsGranted.Add(float64(len(p.Names)))
		}
	case event.CardsConsumed:
		var p domain.CardsPayload
		if p, err = event.DecodePayload[domain.CardsPayload](evt.Payload); err == nil {
			CardsConsumed.Add(float64(len(p.Names)))
		}
	case event.XPAdded:
		var p domain.XPPayload
		if p, err = event.DecodePayload[domain.XPPayload](evt.Payload); err == nil {
			XPAdded.Add(float64(p.Amount))
		}
	case event.ChallengeCompleted:
		ChallengesCompleted.Inc()
	case event.BundleGranted:
		BundlesGranted.Inc()
	case event.TaskClaimed, event.PassLevelClaimed, event.DailyClaimed:
		var p domain.ClaimPayload
		if p, err = event.DecodePayload[domain.ClaimPayload](evt.Payload); err == nil {
			RewardsClaimed.WithLabelValues(p.Source, string(p.Reward)).Inc()
		}
	case event.ProgressReset:
		ProgressResets.Inc()
	}

	if err != nil {
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
