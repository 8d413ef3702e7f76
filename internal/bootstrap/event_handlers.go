package bootstrap

import (
	"log/slog"

	"github.com/osse101/Minefut_Go/internal/defi"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	DefiService defi.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - Défi progress handler (turns ledger events into task counters)
// - Metrics collector (event-based business counters)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	defi.NewEventHandler(deps.DefiService).Register(deps.EventBus)
	slog.Info(LogMsgDefiHandlerRegistered)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
