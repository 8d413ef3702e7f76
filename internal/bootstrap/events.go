package bootstrap

import (
	"log/slog"

	"github.com/osse101/Minefut_Go/internal/event"
)

// InitializeEventSystem creates the synchronous in-process event bus.
// Handlers run on the publishing goroutine, inside the command lock.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
