package bootstrap

import (
	"log/slog"

	"github.com/osse101/Minefut_Go/internal/metrics"
	"github.com/osse101/Minefut_Go/internal/repository"
)

// ShutdownComponents holds what needs flushing or closing on exit.
type ShutdownComponents struct {
	Store       repository.DocumentStore
	MetricsFile string
}

// GracefulShutdown flushes metrics first, while the store is still open,
// then closes the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.MetricsFile != "" {
		if err := metrics.WriteTextfile(components.MetricsFile); err != nil {
			slog.Error(LogMsgMetricsWriteFailed, LogFieldPath, components.MetricsFile, LogFieldError, err)
		} else {
			slog.Info(LogMsgMetricsWritten, LogFieldPath, components.MetricsFile)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, LogFieldError, err)
		}
	}

	slog.Info(LogMsgStopped)
}
