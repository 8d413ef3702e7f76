package metrics

import (
	"errors"
	"time"

	"github.com/osse101/Minefut_Go/internal/domain"
)

// ObserveCommand runs fn and records its latency and outcome. Rule
// rejections are counted separately from persistence failures.
func ObserveCommand(command string, fn func() error) error {
	start := time.Now()

	CommandsInFlight.Inc()
	defer CommandsInFlight.Dec()

	err := fn()

	CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	CommandsTotal.WithLabelValues(command, Outcome(err)).Inc()

	return err
}

// Outcome maps a command error to its outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrPersistence):
		return OutcomeFailed
	default:
		return OutcomeRejected
	}
}
