package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
)

func TestObserveCommand_Outcomes(t *testing.T) {
	okBefore := testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeSuccess))
	rejBefore := testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeRejected))
	failBefore := testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeFailed))

	require.NoError(t, ObserveCommand("test_cmd", func() error { return nil }))
	require.ErrorIs(t, ObserveCommand("test_cmd", func() error { return domain.ErrInsufficientFunds }), domain.ErrInsufficientFunds)
	_ = ObserveCommand("test_cmd", func() error {
		return domain.Persistence("save", "wallet", errors.New("disk full"))
	})

	assert.Equal(t, okBefore+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeSuccess)))
	assert.Equal(t, rejBefore+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeRejected)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("test_cmd", OutcomeFailed)))
	assert.Equal(t, float64(0), testutil.ToFloat64(CommandsInFlight))
}

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	spentBefore := testutil.ToFloat64(CoinsSpent)
	grantedBefore := testutil.ToFloat64(CardsGranted)
	packsBefore := testutil.ToFloat64(PacksOpened.WithLabelValues("premium"))
	claimsBefore := testutil.ToFloat64(RewardsClaimed.WithLabelValues("defi", string(domain.RewardKindCoins)))

	require.NoError(t, bus.Publish(ctx, event.NewCoinsSpentEvent(ctx, 300, 200)))
	require.NoError(t, bus.Publish(ctx, event.NewCardsGrantedEvent(ctx, []string{"Wirtz", "Son"})))
	require.NoError(t, bus.Publish(ctx, event.NewPackOpenedEvent(ctx, "premium", 300, nil)))
	require.NoError(t, bus.Publish(ctx, event.NewClaimEvent(ctx, event.TaskClaimed, domain.ClaimPayload{
		Source: "defi", ID: "weekly_complete_1_sbc", Reward: domain.RewardKindCoins,
	})))

	assert.Equal(t, spentBefore+300, testutil.ToFloat64(CoinsSpent))
	assert.Equal(t, grantedBefore+2, testutil.ToFloat64(CardsGranted))
	assert.Equal(t, packsBefore+1, testutil.ToFloat64(PacksOpened.WithLabelValues("premium")))
	assert.Equal(t, claimsBefore+1, testutil.ToFloat64(RewardsClaimed.WithLabelValues("defi", string(domain.RewardKindCoins))))
}

func TestEventMetricsCollector_IgnoresBadPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.CoinsSpent,
		Payload: "not a payload",
	})
	assert.NoError(t, err)
}

func TestWriteTextfile(t *testing.T) {
	CoinsCredited.Add(1)
	path := filepath.Join(t.TempDir(), "nested", "minefut.prom")

	require.NoError(t, WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), fmt.Sprintf("# TYPE %s counter", MetricNameCoinsCredited))
}
