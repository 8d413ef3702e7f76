package daily

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/gametime"
	"github.com/osse101/Minefut_Go/internal/inventory"
	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/reward"
	"github.com/osse101/Minefut_Go/internal/testing/testutil"
	"github.com/osse101/Minefut_Go/internal/wallet"
	"github.com/osse101/Minefut_Go/internal/xp"
)

type fixture struct {
	svc    Service
	clock  *gametime.SimulatedClock
	loc    *time.Location
	store  *testutil.FlakyStore
	rec    *testutil.EventRecorder
	xp     xp.Service
	wallet wallet.Service
	inv    inventory.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	cal, err := gametime.LoadCalendar("Europe/Paris", 19)
	require.NoError(t, err)

	f := &fixture{store: testutil.NewFlakyStore(), loc: cal.Location}
	f.clock = gametime.NewSimulatedClock(time.Date(2025, 11, 3, 10, 0, 0, 0, f.loc))
	bus := event.NewMemoryBus()
	f.rec = testutil.RecordEvents(bus, event.DailyClaimed)

	locks := concurrency.NewLockManager()
	f.inv = inventory.NewService(f.store, locks, bus)
	f.wallet = wallet.NewService(f.store, locks, bus)
	f.xp = xp.NewService(f.store, locks, bus)
	f.svc = NewService(f.store, locks, cat, reward.NewApplier(f.inv, f.wallet, f.xp), f.clock, cal, bus)
	return f
}

func (f *fixture) seed(t *testing.T, st domain.DailyState) {
	t.Helper()
	body, err := json.Marshal(st)
	require.NoError(t, err)
	require.NoError(t, f.store.MemoryStore.Save(context.Background(), repository.DocDailyReward, body))
}

func TestClaimToday_Streak(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// ACT: day 1
	res, err := f.svc.ClaimToday(ctx)
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, 1, res.Day)
	assert.Equal(t, domain.XPReward{Amount: 25}, res.Reward)
	total, err := f.xp.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, total)

	_, err = f.svc.ClaimToday(ctx)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	f.clock.AdvanceDays(1)
	res, err = f.svc.ClaimToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
	balance, err := f.wallet.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 750, balance)

	// skipping a day restarts the streak
	f.clock.AdvanceDays(2)
	res, err = f.svc.ClaimToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
	assert.Equal(t, 3, f.rec.Count(event.DailyClaimed))
}

func TestClaimToday_MidnightBoundary(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.clock.Set(time.Date(2025, 11, 3, 23, 59, 0, 0, f.loc))
	_, err := f.svc.ClaimToday(ctx)
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, 11, 4, 0, 0, 0, 0, f.loc))
	res, err := f.svc.ClaimToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
}

func TestClaimToday_DayRules(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.DailyState
		wantDay    int
		wantCycles int
	}{
		{"consecutive day advances", domain.DailyState{LastClaimDate: "2025-11-02", DayIndex: 5}, 6, 0},
		{"day 28 wraps", domain.DailyState{LastClaimDate: "2025-11-02", DayIndex: 28, CyclesCompleted: 2}, 1, 3},
		{"gap restarts", domain.DailyState{LastClaimDate: "2025-10-30", DayIndex: 12}, 1, 0},
		{"future date restarts", domain.DailyState{LastClaimDate: "2025-11-05", DayIndex: 3}, 1, 0},
		{"unreadable date restarts", domain.DailyState{LastClaimDate: "yesterday", DayIndex: 3}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			ctx := context.Background()
			f.seed(t, tt.state)

			next, err := f.svc.NextDay(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, next)

			res, err := f.svc.ClaimToday(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, res.Day)
			assert.Equal(t, tt.wantCycles, res.CyclesCompleted)
		})
	}
}

func TestClaimToday_CardSlot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.seed(t, domain.DailyState{LastClaimDate: "2025-11-02", DayIndex: 6})

	res, err := f.svc.ClaimToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Slot.Day)

	owned, err := f.inv.Count(ctx, "Teun Koopmeiners")
	require.NoError(t, err)
	assert.Equal(t, 1, owned)
}

func TestStatus_DoesNotWrite(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.seed(t, domain.DailyState{LastClaimDate: "2025-11-03", DayIndex: 4})

	st, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.ClaimedToday)
	assert.Equal(t, 4, st.NextDay)
	assert.Equal(t, "2025-11-03", st.Date)
	assert.Zero(t, f.store.Saves(repository.DocDailyReward))
}

func TestClaimToday_RewardFailureRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.store.FailSaves(repository.DocProfile, true)
	_, err := f.svc.ClaimToday(ctx)
	require.ErrorIs(t, err, domain.ErrPersistence)

	st, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.ClaimedToday)
	assert.Empty(t, st.LastClaimDate)
	assert.Zero(t, f.rec.Count(event.DailyClaimed))

	f.store.FailSaves(repository.DocProfile, false)
	res, err := f.svc.ClaimToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
}

func TestSlots(t *testing.T) {
	f := setup(t)

	slots := f.svc.Slots()
	require.Len(t, slots, domain.DailyCycleLength)
	for i, s := range slots {
		assert.Equal(t, i+1, s.Day)
	}
}
