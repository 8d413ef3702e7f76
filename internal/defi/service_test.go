package defi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

// MockPassProgress is a mock implementation of PassProgress
type MockPassProgress struct {
	mock.Mock
}

func (m *MockPassProgress) LevelProgress(ctx context.Context, passID string) (domain.LevelProgress, error) {
	args := m.Called(ctx, passID)
	return args.Get(0).(domain.LevelProgress), args.Error(1)
}

// MockChallengeLog is a mock implementation of ChallengeLog
type MockChallengeLog struct {
	mock.Mock
}

func (m *MockChallengeLog) IsCompleted(ctx context.Context, challengeID string) (bool, error) {
	args := m.Called(ctx, challengeID)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	svc        Service
	inv        inventory.Service
	wallet     wallet.Service
	xp         xp.Service
	clock      *gametime.SimulatedClock
	loc        *time.Location
	store      *testutil.FlakyStore
	bus        *event.MemoryBus
	passes     *MockPassProgress
	challenges *MockChallengeLog
	rec        *testutil.EventRecorder
}

func setup(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	cal, err := gametime.LoadCalendar("Europe/Paris", 19)
	require.NoError(t, err)

	f := &fixture{
		loc:        cal.Location,
		store:      testutil.NewFlakyStore(),
		bus:        event.NewMemoryBus(),
		passes:     &MockPassProgress{},
		challenges: &MockChallengeLog{},
	}
	f.clock = gametime.NewSimulatedClock(time.Date(2025, 10, 31, 20, 0, 0, 0, f.loc))
	f.rec = testutil.RecordEvents(f.bus, event.TaskClaimed)

	locks := concurrency.NewLockManager()
	f.inv = inventory.NewService(f.store, locks, f.bus)
	f.wallet = wallet.NewService(f.store, locks, f.bus)
	f.xp = xp.NewService(f.store, locks, f.bus)

	f.svc = NewService(f.store, locks, cat,
		Resolvers{Collection: f.inv, Passes: f.passes, Challenges: f.challenges},
		reward.NewApplier(f.inv, f.wallet, f.xp), f.clock, cal, f.bus)
	NewEventHandler(f.svc).Register(f.bus)
	return f
}

func (f *fixture) openPacks(t *testing.T, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		require.NoError(t, f.bus.Publish(ctx, event.NewPackOpenedEvent(ctx, domain.PackClassic, 100, nil)))
	}
}

func causeOf(t *testing.T, err error) string {
	t.Helper()
	var ne *domain.NotEligibleError
	require.ErrorAs(t, err, &ne)
	return ne.Cause
}

func TestDailyTask_ClaimOncePerCycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// ARRANGE: three packs in a fresh cycle
	f.openPacks(t, 3)

	progress, err := f.svc.Progress(ctx, "daily:pack_opened")
	require.NoError(t, err)
	assert.Equal(t, 3, progress)

	err = f.svc.CanClaim(ctx, "daily_open_5_packs")
	assert.ErrorIs(t, err, domain.ErrNotEligible)
	assert.Equal(t, domain.CauseTargetNotReached, causeOf(t, err))

	f.openPacks(t, 2)
	progress, err = f.svc.Progress(ctx, "daily:pack_opened")
	require.NoError(t, err)
	assert.Equal(t, 5, progress)
	require.NoError(t, f.svc.CanClaim(ctx, "daily_open_5_packs"))

	// ACT
	result, err := f.svc.Claim(ctx, "daily_open_5_packs")
	require.NoError(t, err)
	assert.Equal(t, domain.CoinsReward{Amount: 150}, result.Reward)

	_, err = f.svc.Claim(ctx, "daily_open_5_packs")

	// ASSERT
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	balance, err := f.wallet.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 650, balance)
	assert.Equal(t, 1, f.rec.Count(event.TaskClaimed))
}

func TestDailyProgress_ResetsAtAnchor(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.openPacks(t, 40)
	_, err := f.svc.Claim(ctx, "daily_open_5_packs")
	require.NoError(t, err)

	// one minute before the next anchor the cycle is unchanged
	f.clock.Set(time.Date(2025, 11, 1, 18, 59, 0, 0, f.loc))
	progress, err := f.svc.Progress(ctx, "daily:pack_opened")
	require.NoError(t, err)
	assert.Equal(t, 40, progress)

	// crossing 19:00 zeroes the daily view whatever the all-time count
	f.clock.Set(time.Date(2025, 11, 1, 19, 0, 0, 0, f.loc))
	progress, err = f.svc.Progress(ctx, "daily:pack_opened")
	require.NoError(t, err)
	assert.Zero(t, progress)

	allTime, err := f.svc.Progress(ctx, domain.CounterPackOpened)
	require.NoError(t, err)
	assert.Equal(t, 40, allTime)

	status, err := f.svc.Status(ctx, "daily_open_5_packs")
	require.NoError(t, err)
	assert.False(t, status.Claimed)
	assert.False(t, status.Claimable)

	f.openPacks(t, 5)
	_, err = f.svc.Claim(ctx, "daily_open_5_packs")
	require.NoError(t, err)
}

func TestDailyProgress_CountsFromFirstEventOfCycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.openPacks(t, 10)
	f.clock.AdvanceDays(1)

	// nothing reads the daily view before these opens
	f.openPacks(t, 3)

	progress, err := f.svc.Progress(ctx, "daily:pack_opened")
	require.NoError(t, err)
	assert.Equal(t, 3, progress)
}

func TestCoinsSpentFeedsCounters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.wallet.Debit(ctx, 300)
	require.NoError(t, err)
	_, err = f.wallet.Debit(ctx, 150)
	require.NoError(t, err)

	daily, err := f.svc.Progress(ctx, "daily:coins_spent")
	require.NoError(t, err)
	assert.Equal(t, 450, daily)

	allTime, err := f.svc.Progress(ctx, domain.CounterCoinsSpent)
	require.NoError(t, err)
	assert.Equal(t, 450, allTime)
}

func TestAddProgress_NonPositiveIsNoop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddProgress(ctx, domain.CounterPackOpened, 0))
	require.NoError(t, f.svc.AddProgress(ctx, domain.CounterPackOpened, -3))
	assert.Zero(t, f.store.Saves(repository.DocDefi))
}

func TestClaim_PredecessorRequired(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.inv.Grant(ctx, []string{"Matteo Ruggeri"})
	require.NoError(t, err)

	err = f.svc.CanClaim(ctx, "garcia_foundations_2")
	assert.Equal(t, domain.CausePredecessorUnmet, causeOf(t, err))

	_, err = f.inv.Grant(ctx, []string{"Teun Koopmeiners"})
	require.NoError(t, err)
	_, err = f.svc.Claim(ctx, "garcia_foundations_1")
	require.NoError(t, err)

	result, err := f.svc.Claim(ctx, "garcia_foundations_2")
	require.NoError(t, err)
	assert.Equal(t, domain.CoinsReward{Amount: 201}, result.Reward)
}

func TestClaim_GrantsSpecialCard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.passes.On("LevelProgress", mock.Anything, domain.PassLaunch).Return(domain.LevelProgress{Level: 21, Needed: 100}, nil)
	f.challenges.On("IsCompleted", mock.Anything, "dolan_world_tour_1").Return(true, nil)
	_, err := f.inv.Grant(ctx, []string{"Tomori"})
	require.NoError(t, err)

	for _, id := range []string{"tomori_world_tour_1", "tomori_world_tour_2", "tomori_world_tour_3"} {
		_, err := f.svc.Claim(ctx, id)
		require.NoError(t, err, id)
	}

	result, err := f.svc.Claim(ctx, "tomori_world_tour_4")
	require.NoError(t, err)
	require.NotNil(t, result.Card)
	assert.Equal(t, "Tomori#world tour", result.Card.Name)
	assert.Equal(t, 86, result.Card.Rating)

	owned, err := f.inv.Count(ctx, "Tomori")
	require.NoError(t, err)
	assert.Equal(t, 2, owned)
}

func TestProgress_DynamicKeys(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.passes.On("LevelProgress", mock.Anything, domain.PassHalloween).Return(domain.LevelProgress{Level: 4, Needed: 100}, nil)
	f.challenges.On("IsCompleted", mock.Anything, "gold_rare").Return(false, nil)
	_, err := f.inv.Grant(ctx, []string{"Josip Stanisic", "Tomori"})
	require.NoError(t, err)

	tests := []struct {
		key  string
		want int
	}{
		{"owned:Josip Stanišić", 1},
		{"owned:josip stanisic", 1},
		{"owned:Wataru Endo", 0},
		{"owned_min:Tomori:81:or rare", 1},
		{"owned_min:Tomori:81:gold rare", 1},
		{"owned_min:Tomori:90:or rare", 0},
		{"owned_min:Tomori:81:hero", 0},
		{"owned_min:Mbappé:80:or rare", 0},
		{"owned_min:Tomori:eighty:or rare", 0},
		{"pass_level:halloween", 4},
		{"sbc_done:gold_rare", 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := f.svc.Progress(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClaim_RewardFailureRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.bus.Publish(ctx, event.NewChallengeCompletedEvent(ctx, "bronze_basic", true)))

	f.store.FailSaves(repository.DocWallet, true)
	_, err := f.svc.Claim(ctx, "weekly_complete_1_sbc")
	require.ErrorIs(t, err, domain.ErrPersistence)

	status, err := f.svc.Status(ctx, "weekly_complete_1_sbc")
	require.NoError(t, err)
	assert.False(t, status.Claimed)
	assert.True(t, status.Claimable)
	assert.Zero(t, f.rec.Count(event.TaskClaimed))

	f.store.FailSaves(repository.DocWallet, false)
	_, err = f.svc.Claim(ctx, "weekly_complete_1_sbc")
	require.NoError(t, err)
}

func TestClaim_UnknownTask(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Claim(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
	assert.ErrorIs(t, f.svc.CanClaim(context.Background(), "nope"), domain.ErrUnknownEntity)
}

func TestClaim_XPReward(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.bus.Publish(ctx, event.NewChallengeCompletedEvent(ctx, "bronze_basic", true)))
	_, err := f.svc.Claim(ctx, "daily_complete_1_sbc")
	require.NoError(t, err)

	total, err := f.xp.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestListAndGroups(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.Contains(t, f.svc.Groups(), catalog.GroupDaily)

	daily, err := f.svc.List(ctx, catalog.GroupDaily)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	for _, st := range daily {
		assert.True(t, st.Task.IsDaily())
		assert.Zero(t, st.Progress)
	}

	f.passes.On("LevelProgress", mock.Anything, mock.Anything).Return(domain.LevelProgress{Level: 1, Needed: 100}, nil)
	f.challenges.On("IsCompleted", mock.Anything, mock.Anything).Return(false, nil)
	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(catalog.DefaultTasks()))
}
