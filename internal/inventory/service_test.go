package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/testing/testutil"
)

func setupService(t *testing.T) (Service, *testutil.FlakyStore, *testutil.EventRecorder) {
	t.Helper()
	store := testutil.NewFlakyStore()
	bus := event.NewMemoryBus()
	rec := testutil.RecordEvents(bus, event.CardsGranted, event.CardsConsumed)
	return NewService(store, concurrency.NewLockManager(), bus), store, rec
}

func TestGrant_CountsByBaseName(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()

	owned, err := svc.Grant(ctx, []string{"Mbappé", "Paul Pogba#sbc", "  Paul Pogba ", "", "#x"})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Mbappé": 1, "Paul Pogba": 2}, owned)
	assert.Equal(t, 1, rec.Count(event.CardsGranted))
}

func TestGrant_EmptyBatchIsNoop(t *testing.T) {
	svc, store, rec := setupService(t)

	owned, err := svc.Grant(context.Background(), []string{"", " "})
	require.NoError(t, err)

	assert.Empty(t, owned)
	assert.Equal(t, 0, store.Saves(repository.DocCollection))
	assert.Empty(t, rec.Events())
}

func TestConsume_AllOrNothing(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()

	_, err := svc.Grant(ctx, []string{"A", "A", "B"})
	require.NoError(t, err)

	// ACT: B is requested twice but owned once
	err = svc.Consume(ctx, []string{"A", "B", "B"})

	// ASSERT
	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Equal(t, "B", insufficient.Name)
	assert.Equal(t, 1, insufficient.Owned)
	assert.Equal(t, 2, insufficient.Required)

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, snapshot)
	assert.Equal(t, 0, rec.Count(event.CardsConsumed))
}

func TestConsume_ReportsFirstDeficientNameInRequestOrder(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	err := svc.Consume(ctx, []string{"Z", "A"})

	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Z", insufficient.Name)
	assert.Equal(t, "not enough duplicates of Z (owned: 0, required: 1)", err.Error())
}

func TestConsume_PrunesZeroCounts(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()

	_, err := svc.Grant(ctx, []string{"Mbappé", "Mbappé"})
	require.NoError(t, err)

	require.NoError(t, svc.CanConsume(ctx, []string{"Mbappé", "Mbappé"}))
	require.NoError(t, svc.Consume(ctx, []string{"Mbappé", "Mbappé#pass"}))

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotContains(t, snapshot, "Mbappé")

	count, err := svc.Count(ctx, "Mbappé")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, rec.Count(event.CardsConsumed))
}

func TestCountsNeverNegative(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	ops := []struct {
		grant bool
		names []string
	}{
		{true, []string{"A"}},
		{false, []string{"A", "A"}},
		{false, []string{"A"}},
		{false, []string{"A"}},
		{true, []string{"B", "B"}},
		{false, []string{"B", "C"}},
		{false, []string{"B"}},
	}

	for _, op := range ops {
		if op.grant {
			_, err := svc.Grant(ctx, op.names)
			require.NoError(t, err)
		} else {
			_ = svc.Consume(ctx, op.names)
		}

		snapshot, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		for name, count := range snapshot {
			assert.Positive(t, count, name)
		}
	}

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 1}, snapshot)
}

func TestGrant_SaveFailureLeavesStateUntouched(t *testing.T) {
	svc, store, rec := setupService(t)
	ctx := context.Background()

	_, err := svc.Grant(ctx, []string{"A"})
	require.NoError(t, err)

	store.FailSaves(repository.DocCollection, true)
	_, err = svc.Grant(ctx, []string{"A", "B"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.True(t, errors.Is(err, testutil.ErrInjected))

	store.FailSaves(repository.DocCollection, false)
	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1}, snapshot)
	assert.Equal(t, 1, rec.Count(event.CardsGranted))
}

func TestSnapshot_RepairsHandEditedDocument(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()

	body := []byte(`{"owned": {"A": 2, "A#sbc": 1, "B": 0, "C": -3}}`)
	require.NoError(t, store.Save(ctx, repository.DocCollection, body))

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 3}, snapshot)
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	owned, err := svc.Grant(ctx, []string{"A"})
	require.NoError(t, err)
	owned["A"] = 99

	count, err := svc.Count(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
