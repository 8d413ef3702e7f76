package xp

import (
	"context"
	"strings"
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
	rec := testutil.RecordEvents(bus, event.XPAdded)
	return NewService(store, concurrency.NewLockManager(), bus), store, rec
}

func TestAddXP_LevelProgress(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()

	total, err := svc.AddXP(ctx, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, total)

	progress, err := svc.LevelProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelProgress{Level: 3, InLevel: 50, Needed: 100}, progress)
	assert.Equal(t, 1, rec.Count(event.XPAdded))
}

func TestLevelProgressFromXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		in    int
	}{
		{0, 1, 0},
		{99, 1, 99},
		{100, 2, 0},
		{250, 3, 50},
		{-10, 1, 0},
	}
	for _, tt := range tests {
		got := domain.LevelProgressFromXP(tt.xp)
		assert.Equal(t, tt.level, got.Level, "xp=%d", tt.xp)
		assert.Equal(t, tt.in, got.InLevel, "xp=%d", tt.xp)
		assert.Equal(t, domain.XPPerLevel, got.Needed)
	}
}

func TestAddXP_NonPositiveIsNoop(t *testing.T) {
	svc, store, rec := setupService(t)
	ctx := context.Background()

	total, err := svc.AddXP(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	total, err = svc.AddXP(ctx, -40)
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.Zero(t, store.Saves(repository.DocProfile))
	assert.Empty(t, rec.Events())
}

func TestAddXP_NeverDecreases(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	last := 0
	for _, amount := range []int{10, -5, 0, 90, 1, -1000} {
		total, err := svc.AddXP(ctx, amount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, last)
		last = total
	}
	assert.Equal(t, 101, last)
}

func TestAddXP_SaveFailure(t *testing.T) {
	svc, store, rec := setupService(t)
	ctx := context.Background()

	store.FailSaves(repository.DocProfile, true)
	_, err := svc.AddXP(ctx, 50)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, rec.Events())

	store.FailSaves(repository.DocProfile, false)
	total, err := svc.XP(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestName(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	name, err := svc.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileName, name)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trimmed", "  Zizou  ", "Zizou"},
		{"blank restores default", "   ", domain.DefaultProfileName},
		{"cut to twenty runes", strings.Repeat("é", 25), strings.Repeat("é", 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := svc.SetName(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)

			name, err := svc.Name(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestSetName_KeepsXP(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AddXP(ctx, 120)
	require.NoError(t, err)
	_, err = svc.SetName(ctx, "Kylian")
	require.NoError(t, err)

	total, err := svc.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, total)
}
