package reward

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/domain"
)

type MockGranter struct{ mock.Mock }

func (m *MockGranter) Grant(ctx context.Context, names []string) (map[string]int, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockCrediter struct{ mock.Mock }

func (m *MockCrediter) Credit(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

type MockExperience struct{ mock.Mock }

func (m *MockExperience) AddXP(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

func setupApplier() (*Applier, *MockGranter, *MockCrediter, *MockExperience) {
	g, c, x := &MockGranter{}, &MockCrediter{}, &MockExperience{}
	return NewApplier(g, c, x), g, c, x
}

func TestApply_DispatchesByKind(t *testing.T) {
	ctx := context.Background()

	t.Run("card", func(t *testing.T) {
		a, g, c, x := setupApplier()
		g.On("Grant", ctx, []string{"Paul Pogba#pass"}).Return(map[string]int{"Paul Pogba": 1}, nil)

		err := a.Apply(ctx, "pass", domain.CardReward{Name: "Paul Pogba#pass", Rarity: domain.RarityGoldRare, Rating: 86})
		require.NoError(t, err)
		g.AssertExpectations(t)
		c.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
		x.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything)
	})

	t.Run("coins", func(t *testing.T) {
		a, _, c, _ := setupApplier()
		c.On("Credit", ctx, 250).Return(750, nil)

		require.NoError(t, a.Apply(ctx, "daily", domain.CoinsReward{Amount: 250}))
		c.AssertExpectations(t)
	})

	t.Run("xp", func(t *testing.T) {
		a, _, _, x := setupApplier()
		x.On("AddXP", ctx, 25).Return(25, nil)

		require.NoError(t, a.Apply(ctx, "defi", domain.XPReward{Amount: 25}))
		x.AssertExpectations(t)
	})
}

func TestApply_RejectsUnlocks(t *testing.T) {
	a, _, _, _ := setupApplier()
	ctx := context.Background()

	err := a.Apply(ctx, "defi", domain.UnlockPassReward{PassID: domain.PassRetro})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = a.Apply(ctx, "defi", domain.UnlockFeatureReward{Feature: domain.FeatureSBC})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = a.Apply(ctx, "defi", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_PropagatesLedgerErrors(t *testing.T) {
	a, _, c, _ := setupApplier()
	ctx := context.Background()
	boom := errors.New("disk full")
	c.On("Credit", ctx, 100).Return(0, boom)

	err := a.Apply(ctx, "defi", domain.CoinsReward{Amount: 100})
	assert.ErrorIs(t, err, boom)
}

func TestApplyCard_NilIsNoop(t *testing.T) {
	a, g, _, _ := setupApplier()

	require.NoError(t, a.ApplyCard(context.Background(), "defi", nil))
	g.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
}
