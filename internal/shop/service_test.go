package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/testing/testutil"
)

// MockWallet is a mock implementation of Wallet
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Withdraw(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockWallet) Credit(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

// MockCollection is a mock implementation of Collection
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) Grant(ctx context.Context, names []string) (map[string]int, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockExperience is a mock implementation of Experience
type MockExperience struct {
	mock.Mock
}

func (m *MockExperience) AddXP(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, pack string, count int) ([]domain.Card, error) {
	args := m.Called(ctx, pack, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

type mocks struct {
	wallet     *MockWallet
	collection *MockCollection
	xp         *MockExperience
	generator  *MockGenerator
	rec        *testutil.EventRecorder
}

func setup(t *testing.T) (Service, *mocks) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	m := &mocks{
		wallet:     &MockWallet{},
		collection: &MockCollection{},
		xp:         &MockExperience{},
		generator:  &MockGenerator{},
	}
	bus := event.NewMemoryBus()
	m.rec = testutil.RecordEvents(bus, event.PackOpened, event.CoinsSpent)
	return NewService(cat, m.wallet, m.collection, m.xp, m.generator, bus), m
}

var drawn = []domain.Card{
	{Name: "Mbappé", Rarity: domain.RarityGoldRare, Rating: 91},
	{Name: "Tomori", Rarity: domain.RarityGoldRare, Rating: 81},
}

func TestOpenPack_Success(t *testing.T) {
	// ARRANGE
	svc, m := setup(t)
	ctx := context.Background()
	m.generator.On("Generate", ctx, domain.PackClassic, 5).Return(drawn, nil)
	m.wallet.On("Withdraw", ctx, 100).Return(400, nil)
	m.collection.On("Grant", ctx, []string{"Mbappé", "Tomori"}).Return(map[string]int{"Mbappé": 1, "Tomori": 1}, nil)
	m.xp.On("AddXP", ctx, domain.PackOpenXP).Return(10, nil)

	// ACT
	opening, err := svc.OpenPack(ctx, domain.PackClassic)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, &domain.PackOpening{Pack: domain.PackClassic, Price: 100, Cards: drawn, Balance: 400, XP: 10}, opening)
	assert.Equal(t, 1, m.rec.Count(event.PackOpened))
	require.Equal(t, 1, m.rec.Count(event.CoinsSpent))
	m.wallet.AssertExpectations(t)
	m.collection.AssertExpectations(t)
	m.xp.AssertExpectations(t)
}

func TestOpenPack_InsufficientFunds(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	m.generator.On("Generate", ctx, domain.PackIcon, 3).Return(drawn, nil)
	m.wallet.On("Withdraw", ctx, 800).Return(500, domain.ErrInsufficientFunds)

	_, err := svc.OpenPack(ctx, domain.PackIcon)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	m.collection.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
	m.xp.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything)
	assert.Zero(t, m.rec.Count(event.PackOpened))
	assert.Zero(t, m.rec.Count(event.CoinsSpent))
}

func TestOpenPack_UnknownPack(t *testing.T) {
	svc, m := setup(t)

	_, err := svc.OpenPack(context.Background(), "Pack Mystère")

	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
	m.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenPack_GeneratorFailureChargesNothing(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	boom := errors.New("empty pool")
	m.generator.On("Generate", ctx, domain.PackPremium, 5).Return(nil, boom)

	_, err := svc.OpenPack(ctx, domain.PackPremium)

	assert.ErrorIs(t, err, boom)
	m.wallet.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything)
}

func TestOpenPack_GrantFailureRefunds(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	m.generator.On("Generate", ctx, domain.PackClassic, 5).Return(drawn, nil)
	m.wallet.On("Withdraw", ctx, 100).Return(400, nil)
	m.collection.On("Grant", ctx, mock.Anything).Return(nil, domain.ErrPersistence)
	m.wallet.On("Credit", ctx, 100).Return(500, nil)

	_, err := svc.OpenPack(ctx, domain.PackClassic)

	assert.ErrorIs(t, err, domain.ErrPersistence)
	m.wallet.AssertExpectations(t)
	assert.Zero(t, m.rec.Count(event.PackOpened))
	// refunded coins were never spent
	assert.Zero(t, m.rec.Count(event.CoinsSpent))
}

func TestOpenPack_XPFailureKeepsPurchase(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	m.generator.On("Generate", ctx, domain.PackClassic, 5).Return(drawn, nil)
	m.wallet.On("Withdraw", ctx, 100).Return(400, nil)
	m.collection.On("Grant", ctx, mock.Anything).Return(map[string]int{}, nil)
	m.xp.On("AddXP", ctx, domain.PackOpenXP).Return(0, domain.ErrPersistence)

	opening, err := svc.OpenPack(ctx, domain.PackClassic)

	require.NoError(t, err)
	assert.Zero(t, opening.XP)
	m.wallet.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
}

func TestPacks(t *testing.T) {
	svc, _ := setup(t)

	packs := svc.Packs()
	require.Len(t, packs, 3)
	assert.Equal(t, domain.PackClassic, packs[0].Name)
}
