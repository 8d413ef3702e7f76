package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/repository"
)

// MockDocumentStore is a mock implementation of repository.DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentStore) Save(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockDocumentStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockBulkStore is a MockDocumentStore that also deletes in bulk
type MockBulkStore struct {
	MockDocumentStore
}

func (m *MockBulkStore) DeleteAll(ctx context.Context, keys []string) ([]string, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx, "wallet")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	body := []byte(`{"minecoins":500}`)
	require.NoError(t, s.Save(ctx, "wallet", body))
	body[2] = 'X' // caller mutations must not leak into the store

	got, err := s.Load(ctx, "wallet")
	require.NoError(t, err)
	assert.Equal(t, `{"minecoins":500}`, string(got))
	assert.Equal(t, []string{"wallet"}, s.Keys())

	require.NoError(t, s.Delete(ctx, "wallet"))
	assert.ErrorIs(t, s.Delete(ctx, "wallet"), repository.ErrDocumentNotFound)
}

func TestCachedStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(MockDocumentStore)
	inner.On("Load", ctx, "profile").Return([]byte(`{"xp":10}`), nil).Once()

	s := NewCachedStore(inner, 8, time.Minute)

	for i := 0; i < 3; i++ {
		body, err := s.Load(ctx, "profile")
		require.NoError(t, err)
		assert.Equal(t, `{"xp":10}`, string(body))
	}
	inner.AssertNumberOfCalls(t, "Load", 1)
}

func TestCachedStore_CachesMissingDocuments(t *testing.T) {
	ctx := context.Background()
	inner := new(MockDocumentStore)
	inner.On("Load", ctx, "daily_rewards").Return(nil, repository.ErrDocumentNotFound).Once()

	s := NewCachedStore(inner, 8, time.Minute)

	_, err := s.Load(ctx, "daily_rewards")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	_, err = s.Load(ctx, "daily_rewards")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	inner.AssertExpectations(t)
}

func TestCachedStore_WriteThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(MockDocumentStore)
	inner.On("Save", ctx, "wallet", []byte(`{"minecoins":1}`)).Return(nil).Once()

	s := NewCachedStore(inner, 8, time.Minute)
	require.NoError(t, s.Save(ctx, "wallet", []byte(`{"minecoins":1}`)))

	body, err := s.Load(ctx, "wallet")
	require.NoError(t, err)
	assert.Equal(t, `{"minecoins":1}`, string(body))
	inner.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestCachedStore_FailedSaveEvicts(t *testing.T) {
	ctx := context.Background()
	inner := new(MockDocumentStore)
	inner.On("Load", ctx, "wallet").Return([]byte(`{"minecoins":500}`), nil).Twice()
	inner.On("Save", ctx, "wallet", mock.Anything).Return(errors.New("connection reset")).Once()

	s := NewCachedStore(inner, 8, time.Minute)
	_, err := s.Load(ctx, "wallet")
	require.NoError(t, err)

	require.Error(t, s.Save(ctx, "wallet", []byte(`{"minecoins":100}`)))

	body, err := s.Load(ctx, "wallet")
	require.NoError(t, err)
	assert.Equal(t, `{"minecoins":500}`, string(body), "the old body must still be served")
	inner.AssertExpectations(t)
}

func TestCachedStore_DeleteAndClose(t *testing.T) {
	ctx := context.Background()
	inner := new(MockDocumentStore)
	inner.On("Save", ctx, "sbc_progress", mock.Anything).Return(nil)
	inner.On("Delete", ctx, "sbc_progress").Return(nil)
	inner.On("Load", ctx, "sbc_progress").Return(nil, repository.ErrDocumentNotFound)
	inner.On("Close").Return(nil)

	s := NewCachedStore(inner, 8, time.Minute)
	require.NoError(t, s.Save(ctx, "sbc_progress", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "sbc_progress"))

	_, err := s.Load(ctx, "sbc_progress")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	require.NoError(t, s.Close())
	inner.AssertExpectations(t)
}

func TestCachedStore_DeleteAll(t *testing.T) {
	ctx := context.Background()
	keys := []string{"wallet", "profile"}

	t.Run("forwards to a bulk store and evicts", func(t *testing.T) {
		inner := new(MockBulkStore)
		inner.On("Load", ctx, "wallet").Return([]byte(`{"minecoins":1}`), nil).Once()
		inner.On("DeleteAll", ctx, keys).Return([]string{"wallet"}, nil).Once()
		inner.On("Load", ctx, "wallet").Return(nil, repository.ErrDocumentNotFound).Once()
		s := NewCachedStore(inner, 8, time.Minute)

		_, err := s.Load(ctx, "wallet")
		require.NoError(t, err)

		deleted, err := s.DeleteAll(ctx, keys)
		require.NoError(t, err)
		assert.Equal(t, []string{"wallet"}, deleted)

		_, err = s.Load(ctx, "wallet")
		assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
		inner.AssertExpectations(t)
	})

	t.Run("reports unsupported for a plain store", func(t *testing.T) {
		inner := new(MockDocumentStore)
		s := NewCachedStore(inner, 8, time.Minute)

		_, err := s.DeleteAll(ctx, keys)
		assert.ErrorIs(t, err, repository.ErrBulkDeleteUnsupported)
		inner.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestRetryConnect(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	err := RetryConnect(ctx, "test", 3, func() error {
		attempts++
		if attempts < 2 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryConnect_GivesUp(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	err := RetryConnect(ctx, "test", 1, func() error {
		attempts++
		return errors.New("down")
	})

	require.Error(t, err)
	assert.Equal(t, 2, attempts, "one try plus one retry")
}
