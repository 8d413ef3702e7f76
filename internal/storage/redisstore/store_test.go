package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/repository"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := New(client, Config{Prefix: "minefut:"})
	t.Cleanup(func() { _ = st.Close() })
	return st, mr
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStore(t)

	require.NoError(t, st.Ping(ctx))

	_, err := st.Load(ctx, repository.DocCollection)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	require.NoError(t, st.Save(ctx, repository.DocCollection, []byte(`{"owned":{"Wirtz":2}}`)))

	raw, err := mr.Get("minefut:collection")
	require.NoError(t, err)
	assert.Equal(t, `{"owned":{"Wirtz":2}}`, raw)

	body, err := st.Load(ctx, repository.DocCollection)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owned":{"Wirtz":2}}`, string(body))

	require.NoError(t, st.Delete(ctx, repository.DocCollection))
	assert.False(t, mr.Exists("minefut:collection"))
	assert.ErrorIs(t, st.Delete(ctx, repository.DocCollection), repository.ErrDocumentNotFound)
}

func TestStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStore(t)
	mr.Close()

	_, err := st.Load(ctx, repository.DocWallet)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDocumentNotFound)
}
