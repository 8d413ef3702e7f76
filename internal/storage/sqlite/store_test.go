package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Minefut_Go/internal/repository"
)

func TestStore_BasicFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "minefut.db")
	st, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Ping(ctx))

	_, err = st.Load(ctx, repository.DocProfile)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	require.NoError(t, st.Save(ctx, repository.DocProfile, []byte(`{"xp": 250}`)))
	require.NoError(t, st.Save(ctx, repository.DocProfile, []byte(`{"xp": 300}`)))

	body, err := st.Load(ctx, repository.DocProfile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"xp": 300}`, string(body))

	require.NoError(t, st.Delete(ctx, repository.DocProfile))
	assert.ErrorIs(t, st.Delete(ctx, repository.DocProfile), repository.ErrDocumentNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "minefut.db")

	st, err := New(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, repository.DocWallet, []byte(`{"minecoins": 123}`)))
	require.NoError(t, st.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	body, err := reopened.Load(ctx, repository.DocWallet)
	require.NoError(t, err)
	assert.JSONEq(t, `{"minecoins": 123}`, string(body))
}
