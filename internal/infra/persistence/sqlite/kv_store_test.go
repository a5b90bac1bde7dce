package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ", discardLogger())
	assert.Error(t, err)
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "kv.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, found, err := store.Get(ctx, "cars_inventory")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "cars_inventory", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "cars_inventory", []byte(`[1,2]`)))

	value, found, err := store.Get(ctx, "cars_inventory")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[1,2]`, string(value))

	require.NoError(t, store.Delete(ctx, "cars_inventory"))
	require.NoError(t, store.Delete(ctx, "cars_inventory"))

	_, found, err = store.Get(ctx, "cars_inventory")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := Open(path, discardLogger())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user", []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, found, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"email":"a@b.c"}`, string(value))
}
