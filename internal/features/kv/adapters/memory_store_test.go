package adapters

import (
	"context"
	"testing"
	"time"

	"kvcache/internal/features/kv/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 0))

	val, err := store.Get(ctx, "k", nil)
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	val, err = store.Get(ctx, "missing", "dflt")
	require.NoError(t, err)
	assert.Equal(t, "dflt", val)
}

func TestMemoryStore_TTLIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", -time.Hour))

	val, err := store.Get(ctx, "k", nil)
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	deleted, err := store.Delete(ctx, "never-set")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	deleted, err = store.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a", 1, 0))
	require.NoError(t, store.Clear(ctx))

	ok, err := store.Has(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Clear(ctx))
}

func TestMemoryStore_GetMultiple(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "b", "set", 0))

	out, err := store.GetMultiple(ctx, []string{"a", "b", "c"}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 0, "b": "set", "c": 0}, out)
}

func TestMemoryStore_DeleteMultipleReportsMisses(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetMultiple(ctx, map[string]any{"a": 1, "b": 2}, 0))

	// Unlike the file variants, one missed delete fails the whole batch.
	deleted, err := store.DeleteMultiple(ctx, []string{"a", "b", "never-set"})
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, store.SetMultiple(ctx, map[string]any{"x": 1, "y": 2}, 0))
	deleted, err = store.DeleteMultiple(ctx, []string{"x", "y"})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMemoryStore_EmptyKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.ErrorIs(t, store.Set(ctx, "", "v", 0), domain.ErrInvalidKey)

	_, err := store.Get(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)

	_, err = store.DeleteMultiple(ctx, []string{"ok", ""})
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}
