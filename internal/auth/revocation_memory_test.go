package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	require.NoError(t, store.Block(ctx, "token-1", time.Minute))
	require.NoError(t, store.Block(ctx, "token-1", time.Minute))

	blocked, err := store.IsBlocked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestBlockWithNonPositiveTTLIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	require.NoError(t, store.Block(ctx, "token-1", 0))

	blocked, err := store.IsBlocked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestEntriesExpireWithTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRevocationStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Block(ctx, "token-1", time.Minute))
	require.NoError(t, store.RegisterRefresh(ctx, "alice@example.com", time.Minute))

	now = now.Add(2 * time.Minute)

	blocked, err := store.IsBlocked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, blocked)

	has, err := store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRegisterAndClearRefresh(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	has, err := store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.RegisterRefresh(ctx, "alice@example.com", time.Hour))

	has, err = store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, store.ClearRefresh(ctx, "alice@example.com"))

	has, err = store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRefreshEntriesAreKeyedBySubject(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	require.NoError(t, store.RegisterRefresh(ctx, "alice@example.com", time.Hour))

	has, err := store.HasRefresh(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, has)
}
