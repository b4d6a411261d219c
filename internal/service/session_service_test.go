package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-auth/internal/auth"
	"github.com/spec-kit/storefront-auth/internal/domain"
	"github.com/spec-kit/storefront-auth/internal/events"
)

func newTestService(store auth.RevocationStore, dispatcher events.Dispatcher) *SessionService {
	codec := auth.NewTokenCodec("access-secret", "refresh-secret", 30*time.Minute, 24*time.Hour)
	return NewSessionService(codec, store, dispatcher)
}

func TestEstablishIssuesPairAndRegistersRefresh(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryRevocationStore()
	svc := newTestService(store, nil)

	pair, err := svc.Establish(ctx, "alice@example.com")
	require.NoError(t, err)

	access, err := svc.codec.Decode(pair.AccessToken, domain.TokenRoleAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", access.Subject)

	refresh, err := svc.codec.Decode(pair.RefreshToken, domain.TokenRoleRefresh)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", refresh.Subject)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt))

	has, err := store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestLogoutBlocksTokenAndEndsRenewal(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryRevocationStore()
	svc := newTestService(store, nil)

	pair, err := svc.Establish(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.AccessToken))

	blocked, err := store.IsBlocked(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, blocked)

	has, err := store.HasRefresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, has)

	// Logging out twice observes the same state.
	require.NoError(t, svc.Logout(ctx, pair.AccessToken))
	blocked, err = store.IsBlocked(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestLogoutAcceptsExpiredToken(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryRevocationStore()
	svc := newTestService(store, nil)

	require.NoError(t, store.RegisterRefresh(ctx, "admin42", time.Hour))

	expired, _, err := svc.codec.Issue("admin42", domain.TokenRoleAccess, 0)
	require.NoError(t, err)

	// The token itself has nothing left to block, but renewal eligibility
	// must still end.
	require.NoError(t, svc.Logout(ctx, expired))

	has, err := store.HasRefresh(ctx, "admin42")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	svc := newTestService(auth.NewMemoryRevocationStore(), nil)

	err := svc.Logout(context.Background(), "garbage")
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}

type failingStore struct {
	auth.RevocationStore
}

func (failingStore) Block(context.Context, string, time.Duration) error {
	return auth.ErrStoreUnavailable
}

func TestLogoutPropagatesStoreFailure(t *testing.T) {
	svc := newTestService(failingStore{auth.NewMemoryRevocationStore()}, nil)

	token, _, err := svc.codec.Issue("alice@example.com", domain.TokenRoleAccess, time.Hour)
	require.NoError(t, err)

	err = svc.Logout(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrStoreUnavailable)
}

func TestLifecycleEventsArePublished(t *testing.T) {
	ctx := context.Background()
	dispatcher := events.NewInMemoryDispatcher()

	var seen []events.EventType
	record := func(_ context.Context, event events.Event) error {
		seen = append(seen, event.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventSessionEstablished, record)
	dispatcher.Subscribe(events.EventSessionRevoked, record)

	svc := newTestService(auth.NewMemoryRevocationStore(), dispatcher)

	pair, err := svc.Establish(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, pair.AccessToken))

	assert.Equal(t, []events.EventType{events.EventSessionEstablished, events.EventSessionRevoked}, seen)
}
