package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

func TestPublishReachesSubscribersOfMatchingType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var renewed, revoked int
	dispatcher.Subscribe(EventSessionRenewed, func(context.Context, Event) error {
		renewed++
		return nil
	})
	dispatcher.Subscribe(EventSessionRevoked, func(context.Context, Event) error {
		revoked++
		return nil
	})

	event := NewSessionRenewed("alice@example.com", domain.SubjectKindUser, SessionRenewedPayload{})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	assert.Equal(t, 1, renewed)
	assert.Equal(t, 0, revoked)
	assert.NotEmpty(t, event.ID)
}

func TestHandlerErrorDoesNotStopOtherHandlers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventSessionRevoked, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventSessionRevoked, func(context.Context, Event) error {
		called = true
		return nil
	})

	event := NewSessionRevoked("admin42", domain.SubjectKindAdmin, SessionRevokedPayload{})
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	assert.True(t, called)
}
