package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/storefront-auth/internal/auth"
	"github.com/spec-kit/storefront-auth/internal/domain"
	"github.com/spec-kit/storefront-auth/internal/events"
)

// TokenPair bundles the credentials handed to a caller after login.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// SessionService exposes the callable session lifecycle operations. The
// upstream login flow (password or OAuth, outside this core) verifies
// credentials first and then calls Establish; Logout revokes the presented
// access token server-side.
type SessionService struct {
	codec       *auth.TokenCodec
	revocations auth.RevocationStore
	dispatcher  events.Dispatcher
	now         func() time.Time
}

// NewSessionService builds the service. Dispatcher may be nil.
func NewSessionService(codec *auth.TokenCodec, revocations auth.RevocationStore, dispatcher events.Dispatcher) *SessionService {
	return &SessionService{
		codec:       codec,
		revocations: revocations,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

// Establish issues an access/refresh token pair for an already-authenticated
// subject and registers the subject's refresh availability so expired access
// tokens can be renewed for as long as the refresh token lives.
func (s *SessionService) Establish(ctx context.Context, subject string) (*TokenPair, error) {
	refreshToken, refreshMeta, err := s.codec.Issue(subject, domain.TokenRoleRefresh, s.codec.RefreshTTL())
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	accessToken, accessMeta, err := s.codec.Issue(subject, domain.TokenRoleAccess, s.codec.AccessTTL())
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	if err := s.revocations.RegisterRefresh(ctx, subject, refreshMeta.RemainingLife(s.now())); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewSessionEstablished(subject, auth.SubjectKindOf(subject), events.SessionEstablishedPayload{
			AccessExpiresAt:  accessMeta.ExpiresAt,
			RefreshExpiresAt: refreshMeta.ExpiresAt,
		}))
	}

	return &TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessMeta.ExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshMeta.ExpiresAt,
	}, nil
}

// Logout blocks the presented access token for the remainder of its natural
// life and ends the subject's renewal eligibility. A store failure propagates
// as a hard error: silently failing to revoke would resurrect the session.
func (s *SessionService) Logout(ctx context.Context, accessToken string) error {
	meta, err := s.codec.Decode(accessToken, domain.TokenRoleAccess)
	if err != nil && !errors.Is(err, auth.ErrExpiredToken) {
		return err
	}

	if err := s.revocations.Block(ctx, accessToken, meta.RemainingLife(s.now())); err != nil {
		return err
	}
	if err := s.revocations.ClearRefresh(ctx, meta.Subject); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewSessionRevoked(meta.Subject, auth.SubjectKindOf(meta.Subject), events.SessionRevokedPayload{
			TokenExpiresAt: meta.ExpiresAt,
		}))
	}
	return nil
}
