package auth

import (
	"context"
	"time"
)

// RevocationStore records revoked access tokens and pending refresh
// availability in an external cache. Entry lifecycle is owned by the cache's
// TTL mechanism: callers only insert and query, they never clean up expired
// entries themselves.
//
// Any backend failure surfaces as ErrStoreUnavailable. Readers must treat it
// as "cannot verify" and reject; writers must propagate it, since a logout
// that silently no-ops would resurrect a revoked session.
type RevocationStore interface {
	// Block marks an access token unusable for the remainder of its natural
	// life. Blocking an already-blocked token is a no-op.
	Block(ctx context.Context, tokenString string, ttl time.Duration) error

	// IsBlocked reports whether the exact token string has been blocked.
	IsBlocked(ctx context.Context, tokenString string) (bool, error)

	// RegisterRefresh marks that the subject holds a live refresh token.
	RegisterRefresh(ctx context.Context, subject string, ttl time.Duration) error

	// HasRefresh reports whether the subject still holds a live refresh token.
	HasRefresh(ctx context.Context, subject string) (bool, error)

	// ClearRefresh drops the subject's refresh entry, ending its renewal
	// eligibility before the entry's natural expiry.
	ClearRefresh(ctx context.Context, subject string) error
}
