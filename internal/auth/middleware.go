package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-auth/internal/domain"
	"github.com/spec-kit/storefront-auth/internal/events"
	"github.com/spec-kit/storefront-auth/internal/observability"
	apperrors "github.com/spec-kit/storefront-auth/pkg/util/errorutil"
)

const (
	principalKey = "auth_principal"
	rejectionKey = "auth_rejection"

	// HeaderRenewedToken carries a freshly issued access token back to the
	// caller when an expired token was eligible for renewal. The rejected
	// request must be retried with this token.
	HeaderRenewedToken = "X-Renewed-Access-Token"

	// HeaderTokenStatus distinguishes "expired, renewed" from "expired, no
	// refresh available" on the expiry path.
	HeaderTokenStatus = "X-Token-Status"

	TokenStatusRenewed = "renewed"
	TokenStatusExpired = "expired"
)

// AuthMiddleware validates bearer tokens, consults the revocation store,
// resolves principals, and renews expired access tokens for subjects that
// still hold a live refresh credential.
type AuthMiddleware struct {
	codec       *TokenCodec
	revocations RevocationStore
	resolver    *PrincipalResolver
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
}

// NewAuthMiddleware constructs the middleware. Dispatcher and metrics may be
// nil.
func NewAuthMiddleware(codec *TokenCodec, revocations RevocationStore, resolver *PrincipalResolver, dispatcher events.Dispatcher, metrics *observability.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		codec:       codec,
		revocations: revocations,
		resolver:    resolver,
		dispatcher:  dispatcher,
		metrics:     metrics,
	}
}

// Handle runs the per-request authentication pass. Requests without a bearer
// token proceed unauthenticated; downstream guards decide whether that is
// acceptable. The block check always precedes decoding, and decoding always
// precedes resolution or renewal.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return c.Next()
	}

	ctx := c.Context()

	blocked, err := m.revocations.IsBlocked(ctx, tokenString)
	if err != nil {
		return m.reject(c, KindStoreUnavailable, err)
	}
	if blocked {
		return m.reject(c, KindBlockedToken, ErrTokenBlocked)
	}

	decoded, err := m.codec.Decode(tokenString, domain.TokenRoleAccess)
	switch {
	case errors.Is(err, ErrExpiredToken):
		return m.renew(c, decoded)
	case errors.Is(err, ErrWrongTokenRole):
		return m.reject(c, KindWrongTokenRole, err)
	case err != nil:
		return m.reject(c, KindMalformedToken, ErrMalformedToken)
	}

	principal, err := m.resolver.Resolve(ctx, decoded.Subject)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return m.reject(c, KindPrincipalNotFound, err)
		}
		return m.reject(c, KindStoreUnavailable, err)
	}

	c.Locals(principalKey, principal)
	if m.metrics != nil {
		m.metrics.RecordAuthOutcome("AUTHENTICATED")
	}
	return c.Next()
}

// renew handles an expired but genuine access token. The current request is
// still rejected either way; when the subject holds a live refresh credential
// a new access token is attached as a response side channel so the caller can
// retry without a full re-login.
func (m *AuthMiddleware) renew(c *fiber.Ctx, expired *domain.Token) error {
	has, err := m.revocations.HasRefresh(c.Context(), expired.Subject)
	if err != nil {
		return m.reject(c, KindStoreUnavailable, err)
	}
	if !has {
		c.Set(HeaderTokenStatus, TokenStatusExpired)
		return m.reject(c, KindExpiredNoRefresh, ErrExpiredToken)
	}

	renewed, meta, err := m.codec.Issue(expired.Subject, domain.TokenRoleAccess, m.codec.AccessTTL())
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Set(HeaderRenewedToken, renewed)
	c.Set(HeaderTokenStatus, TokenStatusRenewed)

	if m.dispatcher != nil {
		_ = m.dispatcher.Publish(c.Context(), events.NewSessionRenewed(expired.Subject, SubjectKindOf(expired.Subject), events.SessionRenewedPayload{
			ExpiredAt:    expired.ExpiresAt,
			NewExpiresAt: meta.ExpiresAt,
		}))
	}
	return m.reject(c, KindExpiredRenewed, ErrExpiredToken)
}

func (m *AuthMiddleware) reject(c *fiber.Ctx, kind string, cause error) error {
	c.Locals(rejectionKey, kind)
	if m.metrics != nil {
		m.metrics.RecordAuthOutcome(kind)
	}
	if kind == KindStoreUnavailable {
		return apperrors.NewUnavailable("cannot verify token", cause)
	}
	return apperrors.NewAuthRejection(kind, cause.Error())
}

// bearerToken extracts the token from an Authorization header. Anything that
// is not a bearer credential counts as an unauthenticated request, not an
// error.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// PrincipalFromContext retrieves the authenticated principal, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok
}

// RejectionFromContext retrieves the rejection kind recorded for the request.
func RejectionFromContext(c *fiber.Ctx) (string, bool) {
	kind, ok := c.Locals(rejectionKey).(string)
	return kind, ok
}
