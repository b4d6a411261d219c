package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

// TokenCodec issues and verifies signed bearer tokens. Access and refresh
// tokens are signed with independent secrets so a leaked key for one role
// cannot forge tokens of the other.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenCodec builds a codec. TTL arguments are the per-role defaults
// exposed through AccessTTL and RefreshTTL for issue-time callers.
func NewTokenCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock overrides the codec's clock. Intended for tests that need to sit
// exactly on the expiry boundary.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

// Claims describes the JWT payload.
type Claims struct {
	Role domain.TokenRole `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject expiring ttl from now. The
// ttl is honored literally; a zero ttl yields a token that is already expired
// (the boundary is inclusive).
func (c *TokenCodec) Issue(subject string, role domain.TokenRole, ttl time.Duration) (string, *domain.Token, error) {
	secret, err := c.secretFor(role)
	if err != nil {
		return "", nil, err
	}

	now := c.now()
	meta := &domain.Token{
		ID:        uuid.NewString(),
		Subject:   subject,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        meta.ID,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(meta.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(meta.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", nil, err
	}
	return signed, meta, nil
}

// Decode verifies a token string against the secret for its declared role and
// checks the role matches the expected one. Expiry is checked last with an
// inclusive boundary (a token expiring exactly now is expired); an expired but
// otherwise genuine token is returned alongside ErrExpiredToken so the renewal
// path can still read its subject.
func (c *TokenCodec) Decode(tokenString string, expected domain.TokenRole) (*domain.Token, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, ErrMalformedToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedToken
	}
	if claims.ExpiresAt == nil || claims.Subject == "" {
		return nil, ErrMalformedToken
	}
	if claims.Role != expected {
		return nil, ErrWrongTokenRole
	}

	meta := &domain.Token{
		ID:        claims.ID,
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		meta.IssuedAt = claims.IssuedAt.Time
	}

	if !c.now().Before(meta.ExpiresAt) {
		return meta, ErrExpiredToken
	}
	return meta, nil
}

// keyFunc picks the verification secret from the token's own role claim. A
// forged role claim simply selects the wrong secret and fails verification.
func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrMalformedToken
	}
	return c.secretFor(claims.Role)
}

func (c *TokenCodec) secretFor(role domain.TokenRole) ([]byte, error) {
	switch role {
	case domain.TokenRoleAccess:
		return c.accessSecret, nil
	case domain.TokenRoleRefresh:
		return c.refreshSecret, nil
	default:
		return nil, ErrMalformedToken
	}
}

// AccessTTL exposes the default access-token lifetime for renewal callers.
func (c *TokenCodec) AccessTTL() time.Duration {
	return c.accessTTL
}

// RefreshTTL exposes the default refresh-token lifetime.
func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}
