package auth

import "errors"

// Rejection kinds attached to requests that fail authentication. The HTTP
// layer translates these into status codes; the auth core never writes a
// response itself.
const (
	KindMalformedToken    = "MALFORMED_TOKEN"
	KindWrongTokenRole    = "WRONG_TOKEN_ROLE"
	KindBlockedToken      = "BLOCKED_TOKEN"
	KindExpiredNoRefresh  = "EXPIRED_NO_REFRESH"
	KindExpiredRenewed    = "EXPIRED_RENEWED"
	KindPrincipalNotFound = "PRINCIPAL_NOT_FOUND"
	KindStoreUnavailable  = "STORE_UNAVAILABLE"
)

var (
	// ErrMalformedToken is returned when a token cannot be parsed or its signature fails.
	ErrMalformedToken = errors.New("malformed token")

	// ErrWrongTokenRole is returned when a genuine token carries the wrong role.
	ErrWrongTokenRole = errors.New("wrong token role")

	// ErrExpiredToken is returned when a genuine token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")

	// ErrTokenBlocked is returned when a token has been revoked server-side.
	ErrTokenBlocked = errors.New("token has been blocked")

	// ErrPrincipalNotFound is returned when a token subject no longer names an account.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrStoreUnavailable is returned when the revocation store cannot be reached.
	// Callers must treat it as "cannot verify" and fail closed.
	ErrStoreUnavailable = errors.New("revocation store unavailable")
)
