package domain

import "time"

// SubjectKind differentiates the two principal namespaces a token subject can name.
type SubjectKind string

const (
	SubjectKindUser  SubjectKind = "USER"
	SubjectKindAdmin SubjectKind = "ADMIN"
)

// TokenRole distinguishes access tokens from refresh tokens.
type TokenRole string

const (
	TokenRoleAccess  TokenRole = "ACCESS"
	TokenRoleRefresh TokenRole = "REFRESH"
)

// Token carries the decoded metadata of an issued token.
type Token struct {
	ID        string
	Subject   string
	Role      TokenRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RemainingLife returns how long the token stays naturally valid from now.
func (t Token) RemainingLife(now time.Time) time.Duration {
	return t.ExpiresAt.Sub(now)
}
