package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-auth/internal/domain"
	"github.com/spec-kit/storefront-auth/internal/repository"
)

// Principal represents the authenticated caller for the lifetime of one
// request. Exactly one of User or Admin is set, matching Kind.
type Principal struct {
	Kind  domain.SubjectKind
	User  *domain.User
	Admin *domain.Admin
}

// Subject returns the identifier the principal's tokens carry.
func (p *Principal) Subject() string {
	if p.Kind == domain.SubjectKindUser && p.User != nil {
		return p.User.Email
	}
	if p.Admin != nil {
		return p.Admin.ID
	}
	return ""
}

// Authorities returns the authority list of the underlying record. The auth
// core does not interpret its contents.
func (p *Principal) Authorities() []string {
	if p.Kind == domain.SubjectKindUser && p.User != nil {
		return p.User.Authorities
	}
	if p.Admin != nil {
		return p.Admin.Authorities
	}
	return nil
}

// PrincipalResolver loads the principal a token subject names. It performs
// exactly one store lookup and no caching.
type PrincipalResolver struct {
	users  repository.UserRepository
	admins repository.AdminRepository
}

// NewPrincipalResolver constructs a resolver over the two lookup contracts.
func NewPrincipalResolver(users repository.UserRepository, admins repository.AdminRepository) *PrincipalResolver {
	return &PrincipalResolver{users: users, admins: admins}
}

// Resolve dispatches on the subject's shape and loads the matching record.
// A subject whose account no longer exists yields ErrPrincipalNotFound; this
// is an authentication failure, not a server error.
func (r *PrincipalResolver) Resolve(ctx context.Context, subject string) (*Principal, error) {
	switch SubjectKindOf(subject) {
	case domain.SubjectKindUser:
		user, err := r.users.GetByEmail(ctx, subject)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrPrincipalNotFound
			}
			return nil, err
		}
		return &Principal{Kind: domain.SubjectKindUser, User: user}, nil
	default:
		admin, err := r.admins.GetByID(ctx, subject)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrPrincipalNotFound
			}
			return nil, err
		}
		return &Principal{Kind: domain.SubjectKindAdmin, Admin: admin}, nil
	}
}
