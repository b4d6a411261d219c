package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

type stubAdminRepo struct {
	admins map[string]*domain.Admin
	err    error
	calls  int
}

func (r *stubAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if admin, ok := r.admins[id]; ok {
		return admin, nil
	}
	return nil, pgx.ErrNoRows
}

func TestResolveUserByEmail(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"alice@example.com": {ID: "u-1", Email: "alice@example.com", Authorities: []string{"ROLE_USER"}},
	}}
	admins := &stubAdminRepo{}
	resolver := NewPrincipalResolver(users, admins)

	principal, err := resolver.Resolve(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectKindUser, principal.Kind)
	assert.Equal(t, "alice@example.com", principal.Subject())
	assert.Equal(t, []string{"ROLE_USER"}, principal.Authorities())
	assert.Nil(t, principal.Admin)

	// Exactly one lookup, on the user side.
	assert.Equal(t, 1, users.calls)
	assert.Equal(t, 0, admins.calls)
}

func TestResolveAdminByID(t *testing.T) {
	users := &stubUserRepo{}
	admins := &stubAdminRepo{admins: map[string]*domain.Admin{
		"admin42": {ID: "admin42", Authorities: []string{"ROLE_ADMIN"}},
	}}
	resolver := NewPrincipalResolver(users, admins)

	principal, err := resolver.Resolve(context.Background(), "admin42")
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectKindAdmin, principal.Kind)
	assert.Equal(t, "admin42", principal.Subject())
	assert.Nil(t, principal.User)

	assert.Equal(t, 0, users.calls)
	assert.Equal(t, 1, admins.calls)
}

func TestResolveMissingAccountIsNotFound(t *testing.T) {
	resolver := NewPrincipalResolver(&stubUserRepo{}, &stubAdminRepo{})

	_, err := resolver.Resolve(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)

	_, err = resolver.Resolve(context.Background(), "admin42")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := NewPrincipalResolver(&stubUserRepo{err: storeErr}, &stubAdminRepo{})

	_, err := resolver.Resolve(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, storeErr)
}
