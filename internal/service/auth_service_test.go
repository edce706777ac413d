package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/store"
)

func newAuthService(st *store.Store) AuthService {
	return NewAuthService(st, testValidator(), "test-secret", time.Hour, testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	st := store.New()
	svc := newAuthService(st)
	ctx := context.Background()

	registered, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "jdoe",
		Password: "correct horse",
		Email:    "JDoe@Example.com",
		Name:     "Jane Doe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, "jdoe", registered.User.Username)
	require.Equal(t, "jdoe@example.com", registered.User.Email)
	require.False(t, registered.User.IsAdmin)

	// The stored password is a hash, never the raw input.
	stored, err := st.GetUserByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", stored.Password)
	require.NotEmpty(t, stored.Password)

	loggedIn, err := svc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, loggedIn.Token)
	require.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newAuthService(store.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "jdoe", Password: "password1", Email: "jdoe@example.com", Name: "Jane",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "jdoe", Password: "password1", Email: "other@example.com", Name: "Jane",
	})
	require.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "other", Password: "password1", Email: "jdoe@example.com", Name: "Jane",
	})
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(store.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "jdoe", Password: "password1", Email: "jdoe@example.com", Name: "Jane",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "wrong"})
	require.ErrorIs(t, err, ErrCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "password1"})
	require.ErrorIs(t, err, ErrCredentials)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	st := store.New()
	svc := newAuthService(st)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret-s3cret", "admin@university.edu"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret-s3cret", "admin@university.edu"))

	admin, err := st.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)
	require.Len(t, st.ListUsers(ctx), 1)

	// No password configured means no bootstrap account.
	empty := store.New()
	require.NoError(t, newAuthService(empty).EnsureAdmin(ctx, "admin", "", "admin@university.edu"))
	require.Empty(t, empty.ListUsers(ctx))
}
