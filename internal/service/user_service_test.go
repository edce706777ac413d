package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

func seedUser(t *testing.T, st *store.Store, username, name string) models.User {
	t.Helper()
	return st.CreateUser(context.Background(), models.User{
		Username: username,
		Password: "hash",
		Email:    username + "@example.com",
		Name:     name,
	})
}

func TestUserUpdateRequiresOwnerOrAdmin(t *testing.T) {
	st := store.New()
	svc := NewUserService(st, testValidator(), testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "ana", "Ana Silva")

	bio := "Hello there"
	_, err := svc.Update(ctx, user.ID, Actor{ID: user.ID + 1}, dto.UserUpdateRequest{Bio: &bio})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, user.ID, Actor{ID: user.ID}, dto.UserUpdateRequest{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	require.Equal(t, "Hello there", *updated.Bio)

	company := "Acme"
	updated, err = svc.Update(ctx, user.ID, Actor{ID: 999, IsAdmin: true}, dto.UserUpdateRequest{Company: &company})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	require.NotNil(t, updated.Company)
}

func TestUserDeleteIsAdminOnly(t *testing.T) {
	st := store.New()
	svc := NewUserService(st, testValidator(), testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "ana", "Ana Silva")

	err := svc.Delete(ctx, user.ID, Actor{ID: user.ID})
	require.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, user.ID, Actor{ID: 999, IsAdmin: true}))

	_, err = svc.Get(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Delete(ctx, user.ID, Actor{ID: 999, IsAdmin: true})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserSearchEnforcesMinimumTermLength(t *testing.T) {
	st := store.New()
	svc := NewUserService(st, testValidator(), testLogger())
	ctx := context.Background()

	ana := seedUser(t, st, "ana", "Ana Silva")
	bruno := seedUser(t, st, "bruno", "Bruno Costa")

	first, last := "Ana", "Silva"
	_, err := st.UpdateUser(ctx, ana.ID, store.UserUpdate{FirstName: &first, LastName: &last})
	require.NoError(t, err)
	bFirst, bLast := "Bruno", "Costa"
	_, err = st.UpdateUser(ctx, bruno.ID, store.UserUpdate{FirstName: &bFirst, LastName: &bLast})
	require.NoError(t, err)

	_, err = svc.Search(ctx, "a")
	require.ErrorIs(t, err, ErrSearchTermTooShort)

	_, err = svc.Search(ctx, "  a  ")
	require.ErrorIs(t, err, ErrSearchTermTooShort)

	results, err := svc.Search(ctx, "silva")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Ana Silva", results[0].Name)
}
