package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/store"
)

func TestUniversityUpdateIsAdminOnlyAndPartial(t *testing.T) {
	svc := NewUniversityService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	name := "State University"
	_, err := svc.Update(ctx, Actor{ID: 1}, dto.UniversityUpdateRequest{Name: &name})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, Actor{ID: 9, IsAdmin: true}, dto.UniversityUpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "State University", updated.Name)
	require.Equal(t, 9, updated.UpdatedBy)

	vision := "Lead through learning"
	updated, err = svc.Update(ctx, Actor{ID: 9, IsAdmin: true}, dto.UniversityUpdateRequest{Vision: &vision})
	require.NoError(t, err)
	require.Equal(t, "State University", updated.Name)
	require.Equal(t, "Lead through learning", updated.Vision)

	current, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, updated, current)
}
