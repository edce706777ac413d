package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/store"
)

func jobPayload() dto.JobCreateRequest {
	return dto.JobCreateRequest{
		Title:              "Backend Engineer",
		Company:            "Acme",
		Location:           "Remote",
		Description:        "Build services",
		Requirements:       "Go experience",
		ApplicationProcess: "Email your CV",
	}
}

func TestJobCreateIsOpenToAnyUserAndSanitized(t *testing.T) {
	svc := NewJobService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	payload := jobPayload()
	payload.Description = "Build <script>alert(1)</script>services"

	created, err := svc.Create(ctx, Actor{ID: 3}, payload)
	require.NoError(t, err)
	require.Equal(t, 3, created.PostedBy)
	require.NotContains(t, created.Description, "script")
}

func TestJobUpdateAndDeleteRequireOwnerOrAdmin(t *testing.T) {
	svc := NewJobService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, Actor{ID: 3}, jobPayload())
	require.NoError(t, err)

	title := "Senior Backend Engineer"
	_, err = svc.Update(ctx, created.ID, Actor{ID: 4}, dto.JobUpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, created.ID, Actor{ID: 3}, dto.JobUpdateRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Senior Backend Engineer", updated.Title)

	require.ErrorIs(t, svc.Delete(ctx, created.ID, Actor{ID: 4}), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, created.ID, Actor{ID: 9, IsAdmin: true}))
}

func TestJobListActiveOnlyExcludesExpired(t *testing.T) {
	svc := NewJobService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	expired := jobPayload()
	past := time.Now().Add(-time.Hour)
	expired.ExpiresAt = &past
	_, err := svc.Create(ctx, Actor{ID: 3}, expired)
	require.NoError(t, err)

	open, err := svc.Create(ctx, Actor{ID: 3}, jobPayload())
	require.NoError(t, err)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, open.ID, active[0].ID)
}
