package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

func documentPayload() dto.DocumentCreateRequest {
	return dto.DocumentCreateRequest{
		Title:        "Transcript",
		DocumentType: "transcript",
		FileURL:      "https://files.example.com/transcript.pdf",
	}
}

func TestDocumentCreateDefaultsToPending(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, Actor{ID: 3}, documentPayload())
	require.NoError(t, err)
	require.Equal(t, 3, created.UserID)
	require.Equal(t, models.DocumentStatusPending, created.Status)
	require.Nil(t, created.UpdatedAt)
}

func TestDocumentCreateSniffsDataURL(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	payload := documentPayload()
	// "%PDF-1.4" base64-encoded.
	payload.FileURL = "data:application/pdf;base64,JVBERi0xLjQ="

	created, err := svc.Create(ctx, Actor{ID: 3}, payload)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", created.FileType)
}

func TestDocumentVisibilityIsOwnerOrAdmin(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, Actor{ID: 3}, documentPayload())
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, Actor{ID: 4})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, created.ID, Actor{ID: 3})
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.ID, Actor{ID: 9, IsAdmin: true})
	require.NoError(t, err)
}

func TestDocumentListScopesByActor(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()
	admin := Actor{ID: 9, IsAdmin: true}

	mine, err := svc.Create(ctx, Actor{ID: 3}, documentPayload())
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, Actor{ID: 4}, documentPayload())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, theirs.ID, admin, dto.DocumentStatusRequest{Status: models.DocumentStatusApproved})
	require.NoError(t, err)

	own, err := svc.List(ctx, Actor{ID: 3}, "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, mine.ID, own[0].ID)

	all, err := svc.List(ctx, admin, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	approved, err := svc.List(ctx, admin, models.DocumentStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Equal(t, theirs.ID, approved[0].ID)
}

func TestDocumentStatusIsAdminOnly(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, Actor{ID: 3}, documentPayload())
	require.NoError(t, err)

	feedback := "Looks good"
	_, err = svc.SetStatus(ctx, created.ID, Actor{ID: 3}, dto.DocumentStatusRequest{Status: models.DocumentStatusApproved, AdminFeedback: &feedback})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetStatus(ctx, created.ID, Actor{ID: 9, IsAdmin: true}, dto.DocumentStatusRequest{Status: "published"})
	require.Error(t, err)

	decided, err := svc.SetStatus(ctx, created.ID, Actor{ID: 9, IsAdmin: true}, dto.DocumentStatusRequest{Status: models.DocumentStatusApproved, AdminFeedback: &feedback})
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusApproved, decided.Status)
	require.NotNil(t, decided.AdminFeedback)
	require.NotNil(t, decided.UpdatedAt)
}

func TestDocumentDeleteIsOwnerOrAdmin(t *testing.T) {
	svc := NewDocumentService(store.New(), testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, Actor{ID: 3}, documentPayload())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, created.ID, Actor{ID: 4}), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, created.ID, Actor{ID: 3}))
	require.ErrorIs(t, svc.Delete(ctx, created.ID, Actor{ID: 3}), store.ErrNotFound)
}
