package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/handler"
	"github.com/alumniconnect/portal-api/internal/service"
	"github.com/alumniconnect/portal-api/internal/store"
)

type mockForumService struct {
	service.ForumService

	lastActor service.Actor
	reply     dto.ReplyResponse
	replyErr  error
	count     dto.UnreadCountResponse
	countErr  error
}

func (m *mockForumService) CreateReply(_ context.Context, _ int, actor service.Actor, _ dto.ReplyCreateRequest) (dto.ReplyResponse, error) {
	m.lastActor = actor
	if m.replyErr != nil {
		return dto.ReplyResponse{}, m.replyErr
	}
	return m.reply, nil
}

func (m *mockForumService) UnreadCount(_ context.Context, discussionID int, actor service.Actor) (dto.UnreadCountResponse, error) {
	m.lastActor = actor
	if m.countErr != nil {
		return dto.UnreadCountResponse{}, m.countErr
	}
	return m.count, nil
}

func newForumApp(svc service.ForumService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", 7)
		c.Locals("user_role", "alumni")
		return c.Next()
	})
	handler.NewForumHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/forum"))
	return app
}

func TestForumHandler_CreateReply(t *testing.T) {
	svc := &mockForumService{reply: dto.ReplyResponse{ID: 3, DiscussionID: 1, Content: "hello"}}
	app := newForumApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forum/discussions/1/replies", strings.NewReader(`{"content":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, 7, svc.lastActor.ID)
	require.False(t, svc.lastActor.IsAdmin)

	var body struct {
		Success bool              `json:"success"`
		Data    dto.ReplyResponse `json:"data"`
		Message string            `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, 3, body.Data.ID)
}

func TestForumHandler_CreateReplyLocked(t *testing.T) {
	svc := &mockForumService{replyErr: service.ErrLocked}
	app := newForumApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forum/discussions/1/replies", strings.NewReader(`{"content":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusLocked, resp.StatusCode)
}

func TestForumHandler_UnreadCount(t *testing.T) {
	svc := &mockForumService{count: dto.UnreadCountResponse{DiscussionID: 1, UnreadCount: 4}}
	app := newForumApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forum/discussions/1/unread-count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                    `json:"success"`
		Data    dto.UnreadCountResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, 4, body.Data.UnreadCount)
}

func TestForumHandler_UnreadCountMissingDiscussion(t *testing.T) {
	svc := &mockForumService{countErr: store.ErrNotFound}
	app := newForumApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forum/discussions/99/unread-count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestForumHandler_BadDiscussionID(t *testing.T) {
	svc := &mockForumService{}
	app := newForumApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forum/discussions/abc/unread-count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}
