package handler_test

import (
	"context"
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
)

type mockAuthService struct {
	service.AuthService

	registerResponse dto.AuthResponse
	registerErr      error
	loginResponse    dto.AuthResponse
	loginErr         error
}

func (m *mockAuthService) Register(_ context.Context, _ dto.RegisterRequest) (dto.AuthResponse, error) {
	if m.registerErr != nil {
		return dto.AuthResponse{}, m.registerErr
	}
	return m.registerResponse, nil
}

func (m *mockAuthService) Login(_ context.Context, _ dto.LoginRequest) (dto.AuthResponse, error) {
	if m.loginErr != nil {
		return dto.AuthResponse{}, m.loginErr
	}
	return m.loginResponse, nil
}

func newAuthApp(svc service.AuthService) *fiber.App {
	app := fiber.New()
	handler.NewAuthHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/auth"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	svc := &mockAuthService{registerResponse: dto.AuthResponse{
		Token: "token",
		User:  dto.UserResponse{ID: 1, Username: "ana"},
	}}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/v1/auth/register", `{"username":"ana","email":"ana@example.com","password":"secret123","name":"Ana Silva"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "token", body.Data.Token)
	require.Equal(t, "ana", body.Data.User.Username)
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	svc := &mockAuthService{registerErr: service.ErrDuplicateUser}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/v1/auth/register", `{"username":"ana","email":"ana@example.com","password":"secret123","name":"Ana Silva"}`)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrCredentials}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/v1/auth/login", `{"username":"ana","password":"wrong"}`)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_LoginMalformedBody(t *testing.T) {
	svc := &mockAuthService{}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/v1/auth/login", `{"username":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
