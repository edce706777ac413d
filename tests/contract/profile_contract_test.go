package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/handler"
	"github.com/alumniconnect/portal-api/internal/service"
)

type stubUserService struct {
	service.UserService

	response dto.UserResponse
}

func (s stubUserService) Get(context.Context, int) (dto.UserResponse, error) {
	return s.response, nil
}

func compileSchema(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", name))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)
	return schema
}

func validateResponse(t *testing.T, schema *jsonschema.Schema, resp *http.Response) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}

func TestUserProfileContract(t *testing.T) {
	schema := compileSchema(t, "user_profile.schema.json")

	bio := "Class of 2015, now shipping backend services."
	year := 2015
	svc := stubUserService{response: dto.UserResponse{
		ID:             7,
		Username:       "ana.silva",
		Email:          "ana@example.com",
		Name:           "Ana Silva",
		IsAdmin:        false,
		Role:           "alumni",
		CreatedAt:      time.Now().UTC(),
		Bio:            &bio,
		GraduationYear: &year,
	}}

	app := fiber.New()
	group := app.Group("/api/v1/users", func(c *fiber.Ctx) error {
		c.Locals("user_id", 7)
		c.Locals("user_role", "alumni")
		return c.Next()
	})
	handler.NewUserHandler(svc, zerolog.Nop()).Register(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	validateResponse(t, schema, resp)
}
