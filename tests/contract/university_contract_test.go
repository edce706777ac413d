package contract_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/handler"
	"github.com/alumniconnect/portal-api/internal/service"
)

type stubUniversityService struct {
	service.UniversityService

	response dto.UniversityResponse
}

func (s stubUniversityService) Get(context.Context) (dto.UniversityResponse, error) {
	return s.response, nil
}

func TestUniversityInfoContract(t *testing.T) {
	schema := compileSchema(t, "university_info.schema.json")

	svc := stubUniversityService{response: dto.UniversityResponse{
		ID:         1,
		Name:       "State University",
		Email:      "contact@university.edu",
		Phone:      "+1 555 0100",
		Address:    "1 Campus Way",
		WebsiteURL: "https://university.edu",
		Vision:     "Lead through learning",
		Mission:    "Educate and connect",
		UpdatedAt:  time.Now().UTC(),
		UpdatedBy:  1,
	}}

	app := fiber.New()
	handler.NewUniversityHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/university"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/university/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	validateResponse(t, schema, resp)
}
