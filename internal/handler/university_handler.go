package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/service"
	"github.com/alumniconnect/portal-api/internal/utils"
)

// UniversityHandler provides HTTP endpoints for the university record.
type UniversityHandler struct {
	service service.UniversityService
	logger  zerolog.Logger
}

// NewUniversityHandler constructs a handler instance.
func NewUniversityHandler(service service.UniversityService, logger zerolog.Logger) *UniversityHandler {
	return &UniversityHandler{
		service: service,
		logger:  logger.With().Str("component", "university_handler").Logger(),
	}
}

// Register binds the public route.
func (h *UniversityHandler) Register(router fiber.Router) {
	router.Get("/", h.get)
}

// RegisterProtected binds the admin-only update route.
func (h *UniversityHandler) RegisterProtected(router fiber.Router) {
	router.Put("/", h.update)
}

func (h *UniversityHandler) get(c *fiber.Ctx) error {
	ctx := withRequestContext(c)

	info, err := h.service.Get(ctx)
	if err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendSuccess(c, "university info", info)
}

func (h *UniversityHandler) update(c *fiber.Ctx) error {
	var payload dto.UniversityUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	info, err := h.service.Update(ctx, actorFromContext(c), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case isValidationError(err):
			status = fiber.StatusBadRequest
		}
		return utils.SendError(c, status, err.Error())
	}

	requestLogger(h.logger, c).Info().Msg("university info updated")

	return utils.SendSuccess(c, "university info updated", info)
}
