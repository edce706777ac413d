package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/service"
	"github.com/alumniconnect/portal-api/internal/store"
	"github.com/alumniconnect/portal-api/internal/utils"
)

// DocumentHandler provides HTTP endpoints for document review.
type DocumentHandler struct {
	service service.DocumentService
	logger  zerolog.Logger
}

// NewDocumentHandler constructs a handler instance.
func NewDocumentHandler(service service.DocumentService, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger.With().Str("component", "document_handler").Logger(),
	}
}

// Register binds the document routes.
func (h *DocumentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id/status", h.setStatus)
	router.Delete("/:id", h.delete)
}

func (h *DocumentHandler) list(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))

	ctx := withRequestContext(c)

	documents, err := h.service.List(ctx, actorFromContext(c), status)
	if err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendSuccess(c, "documents", documents)
}

func (h *DocumentHandler) create(c *fiber.Ctx) error {
	var payload dto.DocumentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	document, err := h.service.Create(ctx, actorFromContext(c), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		if isValidationError(err) {
			status = fiber.StatusBadRequest
		}
		return utils.SendError(c, status, err.Error())
	}

	requestLogger(h.logger, c).Info().Int("document_id", document.ID).Msg("document submitted")

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "document submitted", document)
}

func (h *DocumentHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	document, err := h.service.Get(ctx, id, actorFromContext(c))
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "document", document)
}

func (h *DocumentHandler) setStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.DocumentStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	document, err := h.service.SetStatus(ctx, id, actorFromContext(c), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		case isValidationError(err):
			status = fiber.StatusBadRequest
		}
		return utils.SendError(c, status, err.Error())
	}

	requestLogger(h.logger, c).Info().Int("document_id", id).Str("status", document.Status).Msg("review decision recorded")

	return utils.SendSuccess(c, "review decision recorded", document)
}

func (h *DocumentHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	if err := h.service.Delete(ctx, id, actorFromContext(c)); err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "document deleted", nil)
}
