package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/service"
	"github.com/alumniconnect/portal-api/internal/store"
	"github.com/alumniconnect/portal-api/internal/utils"
)

// GalleryHandler provides HTTP endpoints for photo galleries.
type GalleryHandler struct {
	service service.GalleryService
	logger  zerolog.Logger
}

// NewGalleryHandler constructs a handler instance.
func NewGalleryHandler(service service.GalleryService, logger zerolog.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		logger:  logger.With().Str("component", "gallery_handler").Logger(),
	}
}

// Register binds the gallery routes.
func (h *GalleryHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)

	router.Get("/:id/images", h.listImages)
	router.Post("/:id/images", h.addImage)
	router.Delete("/:id/images/:imageID", h.removeImage)
}

func (h *GalleryHandler) list(c *fiber.Ctx) error {
	ctx := withRequestContext(c)

	galleries, err := h.service.List(ctx)
	if err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendSuccess(c, "galleries", galleries)
}

func (h *GalleryHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	gallery, err := h.service.Get(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "gallery", gallery)
}

func (h *GalleryHandler) create(c *fiber.Ctx) error {
	var payload dto.GalleryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	gallery, err := h.service.Create(ctx, actorFromContext(c), payload)
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

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "gallery created", gallery)
}

func (h *GalleryHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.GalleryUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	gallery, err := h.service.Update(ctx, id, actorFromContext(c), payload)
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

	return utils.SendSuccess(c, "gallery updated", gallery)
}

func (h *GalleryHandler) delete(c *fiber.Ctx) error {
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

	return utils.SendSuccess(c, "gallery deleted", nil)
}

func (h *GalleryHandler) listImages(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	images, err := h.service.ListImages(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "images", images)
}

func (h *GalleryHandler) addImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.GalleryImageCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	image, err := h.service.AddImage(ctx, id, actorFromContext(c), payload)
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

	requestLogger(h.logger, c).Info().Int("gallery_id", id).Int("image_id", image.ID).Msg("image added")

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "image added", image)
}

func (h *GalleryHandler) removeImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	imageID, err := parseIDParam(c, "imageID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	if err := h.service.RemoveImage(ctx, id, imageID, actorFromContext(c)); err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "image removed", nil)
}
