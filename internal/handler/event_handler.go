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

// EventHandler provides HTTP endpoints for events and registrations.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs a handler instance.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register binds the event routes.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)

	router.Post("/:id/register", h.register)
	router.Delete("/:id/register", h.unregister)
	router.Get("/:id/attendees", h.attendees)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	ctx := withRequestContext(c)

	events, err := h.service.List(ctx, queryBool(c, "upcoming"))
	if err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendSuccess(c, "events", events)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	event, err := h.service.Get(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "event", event)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	event, err := h.service.Create(ctx, actorFromContext(c), payload)
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

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *EventHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EventUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	event, err := h.service.Update(ctx, id, actorFromContext(c), payload)
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

	return utils.SendSuccess(c, "event updated", event)
}

func (h *EventHandler) delete(c *fiber.Ctx) error {
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

	return utils.SendSuccess(c, "event deleted", nil)
}

func (h *EventHandler) register(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	registration, err := h.service.Register(ctx, id, actorFromContext(c))
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			status = fiber.StatusConflict
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	requestLogger(h.logger, c).Info().Int("event_id", id).Int("user_id", registration.UserID).Msg("registered for event")

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registered for event", registration)
}

func (h *EventHandler) unregister(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	if err := h.service.Unregister(ctx, id, actorFromContext(c)); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "registration removed", nil)
}

func (h *EventHandler) attendees(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	attendees, err := h.service.Attendees(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "attendees", attendees)
}
