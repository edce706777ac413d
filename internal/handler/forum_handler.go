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

// ForumHandler provides HTTP endpoints for discussions and replies.
type ForumHandler struct {
	service service.ForumService
	logger  zerolog.Logger
}

// NewForumHandler constructs a handler instance.
func NewForumHandler(service service.ForumService, logger zerolog.Logger) *ForumHandler {
	return &ForumHandler{
		service: service,
		logger:  logger.With().Str("component", "forum_handler").Logger(),
	}
}

// Register binds the forum routes.
func (h *ForumHandler) Register(router fiber.Router) {
	router.Get("/discussions", h.list)
	router.Post("/discussions", h.create)
	router.Get("/discussions/:id", h.get)
	router.Put("/discussions/:id", h.update)
	router.Delete("/discussions/:id", h.delete)
	router.Put("/discussions/:id/lock", h.setLocked)
	router.Get("/discussions/:id/unread-count", h.unreadCount)

	router.Get("/discussions/:id/replies", h.listReplies)
	router.Post("/discussions/:id/replies", h.createReply)
	router.Delete("/replies/:id", h.deleteReply)
	router.Post("/replies/:id/reactions", h.addReaction)
	router.Delete("/replies/:id/reactions", h.removeReaction)
	router.Post("/replies/:id/read", h.markReplyRead)
}

func (h *ForumHandler) list(c *fiber.Ctx) error {
	ctx := withRequestContext(c)

	discussions, err := h.service.List(ctx)
	if err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendSuccess(c, "discussions", discussions)
}

func (h *ForumHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	discussion, err := h.service.Get(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "discussion", discussion)
}

func (h *ForumHandler) create(c *fiber.Ctx) error {
	var payload dto.DiscussionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	discussion, err := h.service.Create(ctx, actorFromContext(c), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		if isValidationError(err) {
			status = fiber.StatusBadRequest
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "discussion created", discussion)
}

func (h *ForumHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.DiscussionUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	discussion, err := h.service.Update(ctx, id, actorFromContext(c), payload)
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

	return utils.SendSuccess(c, "discussion updated", discussion)
}

func (h *ForumHandler) delete(c *fiber.Ctx) error {
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

	return utils.SendSuccess(c, "discussion deleted", nil)
}

func (h *ForumHandler) setLocked(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.DiscussionLockRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	discussion, err := h.service.SetLocked(ctx, id, actorFromContext(c), payload.Locked)
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

	requestLogger(h.logger, c).Info().Int("discussion_id", id).Bool("locked", payload.Locked).Msg("discussion lock changed")

	return utils.SendSuccess(c, "discussion lock updated", discussion)
}

func (h *ForumHandler) unreadCount(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	count, err := h.service.UnreadCount(ctx, id, actorFromContext(c))
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "unread replies", count)
}

func (h *ForumHandler) listReplies(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	replies, err := h.service.ListReplies(ctx, id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "replies", replies)
}

func (h *ForumHandler) createReply(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ReplyCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ctx := withRequestContext(c)

	reply, err := h.service.CreateReply(ctx, id, actorFromContext(c), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrLocked):
			status = fiber.StatusLocked
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		case isValidationError(err):
			status = fiber.StatusBadRequest
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "reply created", reply)
}

func (h *ForumHandler) deleteReply(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	if err := h.service.DeleteReply(ctx, id, actorFromContext(c)); err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "reply deleted", nil)
}

func (h *ForumHandler) addReaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ReactionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Label == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "label required")
	}

	ctx := withRequestContext(c)

	reply, err := h.service.AddReaction(ctx, id, actorFromContext(c), payload.Label)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "reaction added", reply)
}

func (h *ForumHandler) removeReaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ReactionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Label == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "label required")
	}

	ctx := withRequestContext(c)

	reply, err := h.service.RemoveReaction(ctx, id, actorFromContext(c), payload.Label)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "reaction removed", reply)
}

func (h *ForumHandler) markReplyRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := withRequestContext(c)

	status, err := h.service.MarkReplyRead(ctx, id, actorFromContext(c))
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = fiber.StatusNotFound
		}
		return utils.SendError(c, code, err.Error())
	}

	return utils.SendSuccess(c, "reply marked read", status)
}
