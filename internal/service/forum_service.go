package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// ForumService exposes discussion-forum use-cases.
type ForumService interface {
	List(ctx context.Context) ([]dto.DiscussionResponse, error)
	Get(ctx context.Context, id int) (dto.DiscussionResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.DiscussionCreateRequest) (dto.DiscussionResponse, error)
	Update(ctx context.Context, id int, actor Actor, payload dto.DiscussionUpdateRequest) (dto.DiscussionResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
	SetLocked(ctx context.Context, id int, actor Actor, locked bool) (dto.DiscussionResponse, error)
	ListReplies(ctx context.Context, discussionID int) ([]dto.ReplyResponse, error)
	CreateReply(ctx context.Context, discussionID int, actor Actor, payload dto.ReplyCreateRequest) (dto.ReplyResponse, error)
	DeleteReply(ctx context.Context, replyID int, actor Actor) error
	AddReaction(ctx context.Context, replyID int, actor Actor, label string) (dto.ReplyResponse, error)
	RemoveReaction(ctx context.Context, replyID int, actor Actor, label string) (dto.ReplyResponse, error)
	UnreadCount(ctx context.Context, discussionID int, actor Actor) (dto.UnreadCountResponse, error)
	MarkReplyRead(ctx context.Context, replyID int, actor Actor) (dto.ReadStatusResponse, error)
}

type forumService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
	sanitizer *bluemonday.Policy
}

// NewForumService constructs a forum service.
func NewForumService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) ForumService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("br")

	return &forumService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "forum_service").Logger(),
		tracer:    otel.Tracer("github.com/alumniconnect/portal-api/internal/service/forum"),
		sanitizer: policy,
	}
}

func (s *forumService) List(ctx context.Context) ([]dto.DiscussionResponse, error) {
	return dto.NewDiscussionResponseSlice(s.store.ListDiscussions(ctx)), nil
}

func (s *forumService) Get(ctx context.Context, id int) (dto.DiscussionResponse, error) {
	discussion, err := s.store.GetDiscussion(ctx, id)
	if err != nil {
		return dto.DiscussionResponse{}, err
	}
	return dto.NewDiscussionResponse(discussion), nil
}

func (s *forumService) Create(ctx context.Context, actor Actor, payload dto.DiscussionCreateRequest) (dto.DiscussionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DiscussionResponse{}, err
	}

	title := strings.TrimSpace(s.sanitizer.Sanitize(payload.Title))
	if title == "" {
		return dto.DiscussionResponse{}, errors.New("discussion title empty after sanitization")
	}
	content := strings.TrimSpace(s.sanitizer.Sanitize(payload.Content))
	if content == "" {
		return dto.DiscussionResponse{}, errors.New("discussion content empty after sanitization")
	}

	spanCtx, span := s.tracer.Start(ctx, "forum.discussion.create", trace.WithAttributes(
		attribute.Int("forum.author_id", actor.ID),
	))
	defer span.End()

	discussion := s.store.CreateDiscussion(spanCtx, models.Discussion{
		Title:     title,
		Content:   content,
		CreatedBy: actor.ID,
	})

	s.logger.Info().Int("discussion_id", discussion.ID).Int("actor_id", actor.ID).Msg("discussion created")

	return dto.NewDiscussionResponse(discussion), nil
}

func (s *forumService) Update(ctx context.Context, id int, actor Actor, payload dto.DiscussionUpdateRequest) (dto.DiscussionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DiscussionResponse{}, err
	}

	discussion, err := s.store.GetDiscussion(ctx, id)
	if err != nil {
		return dto.DiscussionResponse{}, err
	}

	if err := requireOwnerOrAdmin(discussion.CreatedBy, actor); err != nil {
		return dto.DiscussionResponse{}, err
	}

	partial := store.DiscussionUpdate{}
	if payload.Title != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Title))
		if sanitized == "" {
			return dto.DiscussionResponse{}, errors.New("discussion title empty after sanitization")
		}
		partial.Title = &sanitized
	}
	if payload.Content != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Content))
		if sanitized == "" {
			return dto.DiscussionResponse{}, errors.New("discussion content empty after sanitization")
		}
		partial.Content = &sanitized
	}

	updated, err := s.store.UpdateDiscussion(ctx, id, partial)
	if err != nil {
		return dto.DiscussionResponse{}, err
	}

	return dto.NewDiscussionResponse(updated), nil
}

func (s *forumService) Delete(ctx context.Context, id int, actor Actor) error {
	discussion, err := s.store.GetDiscussion(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwnerOrAdmin(discussion.CreatedBy, actor); err != nil {
		return err
	}

	if !s.store.DeleteDiscussion(ctx, id) {
		return store.ErrNotFound
	}

	// Replies are removed in a follow-up pass; the two steps are not atomic.
	for _, reply := range s.store.ListReplies(ctx, id) {
		s.store.DeleteReply(ctx, reply.ID)
	}

	s.logger.Info().Int("discussion_id", id).Int("actor_id", actor.ID).Msg("discussion deleted")

	return nil
}

func (s *forumService) SetLocked(ctx context.Context, id int, actor Actor, locked bool) (dto.DiscussionResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return dto.DiscussionResponse{}, err
	}

	discussion, err := s.store.UpdateDiscussion(ctx, id, store.DiscussionUpdate{IsLocked: &locked})
	if err != nil {
		return dto.DiscussionResponse{}, err
	}

	s.logger.Info().Int("discussion_id", id).Bool("locked", locked).Msg("discussion lock updated")

	return dto.NewDiscussionResponse(discussion), nil
}

func (s *forumService) ListReplies(ctx context.Context, discussionID int) ([]dto.ReplyResponse, error) {
	if _, err := s.store.GetDiscussion(ctx, discussionID); err != nil {
		return nil, err
	}
	return dto.NewReplyResponseSlice(s.store.ListReplies(ctx, discussionID)), nil
}

func (s *forumService) CreateReply(ctx context.Context, discussionID int, actor Actor, payload dto.ReplyCreateRequest) (dto.ReplyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReplyResponse{}, err
	}

	content := strings.TrimSpace(s.sanitizer.Sanitize(payload.Content))
	if content == "" {
		return dto.ReplyResponse{}, errors.New("reply content empty after sanitization")
	}

	discussion, err := s.store.GetDiscussion(ctx, discussionID)
	if err != nil {
		return dto.ReplyResponse{}, err
	}
	if discussion.IsLocked && !actor.IsAdmin {
		return dto.ReplyResponse{}, ErrLocked
	}

	spanCtx, span := s.tracer.Start(ctx, "forum.reply.create", trace.WithAttributes(
		attribute.Int("forum.discussion_id", discussionID),
		attribute.Int("forum.author_id", actor.ID),
	))
	defer span.End()

	reply, err := s.store.CreateReply(spanCtx, models.Reply{
		DiscussionID: discussionID,
		Content:      content,
		CreatedBy:    actor.ID,
	})
	if err != nil {
		span.RecordError(err)
		return dto.ReplyResponse{}, err
	}

	s.logger.Info().Int("discussion_id", discussionID).Int("reply_id", reply.ID).Msg("reply created")

	return dto.NewReplyResponse(reply), nil
}

func (s *forumService) DeleteReply(ctx context.Context, replyID int, actor Actor) error {
	reply, err := s.store.GetReply(ctx, replyID)
	if err != nil {
		return err
	}

	if err := requireOwnerOrAdmin(reply.CreatedBy, actor); err != nil {
		return err
	}

	if !s.store.DeleteReply(ctx, replyID) {
		return store.ErrNotFound
	}

	return nil
}

func (s *forumService) AddReaction(ctx context.Context, replyID int, actor Actor, label string) (dto.ReplyResponse, error) {
	reply, err := s.store.AddReaction(ctx, replyID, actor.ID, label)
	if err != nil {
		return dto.ReplyResponse{}, err
	}
	return dto.NewReplyResponse(reply), nil
}

func (s *forumService) RemoveReaction(ctx context.Context, replyID int, actor Actor, label string) (dto.ReplyResponse, error) {
	reply, err := s.store.RemoveReaction(ctx, replyID, actor.ID, label)
	if err != nil {
		return dto.ReplyResponse{}, err
	}
	return dto.NewReplyResponse(reply), nil
}

func (s *forumService) UnreadCount(ctx context.Context, discussionID int, actor Actor) (dto.UnreadCountResponse, error) {
	if _, err := s.store.GetDiscussion(ctx, discussionID); err != nil {
		return dto.UnreadCountResponse{}, err
	}

	return dto.UnreadCountResponse{
		DiscussionID: discussionID,
		UnreadCount:  s.store.GetUnreadRepliesCount(ctx, discussionID, actor.ID),
	}, nil
}

func (s *forumService) MarkReplyRead(ctx context.Context, replyID int, actor Actor) (dto.ReadStatusResponse, error) {
	status, err := s.store.MarkReplyAsRead(ctx, replyID, actor.ID)
	if err != nil {
		return dto.ReadStatusResponse{}, err
	}
	return dto.NewReadStatusResponse(status), nil
}
