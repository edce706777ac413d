package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// MessageService exposes direct-messaging use-cases.
type MessageService interface {
	Send(ctx context.Context, actor Actor, payload dto.MessageSendRequest) (dto.MessageResponse, error)
	Conversation(ctx context.Context, actor Actor, otherUserID int) ([]dto.MessageResponse, error)
	MarkRead(ctx context.Context, messageID int, actor Actor) (dto.MessageResponse, error)
	ListForUser(ctx context.Context, actor Actor) ([]dto.MessageResponse, error)
	Inbox(ctx context.Context, actor Actor) ([]dto.ConversationSummary, error)
}

type messageService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	sanitizer *bluemonday.Policy
}

// NewMessageService constructs a message service.
func NewMessageService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) MessageService {
	return &messageService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "message_service").Logger(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *messageService) Send(ctx context.Context, actor Actor, payload dto.MessageSendRequest) (dto.MessageResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.MessageResponse{}, err
	}

	if _, err := s.store.GetUser(ctx, payload.ReceiverID); err != nil {
		return dto.MessageResponse{}, err
	}

	content := strings.TrimSpace(s.sanitizer.Sanitize(payload.Content))
	if content == "" {
		return dto.MessageResponse{}, errors.New("message content empty after sanitization")
	}

	message := s.store.CreateMessage(ctx, models.Message{
		SenderID:   actor.ID,
		ReceiverID: payload.ReceiverID,
		Content:    content,
	})

	s.logger.Info().Int("message_id", message.ID).Int("sender_id", actor.ID).Int("receiver_id", payload.ReceiverID).Msg("message sent")

	return dto.NewMessageResponse(message), nil
}

func (s *messageService) Conversation(ctx context.Context, actor Actor, otherUserID int) ([]dto.MessageResponse, error) {
	return dto.NewMessageResponseSlice(s.store.GetConversation(ctx, actor.ID, otherUserID)), nil
}

func (s *messageService) MarkRead(ctx context.Context, messageID int, actor Actor) (dto.MessageResponse, error) {
	message, err := s.store.GetMessage(ctx, messageID)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	// Only the addressee may mark a message read.
	if message.ReceiverID != actor.ID {
		return dto.MessageResponse{}, ErrForbidden
	}

	marked, err := s.store.MarkMessageAsRead(ctx, messageID)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	return dto.NewMessageResponse(marked), nil
}

func (s *messageService) ListForUser(ctx context.Context, actor Actor) ([]dto.MessageResponse, error) {
	return dto.NewMessageResponseSlice(s.store.GetMessagesByUser(ctx, actor.ID)), nil
}

// Inbox folds the user's messages into one row per counterpart: the latest
// message exchanged and the count of their messages still unread.
func (s *messageService) Inbox(ctx context.Context, actor Actor) ([]dto.ConversationSummary, error) {
	messages := s.store.GetMessagesByUser(ctx, actor.ID)

	latest := make(map[int]models.Message)
	unread := make(map[int]int)
	for _, message := range messages {
		counterpart := message.SenderID
		if counterpart == actor.ID {
			counterpart = message.ReceiverID
		}

		current, ok := latest[counterpart]
		if !ok || message.SentAt.After(current.SentAt) || (message.SentAt.Equal(current.SentAt) && message.ID > current.ID) {
			latest[counterpart] = message
		}
		if message.ReceiverID == actor.ID && !message.IsRead {
			unread[counterpart]++
		}
	}

	summaries := make([]dto.ConversationSummary, 0, len(latest))
	for counterpart, message := range latest {
		summary := dto.ConversationSummary{
			UserID:      counterpart,
			LastMessage: dto.NewMessageResponse(message),
			UnreadCount: unread[counterpart],
		}

		user, err := s.store.GetUser(ctx, counterpart)
		switch {
		case err == nil:
			response := dto.NewUserResponse(user)
			summary.User = &response
		case errors.Is(err, store.ErrNotFound):
			// Counterpart account deleted; keep the thread without a profile.
		default:
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.SentAt.After(summaries[j].LastMessage.SentAt)
	})

	return summaries, nil
}
