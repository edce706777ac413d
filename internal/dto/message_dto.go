package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// MessageSendRequest is the payload for sending a direct message.
type MessageSendRequest struct {
	ReceiverID int    `json:"receiver_id" validate:"required,min=1"`
	Content    string `json:"content" validate:"required,min=1,max=8000"`
}

// MessageResponse is the serialized representation of a direct message.
type MessageResponse struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	SentAt     time.Time `json:"sent_at"`
}

// NewMessageResponse converts a model into a DTO.
func NewMessageResponse(message models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		SentAt:     message.SentAt,
	}
}

// NewMessageResponseSlice converts a slice of models into DTOs.
func NewMessageResponseSlice(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, NewMessageResponse(message))
	}
	return out
}

// ConversationSummary is one inbox row: the counterpart user, the latest
// message exchanged with them and how many of their messages are unread.
type ConversationSummary struct {
	UserID      int             `json:"user_id"`
	User        *UserResponse   `json:"user,omitempty"`
	LastMessage MessageResponse `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}
