package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// DiscussionCreateRequest is the payload for opening a discussion.
type DiscussionCreateRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1,max=16000"`
}

// DiscussionUpdateRequest carries the editable discussion fields.
type DiscussionUpdateRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1,max=16000"`
}

// DiscussionLockRequest toggles the locked flag of a discussion.
type DiscussionLockRequest struct {
	Locked bool `json:"locked"`
}

// ReplyCreateRequest is the payload for replying to a discussion.
type ReplyCreateRequest struct {
	Content string `json:"content" validate:"required,min=1,max=16000"`
}

// ReactionRequest names the reaction label to add or remove.
type ReactionRequest struct {
	Label string `json:"label" validate:"required,min=1,max=32"`
}

// DiscussionResponse is the serialized representation of a discussion.
type DiscussionResponse struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ParticipantIDs []string  `json:"participant_ids"`
	IsLocked       bool      `json:"is_locked"`
}

// NewDiscussionResponse converts a model into a DTO.
func NewDiscussionResponse(discussion models.Discussion) DiscussionResponse {
	return DiscussionResponse{
		ID:             discussion.ID,
		Title:          discussion.Title,
		Content:        discussion.Content,
		CreatedBy:      discussion.CreatedBy,
		CreatedAt:      discussion.CreatedAt,
		LastActivityAt: discussion.LastActivityAt,
		ParticipantIDs: discussion.ParticipantIDs,
		IsLocked:       discussion.IsLocked,
	}
}

// NewDiscussionResponseSlice converts a slice of models into DTOs.
func NewDiscussionResponseSlice(discussions []models.Discussion) []DiscussionResponse {
	out := make([]DiscussionResponse, 0, len(discussions))
	for _, discussion := range discussions {
		out = append(out, NewDiscussionResponse(discussion))
	}
	return out
}

// ReplyResponse is the serialized representation of a reply.
type ReplyResponse struct {
	ID           int              `json:"id"`
	DiscussionID int              `json:"discussion_id"`
	Content      string           `json:"content"`
	CreatedBy    int              `json:"created_by"`
	CreatedAt    time.Time        `json:"created_at"`
	IsRead       bool             `json:"is_read"`
	Reactions    map[string][]int `json:"reactions"`
}

// NewReplyResponse converts a model into a DTO.
func NewReplyResponse(reply models.Reply) ReplyResponse {
	return ReplyResponse{
		ID:           reply.ID,
		DiscussionID: reply.DiscussionID,
		Content:      reply.Content,
		CreatedBy:    reply.CreatedBy,
		CreatedAt:    reply.CreatedAt,
		IsRead:       reply.IsRead,
		Reactions:    reply.Reactions,
	}
}

// NewReplyResponseSlice converts a slice of models into DTOs.
func NewReplyResponseSlice(replies []models.Reply) []ReplyResponse {
	out := make([]ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		out = append(out, NewReplyResponse(reply))
	}
	return out
}

// UnreadCountResponse reports the number of unread replies in a discussion for
// the requesting user.
type UnreadCountResponse struct {
	DiscussionID int `json:"discussion_id"`
	UnreadCount  int `json:"unread_count"`
}

// ReadStatusResponse is the serialized representation of a read receipt.
type ReadStatusResponse struct {
	ID      int       `json:"id"`
	ReplyID int       `json:"reply_id"`
	UserID  int       `json:"user_id"`
	ReadAt  time.Time `json:"read_at"`
}

// NewReadStatusResponse converts a model into a DTO.
func NewReadStatusResponse(status models.ReplyReadStatus) ReadStatusResponse {
	return ReadStatusResponse{
		ID:      status.ID,
		ReplyID: status.ReplyID,
		UserID:  status.UserID,
		ReadAt:  status.ReadAt,
	}
}
