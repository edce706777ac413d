package models

import "time"

// Discussion is a forum topic. ParticipantIDs holds stringified user ids of
// everyone who created or replied to the discussion.
type Discussion struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ParticipantIDs []string  `json:"participant_ids"`
	IsLocked       bool      `json:"is_locked"`
}

// DiscussionParticipant tracks one user's presence in a discussion. There is
// at most one row per (discussion, user); repeat contact refreshes LastSeenAt.
type DiscussionParticipant struct {
	ID           int       `json:"id"`
	DiscussionID int       `json:"discussion_id"`
	UserID       int       `json:"user_id"`
	JoinedAt     time.Time `json:"joined_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
}

// Reply is a single answer inside a discussion. IsRead flips the first time
// any user marks the reply read; per-user receipts live in ReplyReadStatus.
// Reactions maps a reaction label to the ids of users who applied it.
type Reply struct {
	ID           int             `json:"id"`
	DiscussionID int             `json:"discussion_id"`
	Content      string          `json:"content"`
	CreatedBy    int             `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	IsRead       bool            `json:"is_read"`
	Reactions    map[string][]int `json:"reactions"`
}

// ReplyReadStatus is a per-(reply, user) read receipt used for unread counts.
type ReplyReadStatus struct {
	ID      int       `json:"id"`
	ReplyID int       `json:"reply_id"`
	UserID  int       `json:"user_id"`
	ReadAt  time.Time `json:"read_at"`
}
