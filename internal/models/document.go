package models

import "time"

// Document review statuses.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusApproved = "approved"
	DocumentStatusRejected = "rejected"
)

// Document is a user-uploaded document awaiting admin review.
type Document struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Title         string     `json:"title"`
	DocumentType  string     `json:"document_type"`
	FileURL       string     `json:"file_url"`
	FileType      string     `json:"file_type"`
	Description   *string    `json:"description,omitempty"`
	Status        string     `json:"status"`
	AdminFeedback *string    `json:"admin_feedback,omitempty"`
	UploadedAt    time.Time  `json:"uploaded_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
