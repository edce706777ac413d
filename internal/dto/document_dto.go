package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// DocumentCreateRequest is the payload for submitting a document for review.
// FileURL may be a remote URL or an embedded data URL.
type DocumentCreateRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=255"`
	DocumentType string  `json:"document_type" validate:"required,min=1,max=64"`
	FileURL      string  `json:"file_url" validate:"required,min=1"`
	Description  *string `json:"description" validate:"omitempty,max=4000"`
}

// DocumentStatusRequest is the admin payload for a review decision.
type DocumentStatusRequest struct {
	Status        string  `json:"status" validate:"required,oneof=pending approved rejected"`
	AdminFeedback *string `json:"admin_feedback" validate:"omitempty,max=4000"`
}

// DocumentResponse is the serialized representation of a document.
type DocumentResponse struct {
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

// NewDocumentResponse converts a model into a DTO.
func NewDocumentResponse(document models.Document) DocumentResponse {
	return DocumentResponse{
		ID:            document.ID,
		UserID:        document.UserID,
		Title:         document.Title,
		DocumentType:  document.DocumentType,
		FileURL:       document.FileURL,
		FileType:      document.FileType,
		Description:   document.Description,
		Status:        document.Status,
		AdminFeedback: document.AdminFeedback,
		UploadedAt:    document.UploadedAt,
		UpdatedAt:     document.UpdatedAt,
	}
}

// NewDocumentResponseSlice converts a slice of models into DTOs.
func NewDocumentResponseSlice(documents []models.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		out = append(out, NewDocumentResponse(document))
	}
	return out
}
