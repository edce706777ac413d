package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// GalleryCreateRequest is the payload for creating a gallery.
type GalleryCreateRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
}

// GalleryUpdateRequest carries the editable gallery fields.
type GalleryUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
}

// GalleryImageCreateRequest is the payload for attaching an image to a
// gallery. ImageURL may be a remote URL or an embedded data URL.
type GalleryImageCreateRequest struct {
	ImageURL string  `json:"image_url" validate:"required,min=1"`
	Caption  *string `json:"caption" validate:"omitempty,max=1000"`
}

// GalleryResponse is the serialized representation of a gallery.
type GalleryResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGalleryResponse converts a model into a DTO.
func NewGalleryResponse(gallery models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:          gallery.ID,
		Title:       gallery.Title,
		Description: gallery.Description,
		CreatedBy:   gallery.CreatedBy,
		CreatedAt:   gallery.CreatedAt,
	}
}

// NewGalleryResponseSlice converts a slice of models into DTOs.
func NewGalleryResponseSlice(galleries []models.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(galleries))
	for _, gallery := range galleries {
		out = append(out, NewGalleryResponse(gallery))
	}
	return out
}

// GalleryImageResponse is the serialized representation of a gallery image.
type GalleryImageResponse struct {
	ID         int       `json:"id"`
	GalleryID  int       `json:"gallery_id"`
	ImageURL   string    `json:"image_url"`
	Caption    *string   `json:"caption,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	UploadedBy int       `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewGalleryImageResponse converts a model into a DTO.
func NewGalleryImageResponse(image models.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:         image.ID,
		GalleryID:  image.GalleryID,
		ImageURL:   image.ImageURL,
		Caption:    image.Caption,
		MimeType:   image.MimeType,
		UploadedBy: image.UploadedBy,
		UploadedAt: image.UploadedAt,
	}
}

// NewGalleryImageResponseSlice converts a slice of models into DTOs.
func NewGalleryImageResponseSlice(images []models.GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, NewGalleryImageResponse(image))
	}
	return out
}
