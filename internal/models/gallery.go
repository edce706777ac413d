package models

import "time"

// Gallery is a container for photo-gallery images.
type Gallery struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryImage is a single image inside a gallery. ImageURL may be a remote
// URL or an embedded data URL.
type GalleryImage struct {
	ID         int       `json:"id"`
	GalleryID  int       `json:"gallery_id"`
	ImageURL   string    `json:"image_url"`
	Caption    *string   `json:"caption,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	UploadedBy int       `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}
