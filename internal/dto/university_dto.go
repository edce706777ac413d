package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// UniversityUpdateRequest carries the editable fields of the singleton
// university record.
type UniversityUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Address      *string `json:"address" validate:"omitempty,max=512"`
	WebsiteURL   *string `json:"website_url" validate:"omitempty,max=255"`
	FacebookURL  *string `json:"facebook_url" validate:"omitempty,max=255"`
	TwitterURL   *string `json:"twitter_url" validate:"omitempty,max=255"`
	InstagramURL *string `json:"instagram_url" validate:"omitempty,max=255"`
	LinkedinURL  *string `json:"linkedin_url" validate:"omitempty,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=16000"`
	Vision       *string `json:"vision" validate:"omitempty,max=8000"`
	Mission      *string `json:"mission" validate:"omitempty,max=8000"`
}

// UniversityResponse is the serialized representation of the university record.
type UniversityResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	WebsiteURL   string    `json:"website_url"`
	FacebookURL  string    `json:"facebook_url"`
	TwitterURL   string    `json:"twitter_url"`
	InstagramURL string    `json:"instagram_url"`
	LinkedinURL  string    `json:"linkedin_url"`
	Description  string    `json:"description"`
	Vision       string    `json:"vision"`
	Mission      string    `json:"mission"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedBy    int       `json:"updated_by"`
}

// NewUniversityResponse converts a model into a DTO.
func NewUniversityResponse(info models.UniversityInfo) UniversityResponse {
	return UniversityResponse{
		ID:           info.ID,
		Name:         info.Name,
		Email:        info.Email,
		Phone:        info.Phone,
		Address:      info.Address,
		WebsiteURL:   info.WebsiteURL,
		FacebookURL:  info.FacebookURL,
		TwitterURL:   info.TwitterURL,
		InstagramURL: info.InstagramURL,
		LinkedinURL:  info.LinkedinURL,
		Description:  info.Description,
		Vision:       info.Vision,
		Mission:      info.Mission,
		UpdatedAt:    info.UpdatedAt,
		UpdatedBy:    info.UpdatedBy,
	}
}
