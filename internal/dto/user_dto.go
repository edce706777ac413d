package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// UserUpdateRequest carries the editable profile fields; absent fields are
// left untouched.
type UserUpdateRequest struct {
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`

	FirstName          *string `json:"first_name" validate:"omitempty,max=128"`
	LastName           *string `json:"last_name" validate:"omitempty,max=128"`
	Phone              *string `json:"phone" validate:"omitempty,max=32"`
	Bio                *string `json:"bio" validate:"omitempty,max=4000"`
	ProfileImageURL    *string `json:"profile_image_url" validate:"omitempty"`
	CoverImageURL      *string `json:"cover_image_url" validate:"omitempty"`
	Gender             *string `json:"gender" validate:"omitempty,max=32"`
	Address            *string `json:"address" validate:"omitempty,max=255"`
	City               *string `json:"city" validate:"omitempty,max=128"`
	State              *string `json:"state" validate:"omitempty,max=128"`
	Country            *string `json:"country" validate:"omitempty,max=128"`
	PostalCode         *string `json:"postal_code" validate:"omitempty,max=32"`
	GraduationYear     *int    `json:"graduation_year" validate:"omitempty,min=1900,max=2100"`
	Degree             *string `json:"degree" validate:"omitempty,max=128"`
	Major              *string `json:"major" validate:"omitempty,max=128"`
	StudentID          *string `json:"student_id" validate:"omitempty,max=64"`
	CurrentPosition    *string `json:"current_position" validate:"omitempty,max=255"`
	Company            *string `json:"company" validate:"omitempty,max=255"`
	Industry           *string `json:"industry" validate:"omitempty,max=128"`
	YearsOfExperience  *int    `json:"years_of_experience" validate:"omitempty,min=0,max=80"`
	Skills             *string `json:"skills" validate:"omitempty,max=2000"`
	Interests          *string `json:"interests" validate:"omitempty,max=2000"`
	Achievements       *string `json:"achievements" validate:"omitempty,max=4000"`
	LinkedinURL        *string `json:"linkedin_url" validate:"omitempty,max=255"`
	TwitterURL         *string `json:"twitter_url" validate:"omitempty,max=255"`
	FacebookURL        *string `json:"facebook_url" validate:"omitempty,max=255"`
	InstagramURL       *string `json:"instagram_url" validate:"omitempty,max=255"`
	WebsiteURL         *string `json:"website_url" validate:"omitempty,max=255"`
	MentorshipOffered  *bool   `json:"mentorship_offered"`
	OpenToOpportunity  *bool   `json:"open_to_opportunity"`
	PreferredContactBy *string `json:"preferred_contact_by" validate:"omitempty,max=64"`
}

// UserResponse is the serialized representation of a user account. The
// password hash never appears on the wire.
type UserResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	FirstName          *string    `json:"first_name,omitempty"`
	LastName           *string    `json:"last_name,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Bio                *string    `json:"bio,omitempty"`
	ProfileImageURL    *string    `json:"profile_image_url,omitempty"`
	CoverImageURL      *string    `json:"cover_image_url,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             *string    `json:"gender,omitempty"`
	Address            *string    `json:"address,omitempty"`
	City               *string    `json:"city,omitempty"`
	State              *string    `json:"state,omitempty"`
	Country            *string    `json:"country,omitempty"`
	PostalCode         *string    `json:"postal_code,omitempty"`
	GraduationYear     *int       `json:"graduation_year,omitempty"`
	Degree             *string    `json:"degree,omitempty"`
	Major              *string    `json:"major,omitempty"`
	StudentID          *string    `json:"student_id,omitempty"`
	CurrentPosition    *string    `json:"current_position,omitempty"`
	Company            *string    `json:"company,omitempty"`
	Industry           *string    `json:"industry,omitempty"`
	YearsOfExperience  *int       `json:"years_of_experience,omitempty"`
	Skills             *string    `json:"skills,omitempty"`
	Interests          *string    `json:"interests,omitempty"`
	Achievements       *string    `json:"achievements,omitempty"`
	LinkedinURL        *string    `json:"linkedin_url,omitempty"`
	TwitterURL         *string    `json:"twitter_url,omitempty"`
	FacebookURL        *string    `json:"facebook_url,omitempty"`
	InstagramURL       *string    `json:"instagram_url,omitempty"`
	WebsiteURL         *string    `json:"website_url,omitempty"`
	MentorshipOffered  *bool      `json:"mentorship_offered,omitempty"`
	OpenToOpportunity  *bool      `json:"open_to_opportunity,omitempty"`
	PreferredContactBy *string    `json:"preferred_contact_by,omitempty"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		Role:      user.Role(),
		CreatedAt: user.CreatedAt,

		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Phone:              user.Phone,
		Bio:                user.Bio,
		ProfileImageURL:    user.ProfileImageURL,
		CoverImageURL:      user.CoverImageURL,
		DateOfBirth:        user.DateOfBirth,
		Gender:             user.Gender,
		Address:            user.Address,
		City:               user.City,
		State:              user.State,
		Country:            user.Country,
		PostalCode:         user.PostalCode,
		GraduationYear:     user.GraduationYear,
		Degree:             user.Degree,
		Major:              user.Major,
		StudentID:          user.StudentID,
		CurrentPosition:    user.CurrentPosition,
		Company:            user.Company,
		Industry:           user.Industry,
		YearsOfExperience:  user.YearsOfExperience,
		Skills:             user.Skills,
		Interests:          user.Interests,
		Achievements:       user.Achievements,
		LinkedinURL:        user.LinkedinURL,
		TwitterURL:         user.TwitterURL,
		FacebookURL:        user.FacebookURL,
		InstagramURL:       user.InstagramURL,
		WebsiteURL:         user.WebsiteURL,
		MentorshipOffered:  user.MentorshipOffered,
		OpenToOpportunity:  user.OpenToOpportunity,
		PreferredContactBy: user.PreferredContactBy,
	}
}

// NewUserResponseSlice converts a slice of models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
