package models

import "time"

// Role labels used in JWT claims and authorization checks.
const (
	RoleAdmin  = "admin"
	RoleAlumni = "alumni"
)

// User represents a portal account with its optional alumni profile fields.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`

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

	CreatedAt time.Time `json:"created_at"`
}

// Role derives the role label used in tokens and policy checks.
func (u User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleAlumni
}
