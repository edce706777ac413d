package models

import "time"

// UniversityInfo is the singleton record describing the institution. It is
// created when the store is constructed and mutated in place.
type UniversityInfo struct {
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
