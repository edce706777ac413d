package models

import "time"

// Job is an alumni-posted job opening.
type Job struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	ApplicationProcess string     `json:"application_process"`
	PostedBy           int        `json:"posted_by"`
	PostedAt           time.Time  `json:"posted_at"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}

// IsActive reports whether the posting has not expired at the given instant.
func (j Job) IsActive(now time.Time) bool {
	return j.ExpiresAt == nil || j.ExpiresAt.After(now)
}
