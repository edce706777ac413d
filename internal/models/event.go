package models

import "time"

// Event is a scheduled alumni event.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsUpcoming reports whether the event starts after the given instant.
func (e Event) IsUpcoming(now time.Time) bool {
	return e.Date.After(now)
}

// EventRegistration records a user's attendance intent for an event.
// Uniqueness of (EventID, UserID) is enforced by the service layer.
type EventRegistration struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	UserID       int       `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}
