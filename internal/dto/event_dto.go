package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// EventCreateRequest is the payload for creating an event.
type EventCreateRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"required,min=1,max=8000"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,min=1,max=255"`
}

// EventUpdateRequest carries the editable event fields.
type EventUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,min=1,max=8000"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,min=1,max=255"`
}

// EventResponse is the serialized representation of an event.
type EventResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEventResponse converts a model into a DTO.
func NewEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
	}
}

// NewEventResponseSlice converts a slice of models into DTOs.
func NewEventResponseSlice(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, NewEventResponse(event))
	}
	return out
}

// EventRegistrationResponse is the serialized representation of a registration.
type EventRegistrationResponse struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	UserID       int       `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewEventRegistrationResponse converts a model into a DTO.
func NewEventRegistrationResponse(registration models.EventRegistration) EventRegistrationResponse {
	return EventRegistrationResponse{
		ID:           registration.ID,
		EventID:      registration.EventID,
		UserID:       registration.UserID,
		RegisteredAt: registration.RegisteredAt,
	}
}

// EventAttendeeResponse pairs a registration with the attendee profile, when
// the account still exists.
type EventAttendeeResponse struct {
	Registration EventRegistrationResponse `json:"registration"`
	User         *UserResponse             `json:"user,omitempty"`
}
