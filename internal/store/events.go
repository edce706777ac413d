package store

import (
	"context"
	"sort"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// EventUpdate is a shallow partial of an event record.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
}

// CreateEvent assigns the next event id and stores the record.
func (s *Store) CreateEvent(_ context.Context, event models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID(kindEvent)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	s.events[event.ID] = event

	return event
}

// GetEvent returns the event with the given id or ErrNotFound.
func (s *Store) GetEvent(_ context.Context, id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return event, nil
}

// ListEvents returns every event ordered by date ascending.
func (s *Store) ListEvents(_ context.Context) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date.Equal(events[j].Date) {
			return events[i].ID < events[j].ID
		}
		return events[i].Date.Before(events[j].Date)
	})

	return events
}

// ListUpcomingEvents returns events dated strictly after now, soonest first.
func (s *Store) ListUpcomingEvents(ctx context.Context) []models.Event {
	now := s.now()

	events := s.ListEvents(ctx)
	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.IsUpcoming(now) {
			upcoming = append(upcoming, event)
		}
	}

	return upcoming
}

// UpdateEvent shallow-merges the partial into the stored record.
func (s *Store) UpdateEvent(_ context.Context, id int, partial EventUpdate) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}

	if partial.Title != nil {
		event.Title = *partial.Title
	}
	if partial.Description != nil {
		event.Description = *partial.Description
	}
	if partial.Date != nil {
		event.Date = *partial.Date
	}
	if partial.Location != nil {
		event.Location = *partial.Location
	}

	s.events[id] = event

	return event, nil
}

// DeleteEvent removes the event and reports whether it existed.
func (s *Store) DeleteEvent(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)

	return true
}

// CreateEventRegistration stores a registration row. Uniqueness of
// (event, user) is the caller's pre-check, not enforced here.
func (s *Store) CreateEventRegistration(_ context.Context, registration models.EventRegistration) models.EventRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration.ID = s.nextID(kindRegistration)
	if registration.RegisteredAt.IsZero() {
		registration.RegisteredAt = s.now()
	}
	s.registrations[registration.ID] = registration

	return registration
}

// GetEventRegistration returns the registration for (event, user) or ErrNotFound.
func (s *Store) GetEventRegistration(_ context.Context, eventID, userID int) (models.EventRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, registration := range s.registrations {
		if registration.EventID == eventID && registration.UserID == userID {
			return registration, nil
		}
	}
	return models.EventRegistration{}, ErrNotFound
}

// ListEventRegistrations returns all registrations for an event ordered by id.
func (s *Store) ListEventRegistrations(_ context.Context, eventID int) []models.EventRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := make([]models.EventRegistration, 0)
	for _, registration := range s.registrations {
		if registration.EventID == eventID {
			registrations = append(registrations, registration)
		}
	}
	sort.Slice(registrations, func(i, j int) bool { return registrations[i].ID < registrations[j].ID })

	return registrations
}

// ListRegistrationsByUser returns all registrations made by a user ordered by id.
func (s *Store) ListRegistrationsByUser(_ context.Context, userID int) []models.EventRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := make([]models.EventRegistration, 0)
	for _, registration := range s.registrations {
		if registration.UserID == userID {
			registrations = append(registrations, registration)
		}
	}
	sort.Slice(registrations, func(i, j int) bool { return registrations[i].ID < registrations[j].ID })

	return registrations
}

// DeleteEventRegistration removes a registration row by id.
func (s *Store) DeleteEventRegistration(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registrations[id]; !ok {
		return false
	}
	delete(s.registrations, id)

	return true
}
