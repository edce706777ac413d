package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// EventService exposes event and registration use-cases.
type EventService interface {
	List(ctx context.Context, upcomingOnly bool) ([]dto.EventResponse, error)
	Get(ctx context.Context, id int) (dto.EventResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.EventCreateRequest) (dto.EventResponse, error)
	Update(ctx context.Context, id int, actor Actor, payload dto.EventUpdateRequest) (dto.EventResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
	Register(ctx context.Context, eventID int, actor Actor) (dto.EventRegistrationResponse, error)
	Unregister(ctx context.Context, eventID int, actor Actor) error
	Attendees(ctx context.Context, eventID int) ([]dto.EventAttendeeResponse, error)
}

type eventService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEventService constructs an event service.
func NewEventService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) EventService {
	return &eventService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) List(ctx context.Context, upcomingOnly bool) ([]dto.EventResponse, error) {
	if upcomingOnly {
		return dto.NewEventResponseSlice(s.store.ListUpcomingEvents(ctx)), nil
	}
	return dto.NewEventResponseSlice(s.store.ListEvents(ctx)), nil
}

func (s *eventService) Get(ctx context.Context, id int) (dto.EventResponse, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Create(ctx context.Context, actor Actor, payload dto.EventCreateRequest) (dto.EventResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.EventResponse{}, err
	}

	event := s.store.CreateEvent(ctx, models.Event{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		Location:    payload.Location,
		CreatedBy:   actor.ID,
	})

	s.logger.Info().Int("event_id", event.ID).Int("actor_id", actor.ID).Msg("event created")

	return dto.NewEventResponse(event), nil
}

func (s *eventService) Update(ctx context.Context, id int, actor Actor, payload dto.EventUpdateRequest) (dto.EventResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.EventResponse{}, err
	}

	event, err := s.store.UpdateEvent(ctx, id, store.EventUpdate{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		Location:    payload.Location,
	})
	if err != nil {
		return dto.EventResponse{}, err
	}

	return dto.NewEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id int, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if !s.store.DeleteEvent(ctx, id) {
		return store.ErrNotFound
	}

	// Registrations for the event are removed in a follow-up pass; the two
	// steps are not atomic.
	for _, registration := range s.store.ListEventRegistrations(ctx, id) {
		s.store.DeleteEventRegistration(ctx, registration.ID)
	}

	s.logger.Info().Int("event_id", id).Int("actor_id", actor.ID).Msg("event deleted")

	return nil
}

func (s *eventService) Register(ctx context.Context, eventID int, actor Actor) (dto.EventRegistrationResponse, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return dto.EventRegistrationResponse{}, err
	}

	// Check-then-insert: uniqueness of (event, user) lives here, not in the store.
	if _, err := s.store.GetEventRegistration(ctx, eventID, actor.ID); err == nil {
		return dto.EventRegistrationResponse{}, ErrAlreadyRegistered
	}

	registration := s.store.CreateEventRegistration(ctx, models.EventRegistration{
		EventID: eventID,
		UserID:  actor.ID,
	})

	s.logger.Info().Int("event_id", eventID).Int("user_id", actor.ID).Msg("event registration created")

	return dto.NewEventRegistrationResponse(registration), nil
}

func (s *eventService) Unregister(ctx context.Context, eventID int, actor Actor) error {
	registration, err := s.store.GetEventRegistration(ctx, eventID, actor.ID)
	if err != nil {
		return err
	}

	if !s.store.DeleteEventRegistration(ctx, registration.ID) {
		return store.ErrNotFound
	}

	return nil
}

func (s *eventService) Attendees(ctx context.Context, eventID int) ([]dto.EventAttendeeResponse, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	registrations := s.store.ListEventRegistrations(ctx, eventID)
	attendees := make([]dto.EventAttendeeResponse, 0, len(registrations))
	for _, registration := range registrations {
		attendee := dto.EventAttendeeResponse{
			Registration: dto.NewEventRegistrationResponse(registration),
		}

		user, err := s.store.GetUser(ctx, registration.UserID)
		switch {
		case err == nil:
			response := dto.NewUserResponse(user)
			attendee.User = &response
		case errors.Is(err, store.ErrNotFound):
			// Account deleted since registering; keep the registration row.
		default:
			return nil, err
		}

		attendees = append(attendees, attendee)
	}

	return attendees, nil
}
