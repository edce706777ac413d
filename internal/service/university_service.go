package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/store"
)

// UniversityService exposes the singleton university-info record.
type UniversityService interface {
	Get(ctx context.Context) (dto.UniversityResponse, error)
	Update(ctx context.Context, actor Actor, payload dto.UniversityUpdateRequest) (dto.UniversityResponse, error)
}

type universityService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewUniversityService constructs a university-info service.
func NewUniversityService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) UniversityService {
	return &universityService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "university_service").Logger(),
	}
}

func (s *universityService) Get(ctx context.Context) (dto.UniversityResponse, error) {
	return dto.NewUniversityResponse(s.store.GetUniversityInfo(ctx)), nil
}

func (s *universityService) Update(ctx context.Context, actor Actor, payload dto.UniversityUpdateRequest) (dto.UniversityResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UniversityResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.UniversityResponse{}, err
	}

	info := s.store.UpdateUniversityInfo(ctx, store.UniversityUpdate{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		WebsiteURL:   payload.WebsiteURL,
		FacebookURL:  payload.FacebookURL,
		TwitterURL:   payload.TwitterURL,
		InstagramURL: payload.InstagramURL,
		LinkedinURL:  payload.LinkedinURL,
		Description:  payload.Description,
		Vision:       payload.Vision,
		Mission:      payload.Mission,
	}, actor.ID)

	s.logger.Info().Int("actor_id", actor.ID).Msg("university info updated")

	return dto.NewUniversityResponse(info), nil
}
