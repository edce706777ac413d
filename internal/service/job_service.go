package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// JobService exposes job-board use-cases.
type JobService interface {
	List(ctx context.Context, activeOnly bool) ([]dto.JobResponse, error)
	Get(ctx context.Context, id int) (dto.JobResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.JobCreateRequest) (dto.JobResponse, error)
	Update(ctx context.Context, id int, actor Actor, payload dto.JobUpdateRequest) (dto.JobResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
}

type jobService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	sanitizer *bluemonday.Policy
}

// NewJobService constructs a job service.
func NewJobService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) JobService {
	return &jobService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "job_service").Logger(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *jobService) List(ctx context.Context, activeOnly bool) ([]dto.JobResponse, error) {
	if activeOnly {
		return dto.NewJobResponseSlice(s.store.ListActiveJobs(ctx)), nil
	}
	return dto.NewJobResponseSlice(s.store.ListJobs(ctx)), nil
}

func (s *jobService) Get(ctx context.Context, id int) (dto.JobResponse, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return dto.JobResponse{}, err
	}
	return dto.NewJobResponse(job), nil
}

func (s *jobService) Create(ctx context.Context, actor Actor, payload dto.JobCreateRequest) (dto.JobResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JobResponse{}, err
	}

	description := strings.TrimSpace(s.sanitizer.Sanitize(payload.Description))
	if description == "" {
		return dto.JobResponse{}, errors.New("job description empty after sanitization")
	}

	job := s.store.CreateJob(ctx, models.Job{
		Title:              payload.Title,
		Company:            payload.Company,
		Location:           payload.Location,
		Description:        description,
		Requirements:       strings.TrimSpace(s.sanitizer.Sanitize(payload.Requirements)),
		ApplicationProcess: strings.TrimSpace(s.sanitizer.Sanitize(payload.ApplicationProcess)),
		PostedBy:           actor.ID,
		ExpiresAt:          payload.ExpiresAt,
	})

	s.logger.Info().Int("job_id", job.ID).Int("actor_id", actor.ID).Msg("job posted")

	return dto.NewJobResponse(job), nil
}

func (s *jobService) Update(ctx context.Context, id int, actor Actor, payload dto.JobUpdateRequest) (dto.JobResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JobResponse{}, err
	}

	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return dto.JobResponse{}, err
	}

	if err := requireOwnerOrAdmin(job.PostedBy, actor); err != nil {
		return dto.JobResponse{}, err
	}

	partial := store.JobUpdate{
		Title:     payload.Title,
		Company:   payload.Company,
		Location:  payload.Location,
		ExpiresAt: payload.ExpiresAt,
	}
	if payload.Description != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Description))
		if sanitized == "" {
			return dto.JobResponse{}, errors.New("job description empty after sanitization")
		}
		partial.Description = &sanitized
	}
	if payload.Requirements != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Requirements))
		partial.Requirements = &sanitized
	}
	if payload.ApplicationProcess != nil {
		sanitized := strings.TrimSpace(s.sanitizer.Sanitize(*payload.ApplicationProcess))
		partial.ApplicationProcess = &sanitized
	}

	updated, err := s.store.UpdateJob(ctx, id, partial)
	if err != nil {
		return dto.JobResponse{}, err
	}

	return dto.NewJobResponse(updated), nil
}

func (s *jobService) Delete(ctx context.Context, id int, actor Actor) error {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwnerOrAdmin(job.PostedBy, actor); err != nil {
		return err
	}

	if !s.store.DeleteJob(ctx, id) {
		return store.ErrNotFound
	}

	s.logger.Info().Int("job_id", id).Int("actor_id", actor.ID).Msg("job deleted")

	return nil
}
