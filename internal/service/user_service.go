package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/store"
)

// MinSearchTermLength is the shortest accepted people-search term.
const MinSearchTermLength = 2

// ErrSearchTermTooShort indicates a people-search term below the minimum length.
var ErrSearchTermTooShort = errors.New("search term too short")

// UserService exposes profile use-cases.
type UserService interface {
	Get(ctx context.Context, id int) (dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id int, actor Actor, payload dto.UserUpdateRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
	Search(ctx context.Context, term string) ([]dto.UserResponse, error)
}

type userService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewUserService constructs a user service.
func NewUserService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) Get(ctx context.Context, id int) (dto.UserResponse, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	return dto.NewUserResponseSlice(s.store.ListUsers(ctx)), nil
}

func (s *userService) Update(ctx context.Context, id int, actor Actor, payload dto.UserUpdateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	if err := requireOwnerOrAdmin(id, actor); err != nil {
		return dto.UserResponse{}, err
	}

	partial := store.UserUpdate{
		Email:              payload.Email,
		Name:               payload.Name,
		FirstName:          payload.FirstName,
		LastName:           payload.LastName,
		Phone:              payload.Phone,
		Bio:                payload.Bio,
		ProfileImageURL:    payload.ProfileImageURL,
		CoverImageURL:      payload.CoverImageURL,
		Gender:             payload.Gender,
		Address:            payload.Address,
		City:               payload.City,
		State:              payload.State,
		Country:            payload.Country,
		PostalCode:         payload.PostalCode,
		GraduationYear:     payload.GraduationYear,
		Degree:             payload.Degree,
		Major:              payload.Major,
		StudentID:          payload.StudentID,
		CurrentPosition:    payload.CurrentPosition,
		Company:            payload.Company,
		Industry:           payload.Industry,
		YearsOfExperience:  payload.YearsOfExperience,
		Skills:             payload.Skills,
		Interests:          payload.Interests,
		Achievements:       payload.Achievements,
		LinkedinURL:        payload.LinkedinURL,
		TwitterURL:         payload.TwitterURL,
		FacebookURL:        payload.FacebookURL,
		InstagramURL:       payload.InstagramURL,
		WebsiteURL:         payload.WebsiteURL,
		MentorshipOffered:  payload.MentorshipOffered,
		OpenToOpportunity:  payload.OpenToOpportunity,
		PreferredContactBy: payload.PreferredContactBy,
	}

	user, err := s.store.UpdateUser(ctx, id, partial)
	if err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Int("user_id", id).Int("actor_id", actor.ID).Msg("profile updated")

	return dto.NewUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id int, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if !s.store.DeleteUser(ctx, id) {
		return store.ErrNotFound
	}

	s.logger.Info().Int("user_id", id).Int("actor_id", actor.ID).Msg("user deleted")

	return nil
}

func (s *userService) Search(ctx context.Context, term string) ([]dto.UserResponse, error) {
	trimmed := strings.TrimSpace(term)
	if len(trimmed) < MinSearchTermLength {
		return nil, ErrSearchTermTooShort
	}

	return dto.NewUserResponseSlice(s.store.SearchUsersByName(ctx, trimmed)), nil
}
