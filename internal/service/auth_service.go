package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// AuthService exposes account registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
	CurrentUser(ctx context.Context, userID int) (dto.UserResponse, error)
	EnsureAdmin(ctx context.Context, username, password, email string) error
}

type authService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	secret    []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService constructs an auth service.
func NewAuthService(st *store.Store, validate *validator.Validate, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	username := strings.TrimSpace(payload.Username)
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return dto.AuthResponse{}, ErrDuplicateUser
	}
	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return dto.AuthResponse{}, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		Name:     strings.TrimSpace(payload.Name),
	}
	if first := strings.TrimSpace(payload.FirstName); first != "" {
		user.FirstName = &first
	}
	if last := strings.TrimSpace(payload.LastName); last != "" {
		user.LastName = &last
	}

	user = s.store.CreateUser(ctx, user)
	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("account registered")

	token, err := s.signToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(payload.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.AuthResponse{}, ErrCredentials
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return dto.AuthResponse{}, ErrCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user logged in")

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int) (dto.UserResponse, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *authService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	if password == "" {
		return nil
	}

	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := s.store.CreateUser(ctx, models.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		Name:     "Administrator",
		IsAdmin:  true,
	})
	s.logger.Info().Int("user_id", admin.ID).Msg("bootstrap admin created")

	return nil
}

func (s *authService) signToken(user models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(user.ID),
		"role": user.Role(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
