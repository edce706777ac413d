package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// GalleryService exposes photo-gallery use-cases.
type GalleryService interface {
	List(ctx context.Context) ([]dto.GalleryResponse, error)
	Get(ctx context.Context, id int) (dto.GalleryResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.GalleryCreateRequest) (dto.GalleryResponse, error)
	Update(ctx context.Context, id int, actor Actor, payload dto.GalleryUpdateRequest) (dto.GalleryResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
	ListImages(ctx context.Context, galleryID int) ([]dto.GalleryImageResponse, error)
	AddImage(ctx context.Context, galleryID int, actor Actor, payload dto.GalleryImageCreateRequest) (dto.GalleryImageResponse, error)
	RemoveImage(ctx context.Context, galleryID, imageID int, actor Actor) error
}

type galleryService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewGalleryService constructs a gallery service.
func NewGalleryService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) GalleryService {
	return &galleryService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "gallery_service").Logger(),
	}
}

func (s *galleryService) List(ctx context.Context) ([]dto.GalleryResponse, error) {
	return dto.NewGalleryResponseSlice(s.store.ListGalleries(ctx)), nil
}

func (s *galleryService) Get(ctx context.Context, id int) (dto.GalleryResponse, error) {
	gallery, err := s.store.GetGallery(ctx, id)
	if err != nil {
		return dto.GalleryResponse{}, err
	}
	return dto.NewGalleryResponse(gallery), nil
}

func (s *galleryService) Create(ctx context.Context, actor Actor, payload dto.GalleryCreateRequest) (dto.GalleryResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GalleryResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.GalleryResponse{}, err
	}

	gallery := s.store.CreateGallery(ctx, models.Gallery{
		Title:       payload.Title,
		Description: payload.Description,
		CreatedBy:   actor.ID,
	})

	s.logger.Info().Int("gallery_id", gallery.ID).Int("actor_id", actor.ID).Msg("gallery created")

	return dto.NewGalleryResponse(gallery), nil
}

func (s *galleryService) Update(ctx context.Context, id int, actor Actor, payload dto.GalleryUpdateRequest) (dto.GalleryResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GalleryResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.GalleryResponse{}, err
	}

	gallery, err := s.store.UpdateGallery(ctx, id, store.GalleryUpdate{
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		return dto.GalleryResponse{}, err
	}

	return dto.NewGalleryResponse(gallery), nil
}

func (s *galleryService) Delete(ctx context.Context, id int, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if !s.store.DeleteGallery(ctx, id) {
		return store.ErrNotFound
	}

	// Image cleanup is a separate, non-atomic follow-up.
	for _, image := range s.store.ListGalleryImages(ctx, id) {
		s.store.DeleteGalleryImage(ctx, image.ID)
	}

	s.logger.Info().Int("gallery_id", id).Int("actor_id", actor.ID).Msg("gallery deleted")

	return nil
}

func (s *galleryService) ListImages(ctx context.Context, galleryID int) ([]dto.GalleryImageResponse, error) {
	if _, err := s.store.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	return dto.NewGalleryImageResponseSlice(s.store.ListGalleryImages(ctx, galleryID)), nil
}

func (s *galleryService) AddImage(ctx context.Context, galleryID int, actor Actor, payload dto.GalleryImageCreateRequest) (dto.GalleryImageResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GalleryImageResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.GalleryImageResponse{}, err
	}

	if _, err := s.store.GetGallery(ctx, galleryID); err != nil {
		return dto.GalleryImageResponse{}, err
	}

	image := s.store.CreateGalleryImage(ctx, models.GalleryImage{
		GalleryID:  galleryID,
		ImageURL:   payload.ImageURL,
		Caption:    payload.Caption,
		MimeType:   sniffDataURL(payload.ImageURL),
		UploadedBy: actor.ID,
	})

	s.logger.Info().Int("gallery_id", galleryID).Int("image_id", image.ID).Msg("gallery image added")

	return dto.NewGalleryImageResponse(image), nil
}

func (s *galleryService) RemoveImage(ctx context.Context, galleryID, imageID int, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	image, err := s.store.GetGalleryImage(ctx, imageID)
	if err != nil {
		return err
	}
	if image.GalleryID != galleryID {
		return store.ErrNotFound
	}

	if !s.store.DeleteGalleryImage(ctx, imageID) {
		return store.ErrNotFound
	}

	return nil
}

// sniffDataURL detects the content type of an embedded data URL. Remote URLs
// and undecodable payloads yield an empty type.
func sniffDataURL(raw string) string {
	const prefix = "data:"
	if !strings.HasPrefix(raw, prefix) {
		return ""
	}

	comma := strings.IndexByte(raw, ',')
	if comma < 0 {
		return ""
	}

	payload := raw[comma+1:]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ""
	}

	return mimetype.Detect(decoded).String()
}
