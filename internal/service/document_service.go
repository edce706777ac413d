package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/dto"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

// DocumentService exposes the document review workflow.
type DocumentService interface {
	Create(ctx context.Context, actor Actor, payload dto.DocumentCreateRequest) (dto.DocumentResponse, error)
	Get(ctx context.Context, id int, actor Actor) (dto.DocumentResponse, error)
	List(ctx context.Context, actor Actor, status string) ([]dto.DocumentResponse, error)
	SetStatus(ctx context.Context, id int, actor Actor, payload dto.DocumentStatusRequest) (dto.DocumentResponse, error)
	Delete(ctx context.Context, id int, actor Actor) error
}

type documentService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDocumentService constructs a document service.
func NewDocumentService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) DocumentService {
	return &documentService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "document_service").Logger(),
	}
}

func (s *documentService) Create(ctx context.Context, actor Actor, payload dto.DocumentCreateRequest) (dto.DocumentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DocumentResponse{}, err
	}

	document := s.store.CreateDocument(ctx, models.Document{
		UserID:       actor.ID,
		Title:        payload.Title,
		DocumentType: payload.DocumentType,
		FileURL:      payload.FileURL,
		FileType:     sniffDataURL(payload.FileURL),
		Description:  payload.Description,
	})

	s.logger.Info().Int("document_id", document.ID).Int("user_id", actor.ID).Msg("document submitted for review")

	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Get(ctx context.Context, id int, actor Actor) (dto.DocumentResponse, error) {
	document, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := requireOwnerOrAdmin(document.UserID, actor); err != nil {
		return dto.DocumentResponse{}, err
	}

	return dto.NewDocumentResponse(document), nil
}

// List returns the caller's own documents; admins see every document,
// optionally narrowed by review status.
func (s *documentService) List(ctx context.Context, actor Actor, status string) ([]dto.DocumentResponse, error) {
	if !actor.IsAdmin {
		return dto.NewDocumentResponseSlice(s.store.ListDocumentsByUser(ctx, actor.ID)), nil
	}

	if status != "" {
		return dto.NewDocumentResponseSlice(s.store.ListDocumentsByStatus(ctx, status)), nil
	}
	return dto.NewDocumentResponseSlice(s.store.ListDocuments(ctx)), nil
}

func (s *documentService) SetStatus(ctx context.Context, id int, actor Actor, payload dto.DocumentStatusRequest) (dto.DocumentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := requireAdmin(actor); err != nil {
		return dto.DocumentResponse{}, err
	}

	document, err := s.store.UpdateDocument(ctx, id, store.DocumentUpdate{
		Status:        &payload.Status,
		AdminFeedback: payload.AdminFeedback,
	})
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	s.logger.Info().Int("document_id", id).Str("status", payload.Status).Int("actor_id", actor.ID).Msg("document review decision recorded")

	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Delete(ctx context.Context, id int, actor Actor) error {
	document, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwnerOrAdmin(document.UserID, actor); err != nil {
		return err
	}

	if !s.store.DeleteDocument(ctx, id) {
		return store.ErrNotFound
	}

	return nil
}
