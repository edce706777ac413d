package store

import (
	"context"
	"sort"

	"github.com/alumniconnect/portal-api/internal/models"
)

// DocumentUpdate is a shallow partial of a document record.
type DocumentUpdate struct {
	Title         *string
	DocumentType  *string
	FileURL       *string
	FileType      *string
	Description   *string
	Status        *string
	AdminFeedback *string
}

// CreateDocument assigns the next document id, defaults the status to pending
// and stores the record.
func (s *Store) CreateDocument(_ context.Context, document models.Document) models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	document.ID = s.nextID(kindDocument)
	if document.UploadedAt.IsZero() {
		document.UploadedAt = s.now()
	}
	if document.Status == "" {
		document.Status = models.DocumentStatusPending
	}
	s.documents[document.ID] = document

	return document
}

// GetDocument returns the document with the given id or ErrNotFound.
func (s *Store) GetDocument(_ context.Context, id int) (models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	document, ok := s.documents[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}
	return document, nil
}

// ListDocuments returns every document ordered by upload time descending.
func (s *Store) ListDocuments(_ context.Context) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]models.Document, 0, len(s.documents))
	for _, document := range s.documents {
		documents = append(documents, document)
	}
	sortDocuments(documents)

	return documents
}

// ListDocumentsByUser returns the user's documents ordered by upload time
// descending.
func (s *Store) ListDocumentsByUser(_ context.Context, userID int) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]models.Document, 0)
	for _, document := range s.documents {
		if document.UserID == userID {
			documents = append(documents, document)
		}
	}
	sortDocuments(documents)

	return documents
}

// ListDocumentsByStatus returns documents in the given review status ordered
// by upload time descending.
func (s *Store) ListDocumentsByStatus(_ context.Context, status string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]models.Document, 0)
	for _, document := range s.documents {
		if document.Status == status {
			documents = append(documents, document)
		}
	}
	sortDocuments(documents)

	return documents
}

// UpdateDocument shallow-merges the partial into the stored record and stamps
// UpdatedAt.
func (s *Store) UpdateDocument(_ context.Context, id int, partial DocumentUpdate) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, ok := s.documents[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}

	if partial.Title != nil {
		document.Title = *partial.Title
	}
	if partial.DocumentType != nil {
		document.DocumentType = *partial.DocumentType
	}
	if partial.FileURL != nil {
		document.FileURL = *partial.FileURL
	}
	if partial.FileType != nil {
		document.FileType = *partial.FileType
	}
	if partial.Description != nil {
		document.Description = partial.Description
	}
	if partial.Status != nil {
		document.Status = *partial.Status
	}
	if partial.AdminFeedback != nil {
		document.AdminFeedback = partial.AdminFeedback
	}

	now := s.now()
	document.UpdatedAt = &now
	s.documents[id] = document

	return document, nil
}

// DeleteDocument removes the document and reports whether it existed.
func (s *Store) DeleteDocument(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return false
	}
	delete(s.documents, id)

	return true
}

func sortDocuments(documents []models.Document) {
	sort.Slice(documents, func(i, j int) bool {
		if documents[i].UploadedAt.Equal(documents[j].UploadedAt) {
			return documents[i].ID > documents[j].ID
		}
		return documents[i].UploadedAt.After(documents[j].UploadedAt)
	})
}
