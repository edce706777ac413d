package store

import (
	"context"
	"sort"

	"github.com/alumniconnect/portal-api/internal/models"
)

// GalleryUpdate is a shallow partial of a gallery record.
type GalleryUpdate struct {
	Title       *string
	Description *string
}

// GalleryImageUpdate is a shallow partial of a gallery image record.
type GalleryImageUpdate struct {
	ImageURL *string
	Caption  *string
	MimeType *string
}

// CreateGallery assigns the next gallery id and stores the record.
func (s *Store) CreateGallery(_ context.Context, gallery models.Gallery) models.Gallery {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery.ID = s.nextID(kindGallery)
	if gallery.CreatedAt.IsZero() {
		gallery.CreatedAt = s.now()
	}
	s.galleries[gallery.ID] = gallery

	return gallery
}

// GetGallery returns the gallery with the given id or ErrNotFound.
func (s *Store) GetGallery(_ context.Context, id int) (models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return models.Gallery{}, ErrNotFound
	}
	return gallery, nil
}

// ListGalleries returns every gallery ordered by creation time descending.
func (s *Store) ListGalleries(_ context.Context) []models.Gallery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	galleries := make([]models.Gallery, 0, len(s.galleries))
	for _, gallery := range s.galleries {
		galleries = append(galleries, gallery)
	}
	sort.Slice(galleries, func(i, j int) bool {
		if galleries[i].CreatedAt.Equal(galleries[j].CreatedAt) {
			return galleries[i].ID > galleries[j].ID
		}
		return galleries[i].CreatedAt.After(galleries[j].CreatedAt)
	})

	return galleries
}

// UpdateGallery shallow-merges the partial into the stored record.
func (s *Store) UpdateGallery(_ context.Context, id int, partial GalleryUpdate) (models.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return models.Gallery{}, ErrNotFound
	}

	if partial.Title != nil {
		gallery.Title = *partial.Title
	}
	if partial.Description != nil {
		gallery.Description = partial.Description
	}

	s.galleries[id] = gallery

	return gallery, nil
}

// DeleteGallery removes the gallery and reports whether it existed. Images in
// the gallery are the caller's cleanup to sequence.
func (s *Store) DeleteGallery(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.galleries[id]; !ok {
		return false
	}
	delete(s.galleries, id)

	return true
}

// CreateGalleryImage assigns the next image id and stores the record.
func (s *Store) CreateGalleryImage(_ context.Context, image models.GalleryImage) models.GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = s.nextID(kindGalleryImage)
	if image.UploadedAt.IsZero() {
		image.UploadedAt = s.now()
	}
	s.galleryImages[image.ID] = image

	return image
}

// GetGalleryImage returns the image with the given id or ErrNotFound.
func (s *Store) GetGalleryImage(_ context.Context, id int) (models.GalleryImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	image, ok := s.galleryImages[id]
	if !ok {
		return models.GalleryImage{}, ErrNotFound
	}
	return image, nil
}

// ListGalleryImages returns all images of a gallery ordered by id.
func (s *Store) ListGalleryImages(_ context.Context, galleryID int) []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]models.GalleryImage, 0)
	for _, image := range s.galleryImages {
		if image.GalleryID == galleryID {
			images = append(images, image)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })

	return images
}

// DeleteGalleryImage removes the image and reports whether it existed.
func (s *Store) DeleteGalleryImage(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.galleryImages[id]; !ok {
		return false
	}
	delete(s.galleryImages, id)

	return true
}
