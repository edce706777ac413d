package store

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
)

// UniversityUpdate is a shallow partial of the singleton university record.
type UniversityUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Address      *string
	WebsiteURL   *string
	FacebookURL  *string
	TwitterURL   *string
	InstagramURL *string
	LinkedinURL  *string
	Description  *string
	Vision       *string
	Mission      *string
}

// GetUniversityInfo returns the singleton university record.
func (s *Store) GetUniversityInfo(_ context.Context) models.UniversityInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.university
}

// UpdateUniversityInfo shallow-merges the partial into the singleton record,
// stamping UpdatedAt and the updating user.
func (s *Store) UpdateUniversityInfo(_ context.Context, partial UniversityUpdate, updatedBy int) models.UniversityInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := s.university

	if partial.Name != nil {
		info.Name = *partial.Name
	}
	if partial.Email != nil {
		info.Email = *partial.Email
	}
	if partial.Phone != nil {
		info.Phone = *partial.Phone
	}
	if partial.Address != nil {
		info.Address = *partial.Address
	}
	if partial.WebsiteURL != nil {
		info.WebsiteURL = *partial.WebsiteURL
	}
	if partial.FacebookURL != nil {
		info.FacebookURL = *partial.FacebookURL
	}
	if partial.TwitterURL != nil {
		info.TwitterURL = *partial.TwitterURL
	}
	if partial.InstagramURL != nil {
		info.InstagramURL = *partial.InstagramURL
	}
	if partial.LinkedinURL != nil {
		info.LinkedinURL = *partial.LinkedinURL
	}
	if partial.Description != nil {
		info.Description = *partial.Description
	}
	if partial.Vision != nil {
		info.Vision = *partial.Vision
	}
	if partial.Mission != nil {
		info.Mission = *partial.Mission
	}

	info.UpdatedAt = s.now()
	info.UpdatedBy = updatedBy
	s.university = info

	return info
}
