package store

import (
	"context"
	"sort"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// JobUpdate is a shallow partial of a job record.
type JobUpdate struct {
	Title              *string
	Company            *string
	Location           *string
	Description        *string
	Requirements       *string
	ApplicationProcess *string
	ExpiresAt          *time.Time
}

// CreateJob assigns the next job id and stores the record.
func (s *Store) CreateJob(_ context.Context, job models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.nextID(kindJob)
	if job.PostedAt.IsZero() {
		job.PostedAt = s.now()
	}
	s.jobs[job.ID] = job

	return job
}

// GetJob returns the job with the given id or ErrNotFound.
func (s *Store) GetJob(_ context.Context, id int) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	return job, nil
}

// ListJobs returns every job ordered by posting time descending.
func (s *Store) ListJobs(_ context.Context) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].PostedAt.Equal(jobs[j].PostedAt) {
			return jobs[i].ID > jobs[j].ID
		}
		return jobs[i].PostedAt.After(jobs[j].PostedAt)
	})

	return jobs
}

// ListActiveJobs returns jobs with no expiry or an expiry in the future.
func (s *Store) ListActiveJobs(ctx context.Context) []models.Job {
	now := s.now()

	jobs := s.ListJobs(ctx)
	active := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive(now) {
			active = append(active, job)
		}
	}

	return active
}

// UpdateJob shallow-merges the partial into the stored record.
func (s *Store) UpdateJob(_ context.Context, id int, partial JobUpdate) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}

	if partial.Title != nil {
		job.Title = *partial.Title
	}
	if partial.Company != nil {
		job.Company = *partial.Company
	}
	if partial.Location != nil {
		job.Location = *partial.Location
	}
	if partial.Description != nil {
		job.Description = *partial.Description
	}
	if partial.Requirements != nil {
		job.Requirements = *partial.Requirements
	}
	if partial.ApplicationProcess != nil {
		job.ApplicationProcess = *partial.ApplicationProcess
	}
	if partial.ExpiresAt != nil {
		job.ExpiresAt = partial.ExpiresAt
	}

	s.jobs[id] = job

	return job, nil
}

// DeleteJob removes the job and reports whether it existed.
func (s *Store) DeleteJob(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return false
	}
	delete(s.jobs, id)

	return true
}
