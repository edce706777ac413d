package dto

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// JobCreateRequest is the payload for posting a job.
type JobCreateRequest struct {
	Title              string     `json:"title" validate:"required,min=1,max=255"`
	Company            string     `json:"company" validate:"required,min=1,max=255"`
	Location           string     `json:"location" validate:"required,min=1,max=255"`
	Description        string     `json:"description" validate:"required,min=1,max=8000"`
	Requirements       string     `json:"requirements" validate:"required,min=1,max=8000"`
	ApplicationProcess string     `json:"application_process" validate:"required,min=1,max=4000"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// JobUpdateRequest carries the editable job fields.
type JobUpdateRequest struct {
	Title              *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Company            *string    `json:"company" validate:"omitempty,min=1,max=255"`
	Location           *string    `json:"location" validate:"omitempty,min=1,max=255"`
	Description        *string    `json:"description" validate:"omitempty,min=1,max=8000"`
	Requirements       *string    `json:"requirements" validate:"omitempty,min=1,max=8000"`
	ApplicationProcess *string    `json:"application_process" validate:"omitempty,min=1,max=4000"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// JobResponse is the serialized representation of a job posting.
type JobResponse struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	ApplicationProcess string     `json:"application_process"`
	PostedBy           int        `json:"posted_by"`
	PostedAt           time.Time  `json:"posted_at"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}

// NewJobResponse converts a model into a DTO.
func NewJobResponse(job models.Job) JobResponse {
	return JobResponse{
		ID:                 job.ID,
		Title:              job.Title,
		Company:            job.Company,
		Location:           job.Location,
		Description:        job.Description,
		Requirements:       job.Requirements,
		ApplicationProcess: job.ApplicationProcess,
		PostedBy:           job.PostedBy,
		PostedAt:           job.PostedAt,
		ExpiresAt:          job.ExpiresAt,
	}
}

// NewJobResponseSlice converts a slice of models into DTOs.
func NewJobResponseSlice(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, NewJobResponse(job))
	}
	return out
}
