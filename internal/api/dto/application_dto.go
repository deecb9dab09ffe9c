package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplyRequest payload.
type ApplyRequest struct {
	JobID string `json:"jobId"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// ApplicationResponse represents an application joined with its job
// (including the job's employer) and the applicant projection.
type ApplicationResponse struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	JobID     string                   `json:"jobId"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Job       *JobResponse             `json:"job,omitempty"`
	User      *domain.Profile          `json:"user,omitempty"`
}
