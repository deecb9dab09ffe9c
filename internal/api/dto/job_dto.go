package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// JobResponse represents a job joined with its employer projection.
// The detail endpoint additionally carries the job's applications.
type JobResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Location     string               `json:"location"`
	EmployerID   string               `json:"employerId"`
	CreatedAt    time.Time            `json:"createdAt"`
	Employer     *domain.Profile      `json:"employer,omitempty"`
	Applications []ApplicationSummary `json:"applications,omitempty"`
}

// ApplicationSummary is the bare application row nested under a job.
type ApplicationSummary struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	JobID     string                   `json:"jobId"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
}
