package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobService coordinates job posting and browsing.
type JobService struct {
	jobs                repository.JobRepository
	applications        repository.ApplicationRepository
	dispatcher          events.Dispatcher
	enforceEmployerRole bool
}

// JobCreateInput describes the posting payload.
type JobCreateInput struct {
	Title       string
	Description string
	Location    string
}

// NewJobService constructs the service.
func NewJobService(cfg config.Config, jobs repository.JobRepository, applications repository.ApplicationRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{
		jobs:                jobs,
		applications:        applications,
		dispatcher:          dispatcher,
		enforceEmployerRole: cfg.Auth.EnforceEmployerRole,
	}
}

// Create persists a job owned by the caller.
func (s *JobService) Create(ctx context.Context, actorID string, actorRole domain.Role, input JobCreateInput) (*domain.Job, error) {
	if s.enforceEmployerRole && actorRole != domain.RoleEmployer {
		return nil, apperrors.NewForbidden("Only employers may post jobs")
	}

	job := &domain.Job{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		EmployerID:  actorID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	// re-read for the employer projection
	created, err := s.jobs.GetByID(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventJobPosted,
		Actor: events.Actor{UserID: actorID, Role: actorRole},
		Payload: events.JobPostedPayload{
			JobID:    created.ID,
			Title:    created.Title,
			Location: created.Location,
		},
	})
	return created, nil
}

// List returns every job joined with its employer projection. Public,
// unfiltered and unpaginated.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

// Get returns a job with its employer projection and applications.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, []domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("Job", nil)
		}
		return nil, nil, err
	}
	applications, err := s.applications.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, nil, err
	}
	return job, applications, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
