package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationService coordinates the application lifecycle.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		dispatcher:   dispatcher,
	}
}

// Apply creates a PENDING application for the caller. The jobId is not
// pre-validated; applying to a missing job fails at the storage layer
// with a foreign key violation and surfaces as an internal error. The
// (user, job) pair is checked first and additionally guarded by the
// unique constraint, which the repository translates to a conflict.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	exists, err := s.applications.ExistsForUserAndJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("You have already applied to this job", nil)
	}

	app := &domain.Application{
		UserID: userID,
		JobID:  jobID,
		Status: domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	created, err := s.applications.GetByID(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventApplicationSubmitted,
		Actor: events.Actor{UserID: userID, Role: domain.RoleUser},
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: created.ID,
			JobID:         created.JobID,
			EmployerID:    created.Job.EmployerID,
		},
	})
	return created, nil
}

// ListOwn returns the caller's applications joined with job, employer
// and applicant projections.
func (s *ApplicationService) ListOwn(ctx context.Context, userID string) ([]domain.Application, error) {
	return s.applications.ListByUser(ctx, userID)
}

// ListReceived returns applications for every job owned by the caller,
// newest first. An employer without jobs short-circuits to an empty
// list without querying applications.
func (s *ApplicationService) ListReceived(ctx context.Context, employerID string) ([]domain.Application, error) {
	jobIDs, err := s.jobs.ListIDsByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if len(jobIDs) == 0 {
		return []domain.Application{}, nil
	}
	return s.applications.ListByJobIDs(ctx, jobIDs)
}

// UpdateStatus transitions an application's status. Only the employer
// owning the referenced job may do so. Any of the enumerated values is
// accepted from any prior value.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Application", nil)
		}
		return nil, err
	}
	if app.Job.EmployerID != employerID {
		return nil, apperrors.NewForbidden("Unauthorized to update this application")
	}

	oldStatus := app.Status
	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, err
	}

	updated, err := s.applications.GetByID(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventApplicationStatusChanged,
		Actor: events.Actor{UserID: employerID, Role: domain.RoleEmployer},
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: updated.ID,
			JobID:         updated.JobID,
			OldStatus:     oldStatus,
			NewStatus:     updated.Status,
		},
	})
	return updated, nil
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
