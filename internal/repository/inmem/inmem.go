// Package inmem provides in-memory repository implementations backed by
// maps. They honor the same sentinel and conflict behavior as the
// Postgres implementations and back the service and handler tests.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// Store holds all three tables behind one mutex.
type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	jobs         map[string]domain.Job
	applications map[string]domain.Application
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		jobs:         make(map[string]domain.Job),
		applications: make(map[string]domain.Application),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Jobs returns the job repository view of the store.
func (s *Store) Jobs() repository.JobRepository { return &jobRepo{s} }

// Applications returns the application repository view of the store.
func (s *Store) Applications() repository.ApplicationRepository { return &applicationRepo{s} }

type userRepo struct{ store *Store }

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return apperrors.NewConflict("Email already exists", nil)
		}
	}
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type jobRepo struct{ store *Store }

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	stored := *job
	stored.Employer = nil
	r.store.jobs[job.ID] = stored
	return nil
}

func (r *jobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.joinedJob(id)
}

func (r *jobRepo) List(_ context.Context) ([]domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]domain.Job, 0, len(r.store.jobs))
	for id := range r.store.jobs {
		job, err := r.joinedJob(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *jobRepo) ListIDsByEmployer(_ context.Context, employerID string) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var ids []string
	for id, job := range r.store.jobs {
		if job.EmployerID == employerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// joinedJob expects the store lock held.
func (r *jobRepo) joinedJob(id string) (*domain.Job, error) {
	job, ok := r.store.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	employer, ok := r.store.users[job.EmployerID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	profile := employer.PublicProfile()
	job.Employer = &profile
	return &job, nil
}

type applicationRepo struct{ store *Store }

func (r *applicationRepo) Create(_ context.Context, app *domain.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.applications {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			return apperrors.NewConflict("You have already applied to this job", nil)
		}
	}
	now := time.Now()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now
	stored := *app
	stored.Job = nil
	stored.User = nil
	r.store.applications[app.ID] = stored
	return nil
}

func (r *applicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.joinedApplication(id)
}

func (r *applicationRepo) ExistsForUserAndJob(_ context.Context, userID, jobID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, app := range r.store.applications {
		if app.UserID == userID && app.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	app, ok := r.store.applications[id]
	if !ok {
		return pgx.ErrNoRows
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	r.store.applications[id] = app
	return nil
}

func (r *applicationRepo) ListByUser(_ context.Context, userID string) ([]domain.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []domain.Application
	for id, app := range r.store.applications {
		if app.UserID != userID {
			continue
		}
		joined, err := r.joinedApplication(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *joined)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *applicationRepo) ListByJobIDs(_ context.Context, jobIDs []string) ([]domain.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	wanted := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = struct{}{}
	}
	var result []domain.Application
	for id, app := range r.store.applications {
		if _, ok := wanted[app.JobID]; !ok {
			continue
		}
		joined, err := r.joinedApplication(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *joined)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *applicationRepo) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []domain.Application
	for _, app := range r.store.applications {
		if app.JobID == jobID {
			result = append(result, app)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// joinedApplication expects the store lock held.
func (r *applicationRepo) joinedApplication(id string) (*domain.Application, error) {
	app, ok := r.store.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	job, ok := r.store.jobs[app.JobID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	employer, ok := r.store.users[job.EmployerID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	applicant, ok := r.store.users[app.UserID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	employerProfile := employer.PublicProfile()
	job.Employer = &employerProfile
	applicantProfile := applicant.PublicProfile()
	app.Job = &job
	app.User = &applicantProfile
	return &app, nil
}

func sortNewestFirst(apps []domain.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}
