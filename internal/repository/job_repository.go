package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobRepository encapsulates job persistence. Reads join the owning
// employer projection.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListIDsByEmployer(ctx context.Context, employerID string) ([]string, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, description, location, employer_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.EmployerID,
	).Scan(&job.ID, &job.CreatedAt)
}

const jobSelect = `
        SELECT j.id, j.title, j.description, j.location, j.employer_id, j.created_at,
               u.id, u.name, u.email, u.role
        FROM jobs j
        JOIN users u ON u.id = j.employer_id`

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := jobSelect + ` WHERE j.id=$1`
	var job domain.Job
	var employer domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.EmployerID,
		&job.CreatedAt,
		&employer.ID,
		&employer.Name,
		&employer.Email,
		&employer.Role,
	); err != nil {
		return nil, err
	}
	job.Employer = &employer
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	query := jobSelect + ` ORDER BY j.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ListIDsByEmployer(ctx context.Context, employerID string) ([]string, error) {
	const query = `SELECT id FROM jobs WHERE employer_id=$1`
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		var employer domain.Profile
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Description,
			&job.Location,
			&job.EmployerID,
			&job.CreatedAt,
			&employer.ID,
			&employer.Name,
			&employer.Email,
			&employer.Role,
		); err != nil {
			return nil, err
		}
		job.Employer = &employer
		result = append(result, job)
	}
	return result, rows.Err()
}
