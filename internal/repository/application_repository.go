package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationRepository encapsulates application persistence. Joined
// reads return the application together with its job, the job's
// employer projection and the applicant projection.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ExistsForUserAndJob(ctx context.Context, userID, jobID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (user_id, job_id, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		app.UserID,
		app.JobID,
		app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if isUniqueViolation(err) {
		return apperrors.NewConflict("You have already applied to this job", nil)
	}
	return err
}

const applicationSelect = `
        SELECT a.id, a.user_id, a.job_id, a.status, a.created_at, a.updated_at,
               j.id, j.title, j.description, j.location, j.employer_id, j.created_at,
               e.id, e.name, e.email, e.role,
               u.id, u.name, u.email, u.role
        FROM applications a
        JOIN jobs j ON j.id = a.job_id
        JOIN users e ON e.id = j.employer_id
        JOIN users u ON u.id = a.user_id`

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	app, err := scanApplicationRow(row)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) ExistsForUserAndJob(ctx context.Context, userID, jobID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM applications WHERE user_id=$1 AND job_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, jobID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.user_id=$1 ORDER BY a.created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByJobIDs(ctx context.Context, jobIDs []string) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.job_id = ANY($1) ORDER BY a.created_at DESC`
	rows, err := r.pool.Query(ctx, query, jobIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	const query = `
        SELECT id, user_id, job_id, status, created_at, updated_at
        FROM applications WHERE job_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.UserID,
			&app.JobID,
			&app.Status,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func scanApplicationRow(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	var job domain.Job
	var employer, applicant domain.Profile
	if err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
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
		&applicant.ID,
		&applicant.Name,
		&applicant.Email,
		&applicant.Role,
	); err != nil {
		return nil, err
	}
	job.Employer = &employer
	app.Job = &job
	app.User = &applicant
	return &app, nil
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		app, err := scanApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	return result, rows.Err()
}
