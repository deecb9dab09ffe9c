package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository/inmem"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func seedUser(t *testing.T, store *inmem.Store, name, email string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func TestCreateJobRequiresEmployerRole(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewJobService(testConfig(), store.Jobs(), store.Applications(), nil)
	seeker := seedUser(t, store, "John", "john@example.com", domain.RoleUser)

	_, err := svc.Create(context.Background(), seeker.ID, seeker.Role, service.JobCreateInput{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus)
}

func TestCreateJobEnforcementCanBeDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.EnforceEmployerRole = false
	store := inmem.NewStore()
	svc := service.NewJobService(cfg, store.Jobs(), store.Applications(), nil)
	seeker := seedUser(t, store, "John", "john@example.com", domain.RoleUser)

	job, err := svc.Create(context.Background(), seeker.ID, seeker.Role, service.JobCreateInput{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
	})
	require.NoError(t, err)
	assert.Equal(t, seeker.ID, job.EmployerID)
}

func TestCreateJobReturnsEmployerProjection(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewJobService(testConfig(), store.Jobs(), store.Applications(), nil)
	employer := seedUser(t, store, "Tech Innovations Inc.", "hr@techinnovations.com", domain.RoleEmployer)

	job, err := svc.Create(context.Background(), employer.ID, employer.Role, service.JobCreateInput{
		Title:       "Senior Full Stack Developer",
		Description: "React and Go",
		Location:    "San Francisco, CA",
	})
	require.NoError(t, err)

	require.NotNil(t, job.Employer)
	assert.Equal(t, employer.ID, job.Employer.ID)
	assert.Equal(t, "Tech Innovations Inc.", job.Employer.Name)
}

func TestGetJobNotFound(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewJobService(testConfig(), store.Jobs(), store.Applications(), nil)

	_, _, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestGetJobIncludesApplications(t *testing.T) {
	store := inmem.NewStore()
	jobSvc := service.NewJobService(testConfig(), store.Jobs(), store.Applications(), nil)
	appSvc := service.NewApplicationService(store.Applications(), store.Jobs(), nil)
	ctx := context.Background()

	employer := seedUser(t, store, "HR", "hr@techinnovations.com", domain.RoleEmployer)
	seeker := seedUser(t, store, "John", "john@example.com", domain.RoleUser)

	job, err := jobSvc.Create(ctx, employer.ID, employer.Role, service.JobCreateInput{
		Title:       "DevOps Engineer",
		Description: "Cloud infrastructure",
		Location:    "Seattle, WA",
	})
	require.NoError(t, err)

	_, err = appSvc.Apply(ctx, seeker.ID, job.ID)
	require.NoError(t, err)

	fetched, applications, err := jobSvc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, fetched.ID)
	require.Len(t, applications, 1)
	assert.Equal(t, seeker.ID, applications[0].UserID)
}
