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

type applicationFixture struct {
	store    *inmem.Store
	jobs     *service.JobService
	apps     *service.ApplicationService
	employer *domain.User
	seeker   *domain.User
	job      *domain.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	store := inmem.NewStore()
	jobSvc := service.NewJobService(testConfig(), store.Jobs(), store.Applications(), nil)
	appSvc := service.NewApplicationService(store.Applications(), store.Jobs(), nil)

	employer := seedUser(t, store, "Tech Innovations Inc.", "hr@techinnovations.com", domain.RoleEmployer)
	seeker := seedUser(t, store, "John Developer", "john@example.com", domain.RoleUser)

	job, err := jobSvc.Create(context.Background(), employer.ID, employer.Role, service.JobCreateInput{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Austin, TX",
	})
	require.NoError(t, err)

	return &applicationFixture{
		store:    store,
		jobs:     jobSvc,
		apps:     appSvc,
		employer: employer,
		seeker:   seeker,
		job:      job,
	}
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	f := newApplicationFixture(t)

	app, err := f.apps.Apply(context.Background(), f.seeker.ID, f.job.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	require.NotNil(t, app.Job)
	assert.Equal(t, f.job.ID, app.Job.ID)
	require.NotNil(t, app.Job.Employer)
	assert.Equal(t, f.employer.ID, app.Job.Employer.ID)
	require.NotNil(t, app.User)
	assert.Equal(t, f.seeker.ID, app.User.ID)
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)

	_, err = f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "You have already applied to this job", domainErr.Message)

	// exactly one row
	own, err := f.apps.ListOwn(ctx, f.seeker.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, domain.ApplicationStatusPending, own[0].Status)
}

func TestListReceivedShortCircuitsWithoutJobs(t *testing.T) {
	f := newApplicationFixture(t)
	jobless := seedUser(t, f.store, "New Employer", "new@company.com", domain.RoleEmployer)

	received, err := f.apps.ListReceived(context.Background(), jobless.ID)
	require.NoError(t, err)
	assert.NotNil(t, received)
	assert.Empty(t, received)
}

func TestListReceivedScopedToOwnedJobs(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	other := seedUser(t, f.store, "Digital Solutions Ltd.", "jobs@digitalsolutions.com", domain.RoleEmployer)
	otherJob, err := f.jobs.Create(ctx, other.ID, other.Role, service.JobCreateInput{
		Title:       "Data Scientist",
		Description: "ML projects",
		Location:    "Boston, MA",
	})
	require.NoError(t, err)

	_, err = f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)
	_, err = f.apps.Apply(ctx, f.seeker.ID, otherJob.ID)
	require.NoError(t, err)

	received, err := f.apps.ListReceived(ctx, f.employer.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, f.job.ID, received[0].JobID)
}

func TestUpdateStatusByOwner(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)

	updated, err := f.apps.UpdateStatus(ctx, f.employer.ID, app.ID, domain.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusAccepted, updated.Status)

	// change visible on subsequent reads
	received, err := f.apps.ListReceived(ctx, f.employer.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, domain.ApplicationStatusAccepted, received[0].Status)
}

func TestUpdateStatusByNonOwnerForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)

	intruder := seedUser(t, f.store, "Cloud Systems Global", "careers@cloudsystems.com", domain.RoleEmployer)
	_, err = f.apps.UpdateStatus(ctx, intruder.ID, app.ID, domain.ApplicationStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus)

	// status unchanged
	own, err := f.apps.ListOwn(ctx, f.seeker.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, domain.ApplicationStatusPending, own[0].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.apps.UpdateStatus(context.Background(), f.employer.ID, "00000000-0000-0000-0000-000000000000", domain.ApplicationStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestStatusTransitionsArePermissive(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.apps.Apply(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)

	// no transition table restricts movement between enumerated values
	for _, status := range []domain.ApplicationStatus{
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
		domain.ApplicationStatusPending,
		domain.ApplicationStatusPending,
	} {
		updated, err := f.apps.UpdateStatus(ctx, f.employer.ID, app.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}
