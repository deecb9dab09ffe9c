package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository/inmem"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			TokenTTLDays:        7,
			BcryptCost:          bcrypt.MinCost,
			EnforceEmployerRole: true,
		},
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewAuthService(testConfig(), store.Users())

	user, err := svc.Register(context.Background(), "John Developer", "john@example.com", "seeker123", domain.RoleUser)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "seeker123", user.PasswordHash)

	stored, err := store.Users().GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewAuthService(testConfig(), store.Users())
	ctx := context.Background()

	_, err := svc.Register(ctx, "John Developer", "john@example.com", "seeker123", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "john@example.com", "other", domain.RoleEmployer)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "Email already exists", domainErr.Message)

	// no second row
	stored, err := store.Users().GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Developer", stored.Name)
}

func TestLoginIssuesTokenWithIdentityAndRole(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewAuthService(testConfig(), store.Users())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "HR", "hr@techinnovations.com", "employer123", domain.RoleEmployer)
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "hr@techinnovations.com", "employer123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, domain.RoleEmployer, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := inmem.NewStore()
	svc := service.NewAuthService(testConfig(), store.Users())
	ctx := context.Background()

	_, err := svc.Register(ctx, "John Developer", "john@example.com", "seeker123", domain.RoleUser)
	require.NoError(t, err)

	_, _, _, unknownEmailErr := svc.Login(ctx, "nobody@example.com", "seeker123")
	require.Error(t, unknownEmailErr)

	_, _, _, wrongPasswordErr := svc.Login(ctx, "john@example.com", "wrong")
	require.Error(t, wrongPasswordErr)

	// neither check leaks: same status, same message
	unknownErr := apperrors.ToDomainError(unknownEmailErr)
	wrongErr := apperrors.ToDomainError(wrongPasswordErr)
	assert.Equal(t, 401, unknownErr.HTTPStatus)
	assert.Equal(t, unknownErr.HTTPStatus, wrongErr.HTTPStatus)
	assert.Equal(t, "Invalid credentials", unknownErr.Message)
	assert.Equal(t, unknownErr.Message, wrongErr.Message)
}
