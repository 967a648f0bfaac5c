package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost}
}

func TestRegisterIfAbsentCreatesUser(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "alice@example.com" && u.Role == domain.RoleRegular
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = "user-1"
	}).Return(nil)

	svc := service.NewAuthService(testAuthConfig(), users, nil)

	id, existed, err := svc.RegisterIfAbsent(context.Background(), "Alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, "user-1", id)
	users.AssertExpectations(t)
}

func TestRegisterIfAbsentIsIdempotent(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&domain.User{ID: "user-1", Email: "alice@example.com"}, nil)

	svc := service.NewAuthService(testAuthConfig(), users, nil)

	id, existed, err := svc.RegisterIfAbsent(context.Background(), "Alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Empty(t, id)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginMintsToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&domain.User{Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	svc := service.NewAuthService(testAuthConfig(), users, nil)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&domain.User{Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	svc := service.NewAuthService(testAuthConfig(), users, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	svc := service.NewAuthService(testAuthConfig(), users, nil)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
}
