package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/service"
)

func TestIsAdminResolvesFromStore(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{Email: "admin@example.com", Role: domain.RoleAdmin}, nil)
	users.On("GetByEmail", mock.Anything, "bob@example.com").
		Return(&domain.User{Email: "bob@example.com", Role: domain.RoleRegular}, nil)

	svc := service.NewUserService(users, nil)

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminUnknownEmail(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	svc := service.NewUserService(users, nil)

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestPromotePublishesEvent(t *testing.T) {
	users := &MockUserRepo{}
	users.On("UpdateRole", mock.Anything, "user-1", domain.RoleAdmin).Return(int64(1), nil)

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventUserPromoted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := service.NewUserService(users, dispatcher)

	modified, err := svc.Promote(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	assert.Len(t, published, 1)
}

func TestPromoteAbsentIDSurfacesZeroCount(t *testing.T) {
	users := &MockUserRepo{}
	users.On("UpdateRole", mock.Anything, "missing", domain.RoleAdmin).Return(int64(0), nil)

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventUserPromoted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := service.NewUserService(users, dispatcher)

	modified, err := svc.Promote(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
	assert.Empty(t, published)
}
