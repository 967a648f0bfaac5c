package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// UserService handles administrative user operations and role checks.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// IsAdmin resolves the role for an email from the store. An absent
// record is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// Promote grants the admin role to the user with the given id. An absent
// id surfaces a zero modified count.
func (s *UserService) Promote(ctx context.Context, id string) (int64, error) {
	modified, err := s.users.UpdateRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return 0, err
	}

	if modified > 0 && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        id,
			Type:      events.EventUserPromoted,
			Timestamp: time.Now(),
			Payload:   events.UserPromotedPayload{UserID: id},
		})
	}
	return modified, nil
}

// Delete removes the user with the given id; absent ids surface a zero
// deleted count.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	return s.users.Delete(ctx, id)
}
