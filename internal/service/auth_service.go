package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// AuthService coordinates registration and the login exchange.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterIfAbsent creates a user on first registration. A second call
// with the same email is a no-op reporting the existing state: it
// returns an empty id and existed=true rather than an error, and the
// user collection's cardinality for that email stays 1.
func (s *AuthService) RegisterIfAbsent(ctx context.Context, name, email, password string) (string, bool, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", true, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", false, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", false, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleRegular,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", false, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        user.ID,
			Type:      events.EventUserRegistered,
			Email:     user.Email,
			Timestamp: time.Now(),
		})
	}
	return user.ID, false, nil
}

// Login verifies credentials and mints a fresh one-hour token. There is
// no refresh; an expired token requires a new exchange.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized()
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized()
	}
	return s.tokenMgr.Generate(user.Email)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
