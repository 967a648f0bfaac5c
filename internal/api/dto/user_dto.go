package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// UserRegisterRequest payload for the idempotent registration call.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest payload for the login exchange.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly minted token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterResponse reports registration state. InsertedID stays null
// when the email was already present.
type RegisterResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a domain user, dropping the password hash.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
