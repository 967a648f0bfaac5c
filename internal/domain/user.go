package domain

import "time"

// Role represents the authorization level of an account.
type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// User is the domain model for registered accounts. Email is the unique
// match key; role defaults to regular and changes only through the
// admin-gated promotion.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
