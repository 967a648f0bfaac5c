package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware validates bearer tokens and gates admin-only routes.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireAuth enforces authentication for protected routes. A missing,
// malformed, unsigned or expired credential fails identically; no
// persistence call happens on the failure path.
func (m *Middleware) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized()
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized()
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireAdmin gates admin mutations. The role is re-resolved from the
// store on every call rather than read from the token, so a demotion
// takes effect without waiting for the token to expire.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}

	user, err := m.users.GetByEmail(c.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden()
		}
		return apperrors.NewInternalError(err)
	}
	if !user.IsAdmin() {
		return apperrors.NewForbidden()
	}
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

// RequireSelf enforces that the authenticated email matches the email a
// request names in its own parameters. Prevents one authenticated user
// from reading another user's private records.
func RequireSelf(c *fiber.Ctx, email string) error {
	claims, ok := ClaimsFromContext(c)
	if !ok || claims.Email != email {
		return apperrors.NewForbidden()
	}
	return nil
}
