package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// UsersHandler exposes registration, login and admin user management.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Register handles POST /users. Registration is idempotent: a second
// call for the same email reports the existing state instead of erroring.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	id, existed, err := h.auth.RegisterIfAbsent(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	if existed {
		return c.JSON(dto.RegisterResponse{Message: "user already exists", InsertedID: nil})
	}
	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{InsertedID: &id})
}

// Login handles POST /jwt: the login exchange that mints a one-hour token.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, dto.NewUserResponse(user))
	}
	return c.JSON(result)
}

// IsAdmin handles GET /users/admin/:email. A user may only ask about
// themselves; the role is resolved from the store.
func (h *UsersHandler) IsAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := auth.RequireSelf(c, email); err != nil {
		return err
	}

	isAdmin, err := h.users.IsAdmin(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": isAdmin})
}

// Promote handles PATCH /users/admin/:id.
func (h *UsersHandler) Promote(c *fiber.Ctx) error {
	modified, err := h.users.Promote(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.users.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
