package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// MenuHandler exposes the public catalog reads and admin-gated mutations.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// List handles GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.Context())
	if err != nil {
		return err
	}

	result := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.NewMenuItemResponse(item))
	}
	return c.JSON(result)
}

// Get handles GET /menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.menu.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuItemResponse(*item))
}

// Create handles POST /menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required")
	}

	item, err := h.menu.Create(c.Context(), &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewMenuItemResponse(*item))
}

// Update handles PATCH /menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	modified, err := h.menu.Update(c.Context(), &domain.MenuItem{
		ID:       c.Params("id"),
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// Delete handles DELETE /menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.menu.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}

// Reviews handles GET /reviews.
func (h *MenuHandler) Reviews(c *fiber.Ctx) error {
	reviews, err := h.menu.Reviews(c.Context())
	if err != nil {
		return err
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, dto.NewReviewResponse(review))
	}
	return c.JSON(result)
}
