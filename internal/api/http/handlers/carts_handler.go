package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CartsHandler exposes the caller's cart ledger. Ownership always comes
// from the authenticated claims.
type CartsHandler struct {
	carts *service.CartService
}

// NewCartsHandler constructs handler.
func NewCartsHandler(cartService *service.CartService) *CartsHandler {
	return &CartsHandler{carts: cartService}
}

// List handles GET /carts.
func (h *CartsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}

	items, err := h.carts.List(c.Context(), claims.Email)
	if err != nil {
		return err
	}

	result := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.NewCartItemResponse(item))
	}
	return c.JSON(result)
}

// Add handles POST /carts.
func (h *CartsHandler) Add(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}

	var req dto.CartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.MenuItemID == "" {
		return apperrors.NewValidationError("menuItemId required")
	}

	item, err := h.carts.Add(c.Context(), claims.Email, &domain.CartItem{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCartItemResponse(*item))
}

// Remove handles DELETE /carts/:id. Entries are matched jointly by
// (id, owner); an id belonging to someone else reads as not found.
func (h *CartsHandler) Remove(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}

	if err := h.carts.Remove(c.Context(), c.Params("id"), claims.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}
