package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CartAddRequest payload for adding a menu item to the caller's cart.
// The owner is always the authenticated email, never a body field.
type CartAddRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// CartItemResponse is the view of a pending order line.
type CartItemResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	MenuItemID string    `json:"menuItemId"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCartItemResponse maps a domain cart item.
func NewCartItemResponse(item domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		CreatedAt:  item.CreatedAt,
	}
}
