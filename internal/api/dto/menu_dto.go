package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// MenuItemRequest payload for admin catalog mutations.
type MenuItemRequest struct {
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// MenuItemResponse is the public view of a catalog entry.
type MenuItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// NewMenuItemResponse maps a domain menu item.
func NewMenuItemResponse(item domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	}
}

// ReviewResponse is the public view of a customer review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewReviewResponse maps a domain review.
func NewReviewResponse(review domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Name:      review.Name,
		Details:   review.Details,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
