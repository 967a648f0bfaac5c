package service

import (
	"context"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CartService manages a user's pending order lines. Ownership comes from
// the authenticated email, never from the request body.
type CartService struct {
	carts repository.CartRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// List returns the owner's cart; empty slice if none.
func (s *CartService) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.carts.ListByOwner(ctx, email)
}

// Add creates a new cart entry owned by email. Duplicate additions stay
// distinct entries.
func (s *CartService) Add(ctx context.Context, email string, item *domain.CartItem) (*domain.CartItem, error) {
	item.Email = email
	if err := s.carts.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a single entry matched by (id, owner). A pairing that
// does not exist fails NotFound, so users cannot delete each other's
// entries.
func (s *CartService) Remove(ctx context.Context, id, email string) error {
	removed, err := s.carts.Remove(ctx, id, email)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperrors.NewNotFound("cart item")
	}
	return nil
}
