package domain

import "time"

// CartItem is a pending, not-yet-paid order line belonging to one user.
// Duplicate additions of the same menu item stay distinct rows; there is
// no quantity merging.
type CartItem struct {
	ID         string
	Email      string
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	CreatedAt  time.Time
}
