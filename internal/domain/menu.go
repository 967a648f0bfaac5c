package domain

import "time"

// MenuItem is a catalog entry customers can add to their cart.
type MenuItem struct {
	ID        string
	Name      string
	Recipe    string
	Image     string
	Category  string
	Price     float64
	CreatedAt time.Time
}

// Review is a customer review shown on the public site.
type Review struct {
	ID        string
	Name      string
	Details   string
	Rating    float64
	CreatedAt time.Time
}
