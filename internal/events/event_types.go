package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserPromoted   EventType = "user_promoted"
	EventMenuChanged    EventType = "menu_changed"
	EventPaymentSettled EventType = "payment_settled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Email     string      `json:"email,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PaymentSettledPayload payload.
type PaymentSettledPayload struct {
	PaymentID    string  `json:"payment_id"`
	Amount       float64 `json:"amount"`
	CartIDs      int     `json:"cart_ids"`
	RemovedCount int64   `json:"removed_count"`
}

// UserPromotedPayload payload.
type UserPromotedPayload struct {
	UserID string `json:"user_id"`
}

// MenuChangedPayload payload.
type MenuChangedPayload struct {
	MenuItemID string `json:"menu_item_id"`
	Action     string `json:"action"`
}
