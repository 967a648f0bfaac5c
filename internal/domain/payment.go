package domain

import "time"

// Payment records a completed checkout. Immutable once created; CartIDs
// holds the cart entry ids the payment claimed to cover at settlement
// time.
type Payment struct {
	ID            string
	Email         string
	Amount        float64
	TransactionID string
	CartIDs       []string
	Status        string
	CreatedAt     time.Time
}

// PaymentStatusPaid marks a settled payment.
const PaymentStatusPaid = "paid"
