package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// PaymentIntentRequest payload for the gateway pass-through.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the gateway's opaque client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettleRequest payload for payment settlement. Email must match the
// authenticated caller; CartIDs are a hint re-validated server-side.
type SettleRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
}

// PaymentResponse is the view of a settled payment.
type PaymentResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	CartIDs       []string  `json:"cartIds"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewPaymentResponse maps a domain payment.
func NewPaymentResponse(payment domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		Email:         payment.Email,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
		CartIDs:       payment.CartIDs,
		Status:        payment.Status,
		CreatedAt:     payment.CreatedAt,
	}
}

// DeleteResultResponse surfaces how many cart rows the settlement
// actually purged so callers can reconcile a mismatch.
type DeleteResultResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// SettleResponse returns both settlement halves verbatim.
type SettleResponse struct {
	PaymentResult PaymentResponse      `json:"paymentResult"`
	DeleteResult  DeleteResultResponse `json:"deleteResult"`
}
