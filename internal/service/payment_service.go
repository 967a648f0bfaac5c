package service

import (
	"context"
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// SettlementResult carries both halves of a settlement so callers can
// detect a removed-count mismatch themselves.
type SettlementResult struct {
	Payment      *domain.Payment
	RemovedCount int64
}

// PaymentService records completed payments and reconciles them against
// the cart ledger.
type PaymentService struct {
	payments   repository.PaymentRepository
	gateway    gateway.Gateway
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, gw gateway.Gateway, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, gateway: gw, dispatcher: dispatcher}
}

// Settle records the payment and purges the payer's referenced cart
// entries in one transaction. The request's cart ids are a hint: the
// purge is re-filtered by the payer's email, and ids that were stale or
// someone else's only lower the removed count, they do not fail the
// call. An empty id list is accepted trivially with a zero count.
func (s *PaymentService) Settle(ctx context.Context, payerEmail string, amount float64, transactionID string, cartIDs []string) (*SettlementResult, error) {
	payment := &domain.Payment{
		Email:         payerEmail,
		Amount:        amount,
		TransactionID: transactionID,
		CartIDs:       cartIDs,
		Status:        domain.PaymentStatusPaid,
	}

	removed, err := s.payments.Settle(ctx, payment)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        payment.ID,
			Type:      events.EventPaymentSettled,
			Email:     payerEmail,
			Timestamp: time.Now(),
			Payload: events.PaymentSettledPayload{
				PaymentID:    payment.ID,
				Amount:       amount,
				CartIDs:      len(cartIDs),
				RemovedCount: removed,
			},
		})
	}

	return &SettlementResult{Payment: payment, RemovedCount: removed}, nil
}

// ListByEmail returns the payer's payment history.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

// CreateIntent passes an amount through to the payment gateway and
// returns the opaque client secret. Amounts arrive in dollars and are
// truncated to cents. Gateway failures propagate; there is no retry.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amountCents := int64(price * 100)
	if amountCents <= 0 {
		return "", apperrors.NewValidationError("price must be positive")
	}
	secret, err := s.gateway.CreateIntent(ctx, amountCents)
	if err != nil {
		return "", apperrors.NewUpstreamError(err)
	}
	return secret, nil
}
