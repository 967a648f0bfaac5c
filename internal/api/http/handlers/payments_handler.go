package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// PaymentsHandler exposes the gateway pass-through, payment history and
// settlement.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	secret, err := h.payments.CreateIntent(c.Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

// History handles GET /payments/:email. A user may only read their own
// payments.
func (h *PaymentsHandler) History(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := auth.RequireSelf(c, email); err != nil {
		return err
	}

	payments, err := h.payments.ListByEmail(c.Context(), email)
	if err != nil {
		return err
	}

	result := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		result = append(result, dto.NewPaymentResponse(payment))
	}
	return c.JSON(result)
}

// Settle handles POST /payments. The body email must match the caller;
// both settlement halves are surfaced so the caller can reconcile a
// removed-count mismatch.
func (h *PaymentsHandler) Settle(c *fiber.Ctx) error {
	var req dto.SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := auth.RequireSelf(c, req.Email); err != nil {
		return err
	}

	result, err := h.payments.Settle(c.Context(), req.Email, req.Price, req.TransactionID, req.CartIDs)
	if err != nil {
		return err
	}

	return c.JSON(dto.SettleResponse{
		PaymentResult: dto.NewPaymentResponse(*result.Payment),
		DeleteResult:  dto.DeleteResultResponse{DeletedCount: result.RemovedCount},
	})
}
