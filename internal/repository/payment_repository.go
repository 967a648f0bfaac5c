package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// PaymentRepository persists settled payments. Settle runs the payment
// insert and the cart purge as one transaction so a failure in either
// step leaves no partial state behind.
type PaymentRepository interface {
	Settle(ctx context.Context, payment *domain.Payment) (int64, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

// Settle inserts the payment record and removes the referenced cart
// entries, filtered by the payer's email. Returns the number of cart
// rows actually deleted; a count below len(payment.CartIDs) means some
// ids were stale or not the payer's and is not an error.
func (r *paymentRepository) Settle(ctx context.Context, payment *domain.Payment) (int64, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusPaid
	}
	if payment.CartIDs == nil {
		payment.CartIDs = []string{}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO payments (id, email, amount, transaction_id, cart_ids, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	if err := tx.QueryRow(ctx, query,
		payment.ID,
		payment.Email,
		payment.Amount,
		payment.TransactionID,
		payment.CartIDs,
		payment.Status,
	).Scan(&payment.CreatedAt); err != nil {
		return 0, err
	}

	removed, err := removeCartItems(ctx, tx, payment.CartIDs, payment.Email)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	const query = `
        SELECT id, email, amount, transaction_id, cart_ids, status, created_at
        FROM payments WHERE email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Email,
			&payment.Amount,
			&payment.TransactionID,
			&payment.CartIDs,
			&payment.Status,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
