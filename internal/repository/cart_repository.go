package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx so cart deletions
// can run standalone or inside the settlement transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CartRepository is the cart ledger: pending, unpaid line items per user.
// Every mutation is filtered by the owning email; ids belonging to other
// users are invisible to the caller.
type CartRepository interface {
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)
	Add(ctx context.Context, item *domain.CartItem) error
	Remove(ctx context.Context, id, email string) (int64, error)
	RemoveMany(ctx context.Context, ids []string, email string) (int64, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	const query = `
        SELECT id, email, menu_item_id, name, image, price, created_at
        FROM carts WHERE email=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.Email,
			&item.MenuItemID,
			&item.Name,
			&item.Image,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// Add inserts a new entry with a fresh id. Duplicate additions of the
// same menu item create distinct rows.
func (r *cartRepository) Add(ctx context.Context, item *domain.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO carts (id, email, menu_item_id, name, image, price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		item.ID,
		item.Email,
		item.MenuItemID,
		item.Name,
		item.Image,
		item.Price,
	).Scan(&item.CreatedAt)
}

// Remove deletes a single entry matched jointly by (id, owner). A zero
// count means the pairing does not exist.
func (r *cartRepository) Remove(ctx context.Context, id, email string) (int64, error) {
	const query = `DELETE FROM carts WHERE id=$1 AND email=$2`
	cmd, err := r.pool.Exec(ctx, query, id, email)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// RemoveMany deletes the owner's entries among ids. Ids that are absent
// or owned by someone else are silently ignored; the count reflects only
// rows actually deleted.
func (r *cartRepository) RemoveMany(ctx context.Context, ids []string, email string) (int64, error) {
	return removeCartItems(ctx, r.pool, ids, email)
}

// removeCartItems is shared with the settlement transaction in the
// payment repository.
func removeCartItems(ctx context.Context, db execer, ids []string, email string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const query = `DELETE FROM carts WHERE id = ANY($1) AND email=$2`
	cmd, err := db.Exec(ctx, query, ids, email)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
