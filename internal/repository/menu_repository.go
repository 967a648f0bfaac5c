package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// MenuRepository encapsulates menu catalog persistence.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, name, recipe, image, category, price, created_at
        FROM menu_items ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Recipe,
			&item.Image,
			&item.Category,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const query = `
        SELECT id, name, recipe, image, category, price, created_at
        FROM menu_items WHERE id=$1`

	var item domain.MenuItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Recipe,
		&item.Image,
		&item.Category,
		&item.Price,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO menu_items (id, name, recipe, image, category, price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		item.ID,
		item.Name,
		item.Recipe,
		item.Image,
		item.Category,
		item.Price,
	).Scan(&item.CreatedAt)
}

func (r *menuRepository) Update(ctx context.Context, item *domain.MenuItem) (int64, error) {
	const query = `
        UPDATE menu_items SET name=$1, recipe=$2, image=$3, category=$4, price=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Recipe,
		item.Image,
		item.Category,
		item.Price,
		item.ID,
	)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) (int64, error) {
	const query = `DELETE FROM menu_items WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
