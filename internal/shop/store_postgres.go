// Copyright (c) 2026 ArtFolio. All rights reserved.

// PostgreSQL implementation of the product storage layer.
package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/internal/platform/dberr"
)

// PostgresProductRepository implements the ProductRepository interface using pgx.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new PostgreSQL implementation of the ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// Create persists a new product record and fills in the generated ID.
func (repository *PostgresProductRepository) Create(ctx context.Context, product *Product) error {
	const query = `
		INSERT INTO products (name, price, description, image, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	product.CreatedAt = time.Now()

	err := repository.pool.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		product.Image,
		product.UserID,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		return dberr.Wrap(err, "Product", "")
	}

	return nil
}

// ListByUsername returns an artist's products, newest first.
//
// Products reference their owner by ID, so the public username lookup joins
// through the users table.
func (repository *PostgresProductRepository) ListByUsername(ctx context.Context, username string) ([]Product, error) {
	const query = `
		SELECT p.id, p.name, p.price, p.description, p.image, p.user_id, p.created_at
		FROM products p
		JOIN users u ON u.id = p.user_id
		WHERE LOWER(u.username) = LOWER($1)
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := repository.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_list_failed: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		product := Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Image,
			&product.UserID,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_product_scan_failed: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_product_rows_failed: %w", err)
	}

	return products, nil
}

// DeleteOwned removes a product scoped to its owner and reports affected rows.
func (repository *PostgresProductRepository) DeleteOwned(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM products WHERE id = $1 AND user_id = $2`

	tag, err := repository.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres_product_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}
