// Copyright (c) 2026 ArtFolio. All rights reserved.

// PostgreSQL implementation of the news storage layer.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/internal/platform/dberr"
)

// PostgresNewsRepository implements the NewsRepository interface using pgx.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository creates a new PostgreSQL implementation of the NewsRepository.
func NewNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

// Create persists a new post record and fills in the generated ID.
func (repository *PostgresNewsRepository) Create(ctx context.Context, post *News) error {
	const query = `
		INSERT INTO news (title, excerpt, content, image_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	post.CreatedAt = time.Now()

	err := repository.pool.QueryRow(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.UserID,
		post.CreatedAt,
	).Scan(&post.ID)

	if err != nil {
		return dberr.Wrap(err, "News", "")
	}

	return nil
}

// ListByUsername returns an artist's posts, newest first.
func (repository *PostgresNewsRepository) ListByUsername(ctx context.Context, username string) ([]News, error) {
	const query = `
		SELECT n.id, n.title, n.excerpt, n.content, n.image_url, n.user_id, n.created_at
		FROM news n
		JOIN users u ON u.id = n.user_id
		WHERE LOWER(u.username) = LOWER($1)
		ORDER BY n.created_at DESC, n.id DESC`

	rows, err := repository.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("postgres_news_list_failed: %w", err)
	}
	defer rows.Close()

	posts := []News{}
	for rows.Next() {
		post := News{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Excerpt,
			&post.Content,
			&post.ImageURL,
			&post.UserID,
			&post.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_news_scan_failed: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_news_rows_failed: %w", err)
	}

	return posts, nil
}

// DeleteOwned removes a post scoped to its owner and reports affected rows.
func (repository *PostgresNewsRepository) DeleteOwned(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM news WHERE id = $1 AND user_id = $2`

	tag, err := repository.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres_news_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}
