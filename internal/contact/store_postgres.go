// Copyright (c) 2026 ArtFolio. All rights reserved.

// PostgreSQL implementation of the contact message storage layer.
package contact

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/internal/platform/dberr"
)

// PostgresMessageRepository implements the MessageRepository interface using pgx.
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new PostgreSQL implementation of the MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// Create persists a new contact message and fills in the generated ID.
func (repository *PostgresMessageRepository) Create(ctx context.Context, message *Message) error {
	const query = `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	message.CreatedAt = time.Now()

	err := repository.pool.QueryRow(ctx, query,
		message.Name,
		message.Email,
		message.Message,
		message.CreatedAt,
	).Scan(&message.ID)

	if err != nil {
		return dberr.Wrap(err, "Contact message", "")
	}

	return nil
}
