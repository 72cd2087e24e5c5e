// Copyright (c) 2026 ArtFolio. All rights reserved.

// PostgreSQL implementation of the user storage layer.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows and unique violations) are
// mapped to domain-friendly [apperr.AppError] types via the dberr package
// to avoid leaking storage implementation details.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/internal/platform/dberr"
)

// userColumns is the canonical column list shared by every SELECT.
const userColumns = `
	id, email, username, password_hash, bio, profile_image,
	website, phone, contact_message, created_at, updated_at`

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// scanUser reads one user row in userColumns order.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Bio,
		&user.ProfileImage,
		&user.Website,
		&user.Phone,
		&user.ContactMessage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create persists a new user record and fills in the generated ID.
//
// # Parameters
//   - ctx: Context for the database operation.
//   - user: The user entity to persist.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := repository.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		return dberr.Wrap(err, "User", "User already exists")
	}

	return nil
}

// FindByID retrieves a user record by their unique ID.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_user_find_by_id_failed: %w", err), "User", "")
	}

	return user, nil
}

// FindByEmail retrieves a user record by their unique email address.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(repository.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_user_find_by_email_failed: %w", err), "User", "")
	}

	return user, nil
}

// FindByUsername retrieves a user record by their unique username.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(repository.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_user_find_by_username_failed: %w", err), "User", "")
	}

	return user, nil
}

// FindByEmailExcluding retrieves the account holding email if it is not excludeID.
func (repository *PostgresUserRepository) FindByEmailExcluding(ctx context.Context, email string, excludeID int64) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND id <> $2`

	user, err := scanUser(repository.pool.QueryRow(ctx, query, email, excludeID))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_user_find_by_email_excluding_failed: %w", err), "User", "")
	}

	return user, nil
}

// Update persists changes to a user's mutable profile fields.
func (repository *PostgresUserRepository) Update(ctx context.Context, user *User) error {
	const query = `
		UPDATE users
		SET email = $2, bio = $3, profile_image = $4, website = $5,
		    phone = $6, contact_message = $7, updated_at = $8
		WHERE id = $1`

	user.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Bio,
		user.ProfileImage,
		user.Website,
		user.Phone,
		user.ContactMessage,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User", "Email is already in use")
	}

	return nil
}
