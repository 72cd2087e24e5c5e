// Copyright (c) 2026 ArtFolio. All rights reserved.

// PostgreSQL implementation of the artwork storage layer.
package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/internal/platform/dberr"
)

const artworkColumns = `
	id, image_url, title, description, is_visible, date_posted,
	artist, category, client_link, user_id, created_at`

// PostgresArtworkRepository implements the ArtworkRepository interface using pgx.
type PostgresArtworkRepository struct {
	pool *pgxpool.Pool
}

// NewArtworkRepository creates a new PostgreSQL implementation of the ArtworkRepository.
func NewArtworkRepository(pool *pgxpool.Pool) *PostgresArtworkRepository {
	return &PostgresArtworkRepository{pool: pool}
}

func scanArtwork(row pgx.Row) (*Artwork, error) {
	artwork := &Artwork{}
	err := row.Scan(
		&artwork.ID,
		&artwork.ImageURL,
		&artwork.Title,
		&artwork.Description,
		&artwork.IsVisible,
		&artwork.DatePosted,
		&artwork.Artist,
		&artwork.Category,
		&artwork.ClientLink,
		&artwork.UserID,
		&artwork.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return artwork, nil
}

// collectArtworks drains a multi-row result in artworkColumns order.
func collectArtworks(rows pgx.Rows) ([]Artwork, error) {
	defer rows.Close()

	artworks := []Artwork{}
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_artwork_scan_failed: %w", err)
		}
		artworks = append(artworks, *artwork)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_artwork_rows_failed: %w", err)
	}

	return artworks, nil
}

// Create persists a new artwork record and fills in the generated ID.
func (repository *PostgresArtworkRepository) Create(ctx context.Context, artwork *Artwork) error {
	const query = `
		INSERT INTO artworks (
			image_url, title, description, is_visible, date_posted,
			artist, category, client_link, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	artwork.CreatedAt = time.Now()

	err := repository.pool.QueryRow(ctx, query,
		artwork.ImageURL,
		artwork.Title,
		artwork.Description,
		artwork.IsVisible,
		artwork.DatePosted,
		artwork.Artist,
		artwork.Category,
		artwork.ClientLink,
		artwork.UserID,
		artwork.CreatedAt,
	).Scan(&artwork.ID)

	if err != nil {
		return dberr.Wrap(err, "Artwork", "")
	}

	return nil
}

// FindByID retrieves an artwork by its unique ID.
//
// # Returns
//
// Returns [*Artwork] if found, or [apperr.NotFound] otherwise.
func (repository *PostgresArtworkRepository) FindByID(ctx context.Context, id int64) (*Artwork, error) {
	const query = `SELECT ` + artworkColumns + ` FROM artworks WHERE id = $1`

	artwork, err := scanArtwork(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_artwork_find_by_id_failed: %w", err), "Artwork", "")
	}

	return artwork, nil
}

// ListAll returns every artwork ordered newest first.
func (repository *PostgresArtworkRepository) ListAll(ctx context.Context) ([]Artwork, error) {
	const query = `SELECT ` + artworkColumns + ` FROM artworks ORDER BY created_at DESC, id DESC`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_artwork_list_all_failed: %w", err)
	}

	return collectArtworks(rows)
}

// ListVisibleFiltered returns visible artworks for a case-insensitive artist
// and category match, newest first.
func (repository *PostgresArtworkRepository) ListVisibleFiltered(ctx context.Context, artist, category string) ([]Artwork, error) {
	const query = `
		SELECT ` + artworkColumns + `
		FROM artworks
		WHERE LOWER(artist) = LOWER($1)
		  AND LOWER(category) = LOWER($2)
		  AND is_visible = TRUE
		ORDER BY created_at DESC, id DESC`

	rows, err := repository.pool.Query(ctx, query, artist, category)
	if err != nil {
		return nil, fmt.Errorf("postgres_artwork_list_filtered_failed: %w", err)
	}

	return collectArtworks(rows)
}

// ListOwnedByCategory returns one owner's artworks in a category, hidden
// pieces included, newest first.
func (repository *PostgresArtworkRepository) ListOwnedByCategory(ctx context.Context, userID int64, category string) ([]Artwork, error) {
	const query = `
		SELECT ` + artworkColumns + `
		FROM artworks
		WHERE user_id = $1 AND LOWER(category) = LOWER($2)
		ORDER BY created_at DESC, id DESC`

	rows, err := repository.pool.Query(ctx, query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("postgres_artwork_list_owned_failed: %w", err)
	}

	return collectArtworks(rows)
}

// Update persists changes to an artwork's mutable fields.
func (repository *PostgresArtworkRepository) Update(ctx context.Context, artwork *Artwork) error {
	const query = `
		UPDATE artworks
		SET image_url = $2, title = $3, description = $4, is_visible = $5,
		    date_posted = $6, category = $7, client_link = $8
		WHERE id = $1`

	_, err := repository.pool.Exec(ctx, query,
		artwork.ID,
		artwork.ImageURL,
		artwork.Title,
		artwork.Description,
		artwork.IsVisible,
		artwork.DatePosted,
		artwork.Category,
		artwork.ClientLink,
	)

	if err != nil {
		return fmt.Errorf("postgres_artwork_update_failed: %w", err)
	}

	return nil
}

// Delete removes an artwork and reports the number of rows affected.
func (repository *PostgresArtworkRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM artworks WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("postgres_artwork_delete_failed: %w", err)
	}

	return tag.RowsAffected(), nil
}
