// Copyright (c) 2026 ArtFolio. All rights reserved.

package gallery

import (
	"context"
)

// ArtworkRepository defines the data access contract for artworks.
//
// # Implementations
//
// The canonical implementation for ArtFolio is PostgreSQL (store_postgres.go).
type ArtworkRepository interface {
	// Create persists a new artwork and fills in its generated ID.
	Create(ctx context.Context, artwork *Artwork) error

	// FindByID returns the artwork with the given ID regardless of
	// visibility or owner. Ownership decisions belong to the service.
	//
	// Returns [apperr.NotFound] if the artwork does not exist.
	FindByID(ctx context.Context, id int64) (*Artwork, error)

	// ListAll returns every artwork, newest first.
	ListAll(ctx context.Context) ([]Artwork, error)

	// ListVisibleFiltered returns visible artworks matching the artist
	// username (case-insensitive) and category, newest first.
	ListVisibleFiltered(ctx context.Context, artist, category string) ([]Artwork, error)

	// ListOwnedByCategory returns all of one owner's artworks in a category,
	// hidden ones included, newest first.
	ListOwnedByCategory(ctx context.Context, userID int64, category string) ([]Artwork, error)

	// Update persists changes to a previously loaded artwork.
	Update(ctx context.Context, artwork *Artwork) error

	// Delete removes the artwork and reports how many rows were affected,
	// so callers can detect a concurrent delete.
	Delete(ctx context.Context, id int64) (int64, error)
}
