// Copyright (c) 2026 ArtFolio. All rights reserved.

// Portfolio use cases: creating, listing, curating, and deleting artworks.
package gallery

import (
	"context"
	"time"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/pkg/category"
)

// Service implements artwork use cases.
type Service struct {
	artworkRepository ArtworkRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(artworkRepository ArtworkRepository) *Service {
	return &Service{artworkRepository: artworkRepository}
}

// ownedArtwork loads an artwork and enforces the ownership gate.
//
// # Ownership Policy
//
// A missing artwork and someone else's artwork both surface as NotFound,
// so non-owners can never probe which IDs exist.
func (service *Service) ownedArtwork(ctx context.Context, id, userID int64) (*Artwork, error) {
	artwork, err := service.artworkRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if artwork.UserID != userID {
		return nil, apperr.NotFound("Artwork")
	}

	return artwork, nil
}

// CreateInput holds the data required to publish a new artwork.
type CreateInput struct {
	ImageURL    string
	Title       string
	Description *string
	DatePosted  *time.Time
	Category    *string
	ClientLink  *string
	UserID      int64
	Username    string
}

// Create persists a new artwork owned by the calling user.
//
// # Business Rules
//   - The artist name is snapshotted from the owner's current username.
//   - New artworks are always visible.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Artwork, error) {
	artwork := &Artwork{
		ImageURL:    input.ImageURL,
		Title:       input.Title,
		Description: input.Description,
		IsVisible:   true,
		DatePosted:  input.DatePosted,
		Artist:      input.Username,
		Category:    input.Category,
		ClientLink:  input.ClientLink,
		UserID:      input.UserID,
	}

	if err := service.artworkRepository.Create(ctx, artwork); err != nil {
		return nil, err
	}

	return artwork, nil
}

// ListAll returns every artwork, newest first.
func (service *Service) ListAll(ctx context.Context) ([]Artwork, error) {
	return service.artworkRepository.ListAll(ctx)
}

// GetByID returns a single artwork.
//
// Returns [apperr.NotFound] if it does not exist.
func (service *Service) GetByID(ctx context.Context, id int64) (*Artwork, error) {
	return service.artworkRepository.FindByID(ctx, id)
}

// ListFiltered returns the visible artworks of an artist in a category.
//
// The category arrives in URL form ("graphic-design") and is normalized to
// its stored display name before querying.
func (service *Service) ListFiltered(ctx context.Context, artist, categorySlug string) ([]Artwork, error) {
	return service.artworkRepository.ListVisibleFiltered(ctx, artist, category.DisplayName(categorySlug))
}

// ListOwn returns the calling user's artworks in a category, hidden pieces
// included.
func (service *Service) ListOwn(ctx context.Context, userID int64, categorySlug string) ([]Artwork, error) {
	return service.artworkRepository.ListOwnedByCategory(ctx, userID, category.DisplayName(categorySlug))
}

// UpdateInput carries the partially updatable artwork fields. Nil fields
// are left untouched.
type UpdateInput struct {
	ImageURL    *string
	Title       *string
	Description *string
	DatePosted  *time.Time
	Category    *string
	ClientLink  *string
}

// Update applies a partial update to an owned artwork.
//
// # Returns
//   - Returns [apperr.NotFound] if the artwork is absent or owned by
//     someone else.
func (service *Service) Update(ctx context.Context, id, userID int64, input UpdateInput) (*Artwork, error) {
	artwork, err := service.ownedArtwork(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.ImageURL != nil {
		artwork.ImageURL = *input.ImageURL
	}
	if input.Title != nil {
		artwork.Title = *input.Title
	}
	if input.Description != nil {
		artwork.Description = input.Description
	}
	if input.DatePosted != nil {
		artwork.DatePosted = input.DatePosted
	}
	if input.Category != nil {
		artwork.Category = input.Category
	}
	if input.ClientLink != nil {
		artwork.ClientLink = input.ClientLink
	}

	if err := service.artworkRepository.Update(ctx, artwork); err != nil {
		return nil, err
	}

	return artwork, nil
}

// SetVisibility shows or hides an owned artwork.
//
// The same ownership gate applies as for every other mutation: non-owners
// get NotFound, never a confirmation that the artwork exists.
func (service *Service) SetVisibility(ctx context.Context, id, userID int64, visible bool) (*Artwork, error) {
	artwork, err := service.ownedArtwork(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	artwork.IsVisible = visible

	if err := service.artworkRepository.Update(ctx, artwork); err != nil {
		return nil, err
	}

	return artwork, nil
}

// Delete removes an owned artwork.
//
// # Flow
//
// After the ownership gate passes, the delete itself re-checks affected
// rows: a concurrent delete between the lookup and the DELETE statement
// also surfaces as NotFound.
func (service *Service) Delete(ctx context.Context, id, userID int64) error {
	if _, err := service.ownedArtwork(ctx, id, userID); err != nil {
		return err
	}

	affected, err := service.artworkRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Artwork")
	}

	return nil
}
