// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package gallery defines the artwork entity and its portfolio use cases.
//
// # Architecture
//
// Artworks are owned resources: every mutation is gated on the owner's
// identity, and non-owners can never learn whether a given artwork exists.
package gallery

import (
	"time"
)

// Artwork represents a single portfolio piece.
//
// # Rules
//   - ImageURL always points at a file under the uploads tree.
//   - Artist is a snapshot of the owner's username at creation time.
//   - IsVisible defaults to true; hidden artworks only appear in the
//     owner's own listings.
type Artwork struct {
	ID          int64      `json:"id"`
	ImageURL    string     `json:"imageUrl"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsVisible   bool       `json:"isVisible"`
	DatePosted  *time.Time `json:"datePosted"`
	Artist      string     `json:"artist"`
	Category    *string    `json:"category"`
	ClientLink  *string    `json:"clientLink"`
	UserID      int64      `json:"userId"`
	CreatedAt   time.Time  `json:"-"`
}
