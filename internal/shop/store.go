// Copyright (c) 2026 ArtFolio. All rights reserved.

package shop

import (
	"context"
)

// ProductRepository defines the data access contract for shop products.
type ProductRepository interface {
	// Create persists a new product and fills in its generated ID.
	Create(ctx context.Context, product *Product) error

	// ListByUsername returns an artist's products, newest first.
	ListByUsername(ctx context.Context, username string) ([]Product, error)

	// DeleteOwned removes the product only when it belongs to userID, and
	// reports how many rows were affected. Zero rows covers both a missing
	// product and one owned by someone else.
	DeleteOwned(ctx context.Context, id, userID int64) (int64, error)
}
