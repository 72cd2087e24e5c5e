// Copyright (c) 2026 ArtFolio. All rights reserved.

package news

import (
	"context"
)

// NewsRepository defines the data access contract for news posts.
type NewsRepository interface {
	// Create persists a new post and fills in its generated ID.
	Create(ctx context.Context, post *News) error

	// ListByUsername returns an artist's posts, newest first.
	ListByUsername(ctx context.Context, username string) ([]News, error)

	// DeleteOwned removes the post only when it belongs to userID, and
	// reports how many rows were affected. Zero rows covers both a missing
	// post and one owned by someone else.
	DeleteOwned(ctx context.Context, id, userID int64) (int64, error)
}
