// Copyright (c) 2026 ArtFolio. All rights reserved.

package contact

import (
	"context"
)

// MessageRepository defines the data access contract for contact messages.
type MessageRepository interface {
	// Create persists a new submission and fills in its generated ID.
	Create(ctx context.Context, message *Message) error
}

// ThrottleRepository tracks per-client submission counts in a volatile store.
type ThrottleRepository interface {
	// Hit records one submission for the client and returns the number of
	// submissions inside the current window, this one included.
	Hit(ctx context.Context, clientIP string) (int64, error)
}
