// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package shop defines the product entity and the small storefront each
// artist can attach to their portfolio.
package shop

import (
	"time"
)

// Product represents a single item offered by an artist.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}
