// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package news defines the news post entity artists use to announce
// exhibitions, releases, and updates on their portfolio page.
package news

import (
	"time"
)

// News represents a single news post.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
