// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package contact defines the contact form entity and its submission flow.
package contact

import (
	"time"
)

// Message represents one contact form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
