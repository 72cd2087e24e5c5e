// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package auth defines the user account entity and its lifecycle use cases.
//
// # Architecture
//
// Entities in this package represent the "Truth" of the system.
// They have no dependencies on outer layers (like databases, APIs, or libraries).
// This makes the core logic highly testable and resilient to technology changes.
package auth

import (
	"time"
)

// User represents a registered artist account on the platform.
//
// # Rules
//   - Email is unique and validated.
//   - Username is unique and URL-safe.
//   - PasswordHash is generated via Bcrypt exclusively by the Service.
//   - Profile fields (bio, website, phone, contact message, profile image)
//     are optional and start empty.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"` // Explicitly omitted from JSON for security.
	Bio            *string   `json:"bio"`
	ProfileImage   *string   `json:"profileImage"`
	Website        *string   `json:"website"`
	Phone          *string   `json:"phone"`
	ContactMessage *string   `json:"contactMessage"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// PublicProfile is the subset of User exposed on the unauthenticated
// profile endpoint. It never carries the email address.
type PublicProfile struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Bio            *string `json:"bio"`
	ProfileImage   *string `json:"profileImage"`
	Website        *string `json:"website"`
	Phone          *string `json:"phone"`
	ContactMessage *string `json:"contactMessage"`
}

// Public projects the user into its unauthenticated profile view.
func (user *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		ProfileImage:   user.ProfileImage,
		Website:        user.Website,
		Phone:          user.Phone,
		ContactMessage: user.ContactMessage,
	}
}
