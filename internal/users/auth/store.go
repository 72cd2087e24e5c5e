// Copyright (c) 2026 ArtFolio. All rights reserved.

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently by the team.
//
// # Implementations
//
// The canonical implementation for ArtFolio is PostgreSQL (store_postgres.go).
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUsername returns the account with the given username.
	//
	// Returns [apperr.NotFound] if the username is available.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmailExcluding returns the account with the given email, ignoring
	// the account with excludeID. Used to enforce email uniqueness when an
	// existing user changes their own email address.
	//
	// Returns [apperr.NotFound] if no other account holds this email.
	FindByEmailExcluding(ctx context.Context, email string, excludeID int64) (*User, error)

	// Create persists a brand-new user account and fills in its generated ID.
	//
	// Returns [apperr.Conflict] if a unique constraint (email/username) fails.
	Create(ctx context.Context, user *User) error

	// Update persists changes to mutable profile fields (Bio, Website,
	// Phone, ContactMessage, ProfileImage, Email).
	//
	// Returns [apperr.Conflict] if the new email collides with another account.
	Update(ctx context.Context, user *User) error
}
