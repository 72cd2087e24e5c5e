// Copyright (c) 2026 ArtFolio. All rights reserved.

// Account lifecycle use cases: registration, login, token refresh, and
// profile updates.
//
// # Architecture
//
// The service orchestrates the User entity and the UserRepository. It is
// technology-agnostic and does not know about HTTP or SQL.
package auth

import (
	"context"
	"fmt"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/sec"
)

// TokenIssuer defines the contract for signing and verifying access tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT embedding the given profile snapshot.
	Issue(snapshot sec.ProfileSnapshot) (string, error)

	// Verify parses and validates a token string, returning its claims.
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// Service implements user account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokens         TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepository UserRepository, tokens TokenIssuer) *Service {
	return &Service{
		userRepository: userRepository,
		tokens:         tokens,
	}
}

// AuthSession pairs a freshly signed token with the user it describes.
//
// Every profile mutation produces a new AuthSession: tokens carry a profile
// snapshot, so the client must swap in the fresh token to see its own
// changes. Previously issued tokens stay valid (and stale) until they expire.
type AuthSession struct {
	Token string
	User  *User
}

// signedSession signs a fresh token from the user's current state.
func (service *Service) signedSession(user *User) (*AuthSession, error) {
	token, err := service.tokens.Issue(sec.ProfileSnapshot{
		UserID:         user.ID,
		Email:          user.Email,
		Username:       user.Username,
		Bio:            user.Bio,
		ProfileImage:   user.ProfileImage,
		Website:        user.Website,
		Phone:          user.Phone,
		ContactMessage: user.ContactMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_sign_failed: %w", err)
	}

	return &AuthSession{Token: token, User: user}, nil
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Parameters
//   - ctx: Context for the database operation.
//   - input: The user-provided registration details.
//
// # Returns
//   - Returns [apperr.Conflict] if the email or username is already taken.
//
// # Business Rules
//   - Emails must be unique.
//   - Usernames must be unique.
//   - Registration never signs the user in. The client must log in
//     explicitly to obtain a token.
func (service *Service) Register(ctx context.Context, input RegisterInput) error {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	// Verify email uniqueness up front for a client-safe Conflict error.
	// The unique constraints remain the final authority under concurrency.
	if _, err := service.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return apperr.Conflict("Email is already registered")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	user := &User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return err
	}

	return nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Login validates user credentials and issues an access token.
//
// # Parameters
//   - ctx: Context for the database operation.
//   - input: Contains Email and plain-text Password.
//
// # Returns
//   - An [*AuthSession] containing the signed token and the user.
//   - Returns [apperr.Unauthorized] if credentials do not match.
//
// # Flow
//  1. Lookup user by exact email match.
//  2. Verify password hash using Bcrypt.
//  3. Sign a token from the user's current profile snapshot.
func (service *Service) Login(ctx context.Context, input LoginInput) (*AuthSession, error) {
	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(ctx, input.Email)

	// Return generic unauthorized error to prevent email enumeration attacks.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Bcrypt comparison is constant-time, so wrong-email and wrong-password
	// responses stay indistinguishable to the caller.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	return service.signedSession(user)
}

// Refresh exchanges any still-valid token for a fresh one.
//
// # Flow
//  1. Verify the presented token (signature, expiry, issuer).
//  2. Re-look-up the account by the token's subject.
//  3. Sign a new token from the account's current state, so a refresh also
//     picks up profile changes made since the old token was issued.
//
// # Returns
//   - Returns [apperr.Unauthorized] if the token is invalid or the account
//     no longer exists.
func (service *Service) Refresh(ctx context.Context, tokenString string) (*AuthSession, error) {
	claims, err := service.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	user, err := service.userRepository.FindByID(ctx, claims.UserID())
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	return service.signedSession(user)
}

// GetByID returns the account with the given ID.
func (service *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return service.userRepository.FindByID(ctx, id)
}

// GetByUsername returns the public account matching the given username.
//
// Returns [apperr.NotFound] if no such account exists.
func (service *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return service.userRepository.FindByUsername(ctx, username)
}

// UpdateBio replaces the user's bio and re-signs their token.
func (service *Service) UpdateBio(ctx context.Context, userID int64, bio string) (*AuthSession, error) {
	return service.mutateProfile(ctx, userID, func(user *User) error {
		user.Bio = &bio
		return nil
	})
}

// UpdateWebsite replaces the user's website link and re-signs their token.
func (service *Service) UpdateWebsite(ctx context.Context, userID int64, website string) (*AuthSession, error) {
	return service.mutateProfile(ctx, userID, func(user *User) error {
		user.Website = &website
		return nil
	})
}

// ContactInfoInput carries the user-editable contact fields.
type ContactInfoInput struct {
	Email          string
	Phone          *string
	ContactMessage *string
}

// UpdateContactInfo replaces the user's contact details and re-signs their token.
//
// # Business Rules
//   - The new email must not belong to any other account ([apperr.Conflict]).
func (service *Service) UpdateContactInfo(ctx context.Context, userID int64, input ContactInfoInput) (*AuthSession, error) {
	return service.mutateProfile(ctx, userID, func(user *User) error {
		if input.Email != user.Email {
			if _, err := service.userRepository.FindByEmailExcluding(ctx, input.Email, userID); err == nil {
				return apperr.Conflict("Email is already in use")
			}
			user.Email = input.Email
		}
		user.Phone = input.Phone
		user.ContactMessage = input.ContactMessage
		return nil
	})
}

// UpdateProfileImage records the stored image path and re-signs the token.
//
// The image itself is persisted by the upload store before this is called;
// imagePath is its public URL path.
func (service *Service) UpdateProfileImage(ctx context.Context, userID int64, imagePath string) (*AuthSession, error) {
	return service.mutateProfile(ctx, userID, func(user *User) error {
		user.ProfileImage = &imagePath
		return nil
	})
}

// mutateProfile loads the account, applies the mutation, persists it, and
// signs a fresh token reflecting the new state.
func (service *Service) mutateProfile(ctx context.Context, userID int64, mutate func(*User) error) (*AuthSession, error) {
	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := mutate(user); err != nil {
		return nil, err
	}

	if err := service.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	return service.signedSession(user)
}
