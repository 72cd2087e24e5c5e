// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via interfaces.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification errors. These are wrapped into the generic Unauthorized
// outcome at the HTTP boundary; the specific reason only ever reaches logs.
var (
	ErrInvalidToken   = errors.New("sec: invalid token")
	ErrExpiredToken   = errors.New("sec: token expired")
	ErrMissingSubject = errors.New("sec: missing or non-numeric sub claim")
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why a profile snapshot?
//
// By embedding the account's profile fields directly inside the JWT, handlers
// can serve the authenticated user's own profile WITHOUT querying the database
// on every single API request. The snapshot is a cache with no invalidation:
// it can go stale after a profile edit and stays stale until the next token is
// issued (the profile-update endpoints re-sign a fresh one).
type AuthClaims struct {
	jwt.RegisteredClaims

	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Bio            *string `json:"bio"`
	ProfileImage   *string `json:"profileImage"`
	Website        *string `json:"website"`
	Phone          *string `json:"phone"`
	ContactMessage *string `json:"contactMessage"`
}

// UserID returns the numeric account id carried in the sub claim.
//
// [TokenService.Verify] rejects tokens whose sub is absent or non-numeric,
// so claims obtained from Verify always yield a valid id.
func (claims *AuthClaims) UserID() int64 {
	id, _ := strconv.ParseInt(claims.Subject, 10, 64)
	return id
}

// ProfileSnapshot is the denormalized view of an account that gets signed
// into every issued token.
type ProfileSnapshot struct {
	UserID         int64
	Email          string
	Username       string
	Bio            *string
	ProfileImage   *string
	Website        *string
	Phone          *string
	ContactMessage *string
}

// TokenService issues and verifies JWT access tokens using HS256 with a
// single server-held secret.
//
// # Construction
//
// The secret is an explicit constructor argument — never read from ambient
// state inside request handling — so tests can inject fake secrets.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret,
// issuer name, and token lifetime.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    timeToLive,
	}, nil
}

// Issue signs a new access token carrying the given profile snapshot.
//
// The sub claim holds the numeric account id in decimal form; iat and exp
// are set from the current time and the configured lifetime.
func (service *TokenService) Issue(snapshot ProfileSnapshot) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(snapshot.UserID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Email:          snapshot.Email,
		Username:       snapshot.Username,
		Bio:            snapshot.Bio,
		ProfileImage:   snapshot.ProfileImage,
		Website:        snapshot.Website,
		Phone:          snapshot.Phone,
		ContactMessage: snapshot.ContactMessage,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string and returns the
// decoded principal claims.
//
// # Failure Modes
//
// Bad signature, expiry, malformed claims, and a missing or non-numeric sub
// all fail verification. Verification is pure: it has no side effects and
// verifying the same token twice yields identical claims.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// The sub claim must be present and numeric.
	if _, convErr := strconv.ParseInt(claims.Subject, 10, 64); convErr != nil {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
