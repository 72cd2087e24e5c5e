// Copyright (c) 2026 ArtFolio. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/platform/sec"
)

func newTestService(t *testing.T, secret string, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, "artfolio.test", ttl)
	require.NoError(t, err)
	return service
}

func strPtr(s string) *string { return &s }

/*
TestTokenService_RoundTrip verifies that issuing a token from a profile
snapshot and decoding it reproduces every field exactly, including nils.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t, "round-trip-secret", time.Hour)

	snapshot := sec.ProfileSnapshot{
		UserID:         7,
		Email:          "a@x.com",
		Username:       "a",
		Bio:            strPtr("hello"),
		ProfileImage:   nil,
		Website:        strPtr("https://a.example"),
		Phone:          nil,
		ContactMessage: nil,
	}

	token, err := service.Issue(snapshot)
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID())
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a", claims.Username)
	require.NotNil(t, claims.Bio)
	assert.Equal(t, "hello", *claims.Bio)
	assert.Nil(t, claims.ProfileImage)
	require.NotNil(t, claims.Website)
	assert.Equal(t, "https://a.example", *claims.Website)
	assert.Nil(t, claims.Phone)
	assert.Nil(t, claims.ContactMessage)
}

/*
TestTokenService_VerifyIsIdempotent verifies that decoding the same valid
token twice yields the same principal both times (verification is pure).
*/
func TestTokenService_VerifyIsIdempotent(t *testing.T) {
	service := newTestService(t, "idempotent-secret", time.Hour)

	token, err := service.Issue(sec.ProfileSnapshot{UserID: 42, Email: "b@x.com", Username: "b"})
	require.NoError(t, err)

	first, err := service.Verify(token)
	require.NoError(t, err)

	second, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestTokenService_RejectsExpired verifies that a token with exp in the past is
always rejected, even though its signature is valid.
*/
func TestTokenService_RejectsExpired(t *testing.T) {
	service := newTestService(t, "expiry-secret", -time.Minute)

	token, err := service.Issue(sec.ProfileSnapshot{UserID: 1, Email: "c@x.com", Username: "c"})
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrExpiredToken)
}

/*
TestTokenService_RejectsForeignSecret verifies that a token signed with a
different secret never verifies.
*/
func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issuer := newTestService(t, "secret-one", time.Hour)
	verifier := newTestService(t, "secret-two", time.Hour)

	token, err := issuer.Issue(sec.ProfileSnapshot{UserID: 1, Email: "d@x.com", Username: "d"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_RejectsGarbage verifies that malformed token strings are
rejected with the invalid-token reason.
*/
func TestTokenService_RejectsGarbage(t *testing.T) {
	service := newTestService(t, "garbage-secret", time.Hour)

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.Verify(tokenString)
		assert.Error(t, err, "token %q should not verify", tokenString)
	}
}

/*
TestNewTokenService_RequiresSecret verifies that constructing a token service
without a signing secret fails at startup rather than at request time.
*/
func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := sec.NewTokenService("", "artfolio.test", time.Hour)
	assert.Error(t, err)
}

/*
TestHashPassword_CheckRoundTrip verifies the bcrypt hash and compare pair.
*/
func TestHashPassword_CheckRoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, sec.CheckPasswordHash("secret123", hash))
	assert.False(t, sec.CheckPasswordHash("secret124", hash))
}
