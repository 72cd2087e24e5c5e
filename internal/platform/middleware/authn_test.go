// Copyright (c) 2026 ArtFolio. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/platform/ctxutil"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	"github.com/artfolio/artfolio/internal/platform/sec"
)

// guardedChain builds Authenticate → RequireAuth → probe, recording the
// principal the probe handler observed.
func guardedChain(t *testing.T, verifier middleware.TokenVerifier) (http.Handler, **sec.AuthClaims) {
	t.Helper()

	var seen *sec.AuthClaims
	probe := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetPrincipal(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	chain := middleware.Authenticate(verifier)(middleware.RequireAuth(probe))
	return chain, &seen
}

func newVerifier(t *testing.T, secret string) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, "artfolio.test", time.Hour)
	require.NoError(t, err)
	return service
}

/*
TestAuthenticate_MissingHeader verifies that a guarded route rejects a
request without an Authorization header with HTTP 401.
*/
func TestAuthenticate_MissingHeader(t *testing.T) {
	chain, seen := guardedChain(t, newVerifier(t, "test-secret"))

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, *seen)
}

/*
TestAuthenticate_MalformedHeader verifies that a non-Bearer scheme is rejected.
*/
func TestAuthenticate_MalformedHeader(t *testing.T) {
	chain, seen := guardedChain(t, newVerifier(t, "test-secret"))

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, *seen)
}

/*
TestAuthenticate_InvalidToken verifies that a token signed with a foreign
secret is rejected with HTTP 401.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	foreign := newVerifier(t, "other-secret")
	token, err := foreign.Issue(sec.ProfileSnapshot{UserID: 9, Email: "b@x.com", Username: "b"})
	require.NoError(t, err)

	chain, seen := guardedChain(t, newVerifier(t, "test-secret"))

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, *seen)
}

/*
TestAuthenticate_ValidToken verifies that a valid token passes the gate and
the decoded principal is visible to the downstream handler.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := newVerifier(t, "test-secret")
	token, err := verifier.Issue(sec.ProfileSnapshot{UserID: 7, Email: "a@x.com", Username: "a"})
	require.NoError(t, err)

	chain, seen := guardedChain(t, verifier)

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, *seen)
	assert.Equal(t, int64(7), (*seen).UserID())
	assert.Equal(t, "a@x.com", (*seen).Email)
}

/*
TestAuthenticate_AnonymousPassthrough verifies that public routes (no
RequireAuth) still serve requests without an Authorization header.
*/
func TestAuthenticate_AnonymousPassthrough(t *testing.T) {
	verifier := newVerifier(t, "test-secret")

	var seen *sec.AuthClaims
	probe := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetPrincipal(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
	chain := middleware.Authenticate(verifier)(probe)

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/public", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)
}
