// Copyright (c) 2026 ArtFolio. All rights reserved.

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/ctxutil"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing tests to inject fakes with known secrets.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # State Machine
//
// Every request starts UNVERIFIED and ends either VERIFIED (principal in
// context), REJECTED (present but invalid token: 401, chain aborted), or
// anonymous (no header: public routes proceed, guarded routes are rejected
// by [RequireAuth]). There is no caching of verification results — every
// request is verified from scratch.
//
// # Flow
//  1. If no 'Authorization' header is present, proceed as anonymous.
//  2. Validate the 'Bearer <token>' format.
//  3. Cryptographically verify and decode the token via [TokenVerifier].
//     The specific failure reason (bad signature, expiry, malformed claims)
//     stays in the logs; the client only ever sees a generic 401.
//  4. Inject the decoded [*sec.AuthClaims] into the request context.
//     Downstream handlers read the principal but never re-verify the token.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			logger := ctxutil.GetLogger(request.Context())

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				logger.WarnContext(request.Context(), "auth_header_malformed")
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(parts[1])
			if err != nil {
				logger.WarnContext(request.Context(), "auth_token_rejected",
					slog.String("reason", err.Error()),
				)
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// A missing Authorization header lands here (the request stayed anonymous)
// and is rejected immediately; the log entry distinguishes this case from a
// failed verification, though both surface HTTP 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if principal == nil {
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "auth_header_missing")
			respond.Error(writer, request, apperr.Unauthorized("Authorization header is missing"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
