// Copyright (c) 2026 ArtFolio. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and token lifetime.
  - Uploads: Size limits and storage subdirectories.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "artfolio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous enough for multipart image uploads on slow links.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "artfolio.app"

	// AccessTokenTTL is the lifetime of every issued access token. Tokens
	// are stateless: once issued they stay valid until this window closes.
	AccessTokenTTL = 24 * time.Hour
)

// # Uploads

const (
	// MaxUploadBytes is the maximum accepted size for a single image upload.
	MaxUploadBytes = 5 << 20 // 5 MB

	// UploadKindProfiles stores user profile images.
	UploadKindProfiles = "profiles"

	// UploadKindArtworks stores gallery images.
	UploadKindArtworks = "artworks"

	// UploadKindProducts stores shop product images.
	UploadKindProducts = "products"

	// UploadKindNews stores news post images.
	UploadKindNews = "news"
)

// # Contact Throttling

const (
	// ContactThrottleLimit is the number of contact-form submissions allowed
	// per client IP within one ContactThrottleWindow.
	ContactThrottleLimit = 5

	// ContactThrottleWindow is the sliding window for contact submissions.
	ContactThrottleWindow = 1 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Volatile Key Taxonomy)

const (
	RedisPrefixContactThrottle = "contact:throttle:"
)
