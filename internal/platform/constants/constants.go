// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Window and key prefix of the request limiter.
  - Security: Token issuer and auth cookie settings.
  - Transport: Header names and JSON envelope fields.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "ecclesia-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// ReadinessTimeout bounds each dependency check behind /ready.
	ReadinessTimeout = 2 * time.Second
)

// # Rate Limiting

const (
	// RateLimitWindow is the period RATE_LIMIT_REQUESTS applies to.
	RateLimitWindow = time.Minute

	// RateLimitCleanupInterval is how often idle in-process buckets are swept.
	RateLimitCleanupInterval = time.Minute

	// RateLimitClientTTL is how long a client must be idle before its bucket is deleted.
	RateLimitClientTTL = 3 * time.Minute

	// RedisPrefixRateLimit namespaces distributed limiter keys.
	RedisPrefixRateLimit = "ratelimit:"
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of every identity token.
	AuthIssuer = "ecclesia.api"

	// AuthCookieName carries the identity token for browser clients.
	AuthCookieName = "auth_token"

	// AuthCookiePath scopes the cookie to the whole API.
	AuthCookiePath = "/"

	// BearerScheme is the Authorization header scheme accepted as a fallback.
	BearerScheme = "Bearer"
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)
