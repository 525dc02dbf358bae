// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package authz turns an HTTP request into an authorization outcome.

It owns the three request-facing pieces of the authentication core:

  - [Resolver] maps a request to an identity or to anonymous.
  - [Gate] maps a request and an allowed role set to [Authorized] or [Denied].
  - [Policy] maps a resource, a caller and query parameters to a row [Filter].

None of them touch the store. The role inside a token is trusted until the
token expires.
*/
package authz

import (
	"net/http"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// TokenDecoder verifies a raw token. [*sec.TokenCodec] satisfies it.
type TokenDecoder interface {
	Decode(token string) (sec.Identity, error)
}

// # Session Resolution

// Resolver extracts the caller's identity from the auth cookie or the
// Authorization header.
type Resolver struct {
	decoder TokenDecoder
}

// NewResolver builds a [Resolver].
func NewResolver(decoder TokenDecoder) *Resolver {
	return &Resolver{decoder: decoder}
}

/*
Resolve returns the caller's identity, or nil for anonymous.

Lookup order:
 1. An identity already resolved into the request context.
 2. The auth_token cookie. When present it is authoritative.
 3. An "Authorization: Bearer <token>" header.

Missing, malformed, forged and expired tokens all resolve to anonymous.
Resolve never fails.
*/
func (resolver *Resolver) Resolve(request *http.Request) *sec.Identity {
	if identity, resolved := ctxutil.GetIdentity(request.Context()); resolved {
		return identity
	}

	token := TokenFromRequest(request)
	if token == "" {
		return nil
	}

	identity, err := resolver.decoder.Decode(token)
	if err != nil {
		return nil
	}
	return &identity
}

// TokenFromRequest returns the raw token carried by request, or "".
func TokenFromRequest(request *http.Request) string {
	if cookie, err := request.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := request.Header.Get(constants.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}
