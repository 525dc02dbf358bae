// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strconv"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/metrics"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// IdentityResolver maps a request to a caller. [*authz.Resolver] satisfies it.
type IdentityResolver interface {
	Resolve(request *http.Request) *sec.Identity
}

// Authorizer decides role-restricted access. [*authz.Gate] satisfies it.
type Authorizer interface {
	Authorize(request *http.Request, allowed ...sec.Role) authz.Decision
}

// Authenticate resolves the caller once per request and caches it in the
// context. It never rejects: an invalid or missing token means anonymous.
//
// # Flow
//  1. Resolve via cookie, then Authorization header.
//  2. Store the identity (nil for anonymous) with [ctxutil.WithIdentity].
func Authenticate(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := resolver.Resolve(request)
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose caller is anonymous (401) or holds a role
// outside allowed (403). With no roles it only requires authentication.
//
// # Usage
//
// Mount after [Authenticate] on the routes that change content:
//
//	router.With(middleware.RequireRole(gate, sec.Staff()...)).Post("/", handler.create)
func RequireRole(gate Authorizer, allowed ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch decision := gate.Authorize(request, allowed...).(type) {
			case authz.Authorized:
				next.ServeHTTP(writer, request)
			case authz.Denied:
				metrics.AuthzDenialsTotal.WithLabelValues(strconv.Itoa(decision.Status)).Inc()
				respond.Error(writer, request, decision.Err())
			default:
				respond.Error(writer, request, authz.Denied{Status: http.StatusForbidden}.Err())
			}
		})
	}
}
