// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz

import (
	"net/http"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// # Role Gate

// Decision is the outcome of [Gate.Authorize]: exactly one of [Authorized] or [Denied].
type Decision interface {
	decision()
}

// Authorized carries the identity that passed the gate.
type Authorized struct {
	User sec.Identity
}

// Denied carries the HTTP status and client message of a refused request.
type Denied struct {
	Status  int
	Message string
}

func (Authorized) decision() {}
func (Denied) decision()     {}

// Err converts the denial into the transport error.
func (denied Denied) Err() *apperr.AppError {
	if denied.Status == http.StatusUnauthorized {
		return apperr.Unauthorized(denied.Message)
	}
	return apperr.Forbidden(denied.Message)
}

// IdentityResolver is what the gate needs from a [Resolver].
type IdentityResolver interface {
	Resolve(request *http.Request) *sec.Identity
}

// Gate decides whether a request may invoke an operation restricted to a role set.
type Gate struct {
	resolver IdentityResolver
}

// NewGate builds a [Gate].
func NewGate(resolver IdentityResolver) *Gate {
	return &Gate{resolver: resolver}
}

// Authorize admits the caller when its role is in allowed.
//
// An anonymous caller is denied with 401 and a caller outside allowed with 403.
// An empty allowed set admits every authenticated caller.
func (gate *Gate) Authorize(request *http.Request, allowed ...sec.Role) Decision {
	return Decide(gate.resolver.Resolve(request), allowed...)
}

// Decide is the pure form of [Gate.Authorize] for an already resolved caller.
func Decide(caller *sec.Identity, allowed ...sec.Role) Decision {
	if caller == nil {
		return Denied{Status: http.StatusUnauthorized, Message: apperr.MsgAuthenticationRequired}
	}

	if !caller.Role.Valid() {
		return Denied{Status: http.StatusForbidden, Message: apperr.MsgInsufficientPermission}
	}

	if len(allowed) > 0 && !caller.Role.In(allowed...) {
		return Denied{Status: http.StatusForbidden, Message: apperr.MsgInsufficientPermission}
	}

	return Authorized{User: *caller}
}
