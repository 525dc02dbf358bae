// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authztest wires a real token codec, resolver and gate for handler
// tests, and builds requests authenticated as a chosen identity.
package authztest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

const secret = "authztest-secret-with-thirty-two-bytes!!"

// Common identities.
var (
	Admin  = &sec.Identity{ID: 1, Email: "admin@church.org", Name: "Admin", Role: sec.RoleMasterAdmin}
	Pastor = &sec.Identity{ID: 2, Email: "pastor@church.org", Name: "Pastor", Role: sec.RolePastor}
	Member = &sec.Identity{ID: 3, Email: "member@church.org", Name: "Member", Role: sec.RoleMember}
	Other  = &sec.Identity{ID: 4, Email: "other@church.org", Name: "Other", Role: sec.RoleMember}
)

// Stack is the authentication core used by handler tests.
type Stack struct {
	Codec    *sec.TokenCodec
	Resolver *authz.Resolver
	Gate     *authz.Gate
	Policy   *authz.Policy
}

// New builds a [Stack] around [authz.DefaultPolicy].
func New(t testing.TB) *Stack {
	t.Helper()
	codec, err := sec.NewTokenCodec(secret, constants.AuthIssuer)
	if err != nil {
		t.Fatalf("authztest: %v", err)
	}
	resolver := authz.NewResolver(codec)
	return &Stack{
		Codec:    codec,
		Resolver: resolver,
		Gate:     authz.NewGate(resolver),
		Policy:   authz.DefaultPolicy(),
	}
}

// Router mounts routes at prefix behind the authentication middleware.
func (stack *Stack) Router(prefix string, routes http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(stack.Resolver))
	router.Mount(prefix, routes)
	return router
}

// Do serves a request as caller (nil for anonymous) and returns the recorder.
func (stack *Stack) Do(t testing.TB, handler http.Handler, method, target, body string, caller *sec.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	if caller != nil {
		token, err := stack.Codec.Encode(*caller)
		if err != nil {
			t.Fatalf("authztest: %v", err)
		}
		request.Header.Set(constants.HeaderAuthorization, constants.BearerScheme+" "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// Data decodes the {"data": ...} envelope of a successful response.
func Data[T any](t testing.TB, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("authztest: decode %q: %v", recorder.Body.String(), err)
	}
	return envelope.Data
}
