// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

const testSecret = "middleware-test-secret-thirty-two-bytes"

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

func newAuthStack(t *testing.T) (*sec.TokenCodec, *authz.Resolver, *authz.Gate) {
	t.Helper()
	codec, err := sec.NewTokenCodec(testSecret, constants.AuthIssuer)
	require.NoError(t, err)
	resolver := authz.NewResolver(codec)
	return codec, resolver, authz.NewGate(resolver)
}

// # Authentication

/*
TestRequireRole covers anonymous, wrong-role and allowed callers end to end.
*/
func TestRequireRole(t *testing.T) {
	codec, resolver, gate := newAuthStack(t)
	handler := middleware.Authenticate(resolver)(middleware.RequireRole(gate, sec.Staff()...)(okHandler))

	tokenFor := func(role sec.Role) string {
		token, err := codec.Encode(sec.Identity{ID: 11, Email: "x@church.org", Role: role})
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   string
		status  int
		message string
	}{
		{"anonymous", "", http.StatusUnauthorized, "Authentication required"},
		{"garbage_token", "abc.def.ghi", http.StatusUnauthorized, "Authentication required"},
		{"member", tokenFor(sec.RoleMember), http.StatusForbidden, "Insufficient permissions"},
		{"pastor", tokenFor(sec.RolePastor), http.StatusOK, ""},
		{"master_admin", tokenFor(sec.RoleMasterAdmin), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", nil)
			if tt.token != "" {
				request.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: tt.token})
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.message != "" {
				var body respond.ErrorEnvelope
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
				assert.Equal(t, tt.message, body.Error)
			}
		})
	}
}

/*
TestAuthenticate_CachesIdentity stores the caller for downstream handlers.
*/
func TestAuthenticate_CachesIdentity(t *testing.T) {
	codec, resolver, _ := newAuthStack(t)
	member := sec.Identity{ID: 5, Email: "m@church.org", Name: "M", Role: sec.RoleMember}
	token, err := codec.Encode(member)
	require.NoError(t, err)

	var seen *sec.Identity
	var resolved bool
	handler := middleware.Authenticate(resolver)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen, resolved = ctxutil.GetIdentity(request.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), request)

	require.True(t, resolved)
	assert.Equal(t, &member, seen)
}

// # Rate Limiting

/*
TestRateLimiter_Redis enforces the shared budget through Redis.
*/
func TestRateLimiter_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	limiter := middleware.NewRateLimiter(ctx, client, middleware.PerMinute(2, 2))
	handler := limiter.Handler(okHandler)

	statuses := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "203.0.113.7:5000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

/*
TestRateLimiter_LocalFallback limits in-process when Redis is absent.
*/
func TestRateLimiter_LocalFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	handler := middleware.NewRateLimiter(ctx, nil, middleware.PerMinute(1, 1)).Handler(okHandler)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get(constants.HeaderRetryAfter))

	// A different client keeps its own budget
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "198.51.100.1:4000"
	third := httptest.NewRecorder()
	handler.ServeHTTP(third, other)
	assert.Equal(t, http.StatusOK, third.Code)
}

/*
TestRateLimiter_Scoped keeps a separate budget per scope.
*/
func TestRateLimiter_Scoped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	global := middleware.NewRateLimiter(ctx, nil, middleware.PerMinute(1, 1))
	strict := global.Scoped("submissions", middleware.PerMinute(1, 1))

	serve := func(handler http.Handler) int {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, serve(global.Handler(okHandler)))
	assert.Equal(t, http.StatusOK, serve(strict.Handler(okHandler)))
	assert.Equal(t, http.StatusTooManyRequests, serve(strict.Handler(okHandler)))
}

// # Safety & Transport

/*
TestPanicRecovery converts a panic into a generic 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "boom")
}

type corsConfig struct{ development bool }

func (c corsConfig) IsDevelopment() bool { return c.development }

/*
TestCORS allows configured origins only outside development.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(corsConfig{}, []string{"https://church.org"})(okHandler)

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set(constants.HeaderOrigin, "https://church.org")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, allowed)
	assert.Equal(t, "https://church.org", recorder.Header().Get("Access-Control-Allow-Origin"))

	foreign := httptest.NewRequest(http.MethodGet, "/", nil)
	foreign.Header.Set(constants.HeaderOrigin, "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, foreign)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set(constants.HeaderOrigin, "https://church.org")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, preflight)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

/*
TestRequestID generates an id when the client sends none and echoes one otherwise.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	clientID := "0190d2a4-7b1c-7def-8a00-0123456789ab"
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, clientID)
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, clientID, seen)

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "forged\nlog line")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.NotEqual(t, "forged\nlog line", seen)
}

// # Trusted Proxies

/*
TestParseTrustedProxies accepts CIDRs and bare addresses and rejects garbage.
*/
func TestParseTrustedProxies(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies([]string{"10.0.0.0/8", " 192.0.2.10 ", ""})
	require.NoError(t, err)

	assert.True(t, proxies.Contains("10.1.2.3"))
	assert.True(t, proxies.Contains("192.0.2.10"))
	assert.False(t, proxies.Contains("192.0.2.11"))

	_, err = middleware.ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
}

/*
TestClientIP believes forwarding headers only from trusted peers.
*/
func TestClientIP(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		peer      string
		forwarded string
		realIP    string
		want      string
	}{
		{"untrusted peer ignores headers", "203.0.113.7:5000", "198.51.100.1", "198.51.100.2", "203.0.113.7"},
		{"trusted peer uses forwarded client", "10.0.0.5:5000", "198.51.100.1", "", "198.51.100.1"},
		{"skips trusted hops from the right", "10.0.0.5:5000", "1.1.1.1, 198.51.100.1, 10.0.0.9", "", "198.51.100.1"},
		{"trusted peer falls back to X-Real-IP", "10.0.0.5:5000", "", "198.51.100.3", "198.51.100.3"},
		{"trusted peer without headers", "10.0.0.5:5000", "", "", "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.peer
			if tt.forwarded != "" {
				request.Header.Set(constants.HeaderXForwardedFor, tt.forwarded)
			}
			if tt.realIP != "" {
				request.Header.Set(constants.HeaderXRealIP, tt.realIP)
			}
			assert.Equal(t, tt.want, proxies.ClientIP(request))
		})
	}
}

/*
TestRateLimiter_IgnoresSpoofedHeaders keeps one budget for a client rotating
X-Forwarded-For without a trusted proxy in front.
*/
func TestRateLimiter_IgnoresSpoofedHeaders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	limiter := middleware.NewRateLimiter(ctx, nil, middleware.PerMinute(1, 1))
	handler := middleware.TrustProxies(nil)(limiter.Handler(okHandler))

	statuses := make([]int, 0, 3)
	for i := range 3 {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.RemoteAddr = "203.0.113.7:5000"
		request.Header.Set(constants.HeaderXForwardedFor, fmt.Sprintf("198.51.100.%d", i+1))
		request.Header.Set(constants.HeaderXRealIP, fmt.Sprintf("198.51.100.%d", i+1))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, statuses)
}

/*
TestRateLimiter_BehindTrustedProxy budgets each forwarded client separately.
*/
func TestRateLimiter_BehindTrustedProxy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	proxies, err := middleware.ParseTrustedProxies([]string{"10.0.0.1"})
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(ctx, nil, middleware.PerMinute(1, 1))
	handler := middleware.TrustProxies(proxies)(limiter.Handler(okHandler))

	serve := func(client string) int {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.RemoteAddr = "10.0.0.1:443"
		request.Header.Set(constants.HeaderXForwardedFor, client)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, serve("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("198.51.100.1"))
	assert.Equal(t, http.StatusOK, serve("198.51.100.2"))
}
