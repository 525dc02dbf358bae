// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/metrics"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
)

// # Rate Limiting

// RateLimiter limits requests per client IP.
//
// With a Redis client the budget is shared by every replica through
// redis_rate's GCRA. Without one, or while Redis is unreachable, each process
// enforces the same limit with in-memory token buckets.
type RateLimiter struct {
	distributed *redis_rate.Limiter
	local       *localLimiter
	limit       redis_rate.Limit
	scope       string
}

// PerMinute builds a limit of requests per minute with a burst allowance.
func PerMinute(requests, burst int) redis_rate.Limit {
	return redis_rate.Limit{Rate: requests, Burst: burst, Period: constants.RateLimitWindow}
}

// NewRateLimiter builds a limiter. client may be nil. The local sweeper stops
// when ctx is cancelled.
func NewRateLimiter(ctx context.Context, client *redis.Client, limit redis_rate.Limit) *RateLimiter {
	limiter := &RateLimiter{
		local: newLocalLimiter(ctx),
		limit: limit,
		scope: "ip:",
	}
	if client != nil {
		limiter.distributed = redis_rate.NewLimiter(client)
	}
	return limiter
}

// Scoped returns a limiter with its own budget under name, sharing the
// backends of limiter. Used for endpoints stricter than the global limit.
func (limiter *RateLimiter) Scoped(name string, limit redis_rate.Limit) *RateLimiter {
	return &RateLimiter{
		distributed: limiter.distributed,
		local:       limiter.local,
		limit:       limit,
		scope:       name + ":ip:",
	}
}

// Handler is the middleware.
func (limiter *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := constants.RedisPrefixRateLimit + limiter.scope + RealIP(request)

		result, backend := limiter.allow(request.Context(), key)

		header := writer.Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit.Rate))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(max(result.Remaining, 0)))

		if result.Allowed == 0 {
			retryAfter := max(int(result.RetryAfter.Seconds()), 1)
			header.Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
			metrics.RateLimitedTotal.WithLabelValues(backend).Inc()
			respond.Error(writer, request, apperr.TooManyRequests(
				fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", retryAfter)))
			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (limiter *RateLimiter) allow(ctx context.Context, key string) (*redis_rate.Result, string) {
	if limiter.distributed != nil {
		result, err := limiter.distributed.Allow(ctx, key, limiter.limit)
		if err == nil {
			return result, "redis"
		}
		ctxutil.GetLogger(ctx).WarnContext(ctx, "rate_limiter_redis_unavailable", slog.Any("error", err))
	}
	return limiter.local.allow(key, limiter.limit), "local"
}

// localLimiter keeps one token bucket per key.
type localLimiter struct {
	mu      sync.Mutex
	clients map[string]*localClient
}

type localClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLocalLimiter(ctx context.Context) *localLimiter {
	local := &localLimiter{clients: make(map[string]*localClient)}
	go local.sweep(ctx)
	return local
}

func (local *localLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			local.mu.Lock()
			for key, client := range local.clients {
				if time.Since(client.lastSeen) > constants.RateLimitClientTTL {
					delete(local.clients, key)
				}
			}
			local.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (local *localLimiter) allow(key string, limit redis_rate.Limit) *redis_rate.Result {
	perSecond := float64(limit.Rate) / limit.Period.Seconds()

	local.mu.Lock()
	defer local.mu.Unlock()

	client, found := local.clients[key]
	if !found {
		client = &localClient{limiter: rate.NewLimiter(rate.Limit(perSecond), limit.Burst)}
		local.clients[key] = client
	}
	client.lastSeen = time.Now()

	result := &redis_rate.Result{
		Limit:      limit,
		Remaining:  int(client.limiter.Tokens()),
		RetryAfter: -1,
		ResetAfter: time.Duration(float64(time.Second) / perSecond),
	}
	if client.limiter.Allow() {
		result.Allowed = 1
		result.Remaining = max(result.Remaining-1, 0)
	} else {
		result.RetryAfter = time.Duration(float64(time.Second) / perSecond)
	}
	return result
}
