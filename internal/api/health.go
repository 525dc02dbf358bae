// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
)

// Checker is one dependency behind the readiness probe.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type healthHandler struct {
	checkers []Checker
	logger   *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(logger *slog.Logger, checkers ...Checker) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checkers: checkers, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health. It never touches a dependency.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

/*
readiness handles GET /ready.

Every checker runs concurrently under [constants.ReadinessTimeout].

Response:
  - 200: {"status":"ready","checks":[...]}
  - 503: {"status":"degraded","checks":[...]} when any check failed
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
	defer cancel()

	results := make([]checkResult, len(handler.checkers))

	var group errgroup.Group
	for index, checker := range handler.checkers {
		group.Go(func() error {
			result := checkResult{Name: checker.Name(), OK: true}
			if err := checker.Check(ctx); err != nil {
				result.OK = false
				result.Error = err.Error()
				handler.logger.ErrorContext(ctx, "readiness_check_failed",
					slog.String("dependency", result.Name),
					slog.Any("error", err),
				)
			}
			results[index] = result
			return nil
		})
	}
	_ = group.Wait()

	status, code := "ready", http.StatusOK
	for _, result := range results {
		if !result.OK {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, code, respond.SuccessEnvelope{Data: map[string]any{
		"status": status,
		"checks": results,
	}})
}
