// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package prayer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	requestutil "github.com/taibuivan/ecclesia/internal/platform/request"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Handler implements the HTTP layer for prayer requests.
type Handler struct {
	service     *Service
	gate        middleware.Authorizer
	submitGuard func(http.Handler) http.Handler
}

// NewHandler constructs a [Handler]. submitGuard, when non-nil, wraps the
// public submission endpoint (typically a stricter rate limit).
func NewHandler(service *Service, gate middleware.Authorizer, submitGuard func(http.Handler) http.Handler) *Handler {
	if submitGuard == nil {
		submitGuard = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{service: service, gate: gate, submitGuard: submitGuard}
}

// Routes returns the /prayer-requests router.
//
// # Endpoints
//   - POST   /             : Submit (anyone)
//   - GET    /             : Requests (staff, ?status=pending|praying|answered)
//   - GET    /{id}         : One request (staff)
//   - PATCH  /{id}/status  : Follow up (staff)
//   - DELETE /{id}         : Delete (staff)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(handler.submitGuard).Post("/", handler.submit)

	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(handler.gate, sec.Staff()...))
		staff.Get("/", handler.list)
		staff.Get("/{id}", handler.get)
		staff.Patch("/{id}/status", handler.setStatus)
		staff.Delete("/{id}", handler.delete)
	})

	return router
}

/*
POST /api/v1/prayer-requests.

Request: SubmitInput. No authentication required.

Response:
  - 201: The stored request
  - 400: Missing content or malformed email
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	prayerRequest, err := handler.service.Submit(request.Context(), requestutil.Caller(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, prayerRequest)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	requests, total, err := handler.service.List(request.Context(), requestutil.Caller(request), authz.QueryFromRequest(request), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, requests, params.Meta(total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	prayerRequest, err := handler.service.Get(request.Context(), requestutil.Caller(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, prayerRequest)
}

func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input StatusInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	prayerRequest, err := handler.service.SetStatus(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, prayerRequest)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
