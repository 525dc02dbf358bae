// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

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

// Handler implements the HTTP layer for blog posts.
type Handler struct {
	service *Service
	gate    middleware.Authorizer
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, gate middleware.Authorizer) *Handler {
	return &Handler{service: service, gate: gate}
}

// Routes returns the /blogs router.
//
// # Endpoints
//   - GET    /             : Visible posts (staff: ?status=published|draft)
//   - GET    /{id}         : One visible post
//   - GET    /slug/{slug}  : One visible post by slug
//   - POST   /             : Create (staff)
//   - PUT    /{id}         : Update (staff)
//   - DELETE /{id}         : Delete (staff)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/slug/{slug}", handler.getBySlug)

	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(handler.gate, sec.Staff()...))
		staff.Post("/", handler.create)
		staff.Put("/{id}", handler.update)
		staff.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	blogs, total, err := handler.service.List(request.Context(), requestutil.Caller(request), authz.QueryFromRequest(request), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, blogs, params.Meta(total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	blog, err := handler.service.Get(request.Context(), requestutil.Caller(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blog)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	blog, err := handler.service.GetBySlug(request.Context(), requestutil.Caller(request), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blog)
}

/*
POST /api/v1/blogs.

Response:
  - 201: Blog
  - 400: Validation failure
  - 401/403: Not staff
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	blog, err := handler.service.Create(request.Context(), requestutil.Caller(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, blog)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	blog, err := handler.service.Update(request.Context(), requestutil.Caller(request), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blog)
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
