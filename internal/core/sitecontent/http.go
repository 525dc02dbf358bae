// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitecontent

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	requestutil "github.com/taibuivan/ecclesia/internal/platform/request"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

// Handler implements the HTTP layer for site content.
type Handler struct {
	service *Service
	gate    middleware.Authorizer
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, gate middleware.Authorizer) *Handler {
	return &Handler{service: service, gate: gate}
}

// Routes returns the /site-content router.
//
// # Endpoints
//   - GET    /       : Every block
//   - GET    /{key}  : One block
//   - PUT    /{key}  : Create or replace (staff)
//   - DELETE /{key}  : Delete (master_admin)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{key}", handler.get)
	router.With(middleware.RequireRole(handler.gate, sec.Staff()...)).Put("/{key}", handler.put)
	router.With(middleware.RequireRole(handler.gate, sec.RoleMasterAdmin)).Delete("/{key}", handler.delete)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	blocks, err := handler.service.List(request.Context(), requestutil.Caller(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blocks)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	block, err := handler.service.Get(request.Context(), requestutil.Caller(request), requestutil.Param(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, block)
}

/*
PUT /api/v1/site-content/{key}.

Request: PutInput. The whole block is replaced.

Response:
  - 200: The stored block
  - 400: Key is not a lowercase slug, or fields too long
*/
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	var input PutInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	block, err := handler.service.Put(request.Context(), requestutil.Caller(request), requestutil.Param(request, "key"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, block)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "key")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
