// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	requestutil "github.com/taibuivan/ecclesia/internal/platform/request"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Handler implements the HTTP layer for events.
type Handler struct {
	service *Service
	gate    middleware.Authorizer
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, gate middleware.Authorizer) *Handler {
	return &Handler{service: service, gate: gate}
}

// Routes returns the /events router.
//
// # Endpoints
//   - GET    /      : Events (?upcoming=true for those not yet over)
//   - GET    /{id}  : One event
//   - POST   /      : Create (staff)
//   - PUT    /{id}  : Update (staff)
//   - DELETE /{id}  : Delete (staff)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

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
	upcoming := requestutil.BoolQuery(request, "upcoming")

	events, total, err := handler.service.List(request.Context(), requestutil.Caller(request), upcoming, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, params.Meta(total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Get(request.Context(), requestutil.Caller(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, event)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Create(request.Context(), requestutil.Caller(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, event)
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

	event, err := handler.service.Update(request.Context(), requestutil.Caller(request), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, event)
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
