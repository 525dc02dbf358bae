// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	requestutil "github.com/taibuivan/ecclesia/internal/platform/request"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
	"github.com/taibuivan/ecclesia/pkg/pagination"
)

// Handler implements the HTTP layer for sermon notes.
type Handler struct {
	service *Service
	gate    middleware.Authorizer
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, gate middleware.Authorizer) *Handler {
	return &Handler{service: service, gate: gate}
}

// Routes returns the /notes router.
//
// Reads are open and filtered by ownership, so an anonymous listing is empty.
// Writes need any signed-in role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(signedIn chi.Router) {
		signedIn.Use(middleware.RequireRole(handler.gate))
		signedIn.Post("/", handler.create)
		signedIn.Put("/{id}", handler.update)
		signedIn.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	notes, total, err := handler.service.List(request.Context(), requestutil.Caller(request), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, notes, params.Meta(total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.Get(request.Context(), requestutil.Caller(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.Create(request.Context(), requestutil.Caller(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, note)
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

	note, err := handler.service.Update(request.Context(), requestutil.Caller(request), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), requestutil.Caller(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
