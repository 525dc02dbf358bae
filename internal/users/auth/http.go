// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	requestutil "github.com/taibuivan/ecclesia/internal/platform/request"
	"github.com/taibuivan/ecclesia/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the authentication endpoints.
type Handler struct {
	authService *Service
	gate        middleware.Authorizer
	cookies     authz.Cookies
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, gate middleware.Authorizer, cookies authz.Cookies) *Handler {
	return &Handler{authService: service, gate: gate, cookies: cookies}
}

// Routes returns the /auth router.
//
// # Endpoints
//   - POST /register : Creates an account.
//   - POST /login    : Verifies credentials and sets the auth cookie.
//   - POST /logout   : Clears the auth cookie.
//   - GET  /me       : Returns the caller's identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	router.With(middleware.RequireRole(handler.gate)).Get("/me", handler.me)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles account creation.

POST /api/v1/auth/register

Description: An anonymous caller is signed in as the new member. A master_admin
creating an account on someone else's behalf keeps their own cookie.

Response:
  - 201: Session
  - 400: Validation failure or duplicate email
  - 403: Role elevation by a non-admin caller
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller := requestutil.Caller(request)
	session, err := handler.authService.Register(request.Context(), caller, RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if caller == nil {
		handler.cookies.Set(writer, session.Token)
	}
	respond.Created(writer, session)
}

/*
Login authenticates a user.

POST /api/v1/auth/login

Response:
  - 200: Session, with the auth_token cookie set
  - 401: Invalid email or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.Set(writer, session.Token)
	respond.OK(writer, session)
}

/*
Logout clears the auth cookie. Tokens are stateless, so a bearer token stays
valid until it expires.

POST /api/v1/auth/logout
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.cookies.Clear(writer)
	respond.NoContent(writer)
}

/*
Me returns the identity carried by the caller's token.

GET /api/v1/auth/me
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, requestutil.Caller(request))
}
