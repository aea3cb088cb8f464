// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/learnsnap/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/learnsnap/internal/platform/request"
	"github.com/taibuivan/learnsnap/internal/platform/respond"
	"github.com/taibuivan/learnsnap/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// Every route here is public in the access table; the handler never relies on
// a published identity except to echo it back from /me.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup : Creates a new learner account.
//   - POST /login  : Authenticates and returns a bearer token.
//   - GET  /me     : Echoes the identity resolved for the request.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.Get("/me", handler.me)

	return router
}

// # Request Payloads

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Signup handles the creation of a new user account.

POST /api/auth/signup

Request:
  - Body: signupRequest (Email, Password, DisplayName)

Response:
  - 201: User: Created user profile
  - 400: VALIDATION_ERROR: Bad input
  - 409: DUPLICATE_IDENTIFIER: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, MaxEmailLength).
		Required(FieldPassword, input.Password).
		Custom(FieldPassword, len(input.Password) > MaxPasswordBytes, "Maximum 72 bytes").
		Required(FieldDisplayName, input.DisplayName).
		MaxLen(FieldDisplayName, input.DisplayName, MaxDisplayNameLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "auth_user_registered")
	respond.Created(writer, user)
}

/*
Login authenticates a user and returns a bearer token.

POST /api/auth/login

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: LoginResult: Access token, type, lifetime and user profile
  - 401: INVALID_CREDENTIALS: Unknown email or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.Email = strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
Me reports the identity the gate resolved for this request.

GET /api/auth/me

Response:
  - 200: { authenticated, user_id, subject, role }
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Identity(request)

	respond.OK(writer, map[string]any{
		FieldAuthenticated: identity.IsAuthenticated(),
		"identity":         identity,
	})
}
