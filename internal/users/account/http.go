// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/learnsnap/internal/platform/request"
	"github.com/taibuivan/learnsnap/internal/platform/respond"
	"github.com/taibuivan/learnsnap/internal/platform/validate"
)

// Handler serves the /api/users endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
//
// The whole group is AuthenticatedOnly in the access table.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", handler.getMe)
	router.Put("/me", handler.updateMe)
	router.Delete("/me", handler.deleteMe)

	router.Get("/{id}", handler.getUserProfile)

	return router
}

// # User Profile Endpoints

/*
GET /api/users/me.

Response:
  - 200: User: Fully hydrated user profile
  - 401: UNAUTHENTICATED: Anonymous or deleted account
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.GetProfile(request.Context(), requestutil.Identity(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateMeRequest defines the expected JSON payload for profile updates.
type updateMeRequest struct {
	DisplayName  *string `json:"display_name"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

/*
PUT /api/users/me.

Request:
  - body: updateMeRequest (omitted fields stay unchanged)

Response:
  - 200: User: The updated profile
  - 400: VALIDATION_ERROR: Invalid input data
  - 401: UNAUTHENTICATED: Anonymous or deleted account
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateMeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.DisplayName != nil {
		v.MinLen(FieldDisplayName, *input.DisplayName, MinDisplayNameLength).
			MaxLen(FieldDisplayName, *input.DisplayName, MaxDisplayNameLength)
	}
	if input.Bio != nil {
		v.MaxLen(FieldBio, *input.Bio, MaxBioLength)
	}
	if input.ProfileImage != nil {
		v.MaxLen(FieldProfileImage, *input.ProfileImage, MaxProfileImageLength)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), identity, UpdateProfileInput{
		DisplayName:  input.DisplayName,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/users/me.

Response:
  - 204: No Content: Account deleted
  - 401: UNAUTHENTICATED: Anonymous or already deleted
*/
func (handler *Handler) deleteMe(writer http.ResponseWriter, request *http.Request) {
	if err := handler.accountService.DeleteAccount(request.Context(), requestutil.Identity(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/users/{id}.

Response:
  - 200: PublicProfile
  - 400: VALIDATION_ERROR: Malformed ID
  - 404: NOT_FOUND
*/
func (handler *Handler) getUserProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetPublicProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
