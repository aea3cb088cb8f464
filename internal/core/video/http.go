// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/learnsnap/internal/platform/request"
	"github.com/taibuivan/learnsnap/internal/platform/respond"
	"github.com/taibuivan/learnsnap/internal/platform/validate"
	"github.com/taibuivan/learnsnap/pkg/pagination"
)

// Handler serves the /api/videos endpoints.
type Handler struct {
	videoService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{videoService: service}
}

// Routes returns the video router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listVideos)
	router.Get("/{id}", handler.getVideo)
	router.Post("/", handler.createVideo)
	router.Put("/{id}", handler.updateVideo)
	router.Delete("/{id}", handler.deleteVideo)
	router.Post("/{id}/view", handler.recordView)

	return router
}

type videoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration"`
	Difficulty   string `json:"difficulty"`
	CategoryID   string `json:"category_id"`
}

// decodeInput reads and validates the body. requireURL is false on update,
// where the video file cannot be replaced.
func decodeInput(request *http.Request, requireURL bool) (Input, error) {
	var body videoRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return Input{}, err
	}

	input := Input{
		Title:           strings.TrimSpace(body.Title),
		Description:     strings.TrimSpace(body.Description),
		VideoURL:        strings.TrimSpace(body.VideoURL),
		ThumbnailURL:    strings.TrimSpace(body.ThumbnailURL),
		DurationSeconds: body.Duration,
		Difficulty:      Difficulty(strings.ToUpper(strings.TrimSpace(body.Difficulty))),
		CategoryID:      strings.TrimSpace(body.CategoryID),
	}

	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		MaxLen(FieldDescription, input.Description, MaxDescriptionLength).
		MaxLen(FieldThumbnailURL, input.ThumbnailURL, MaxURLLength).
		Min(FieldDuration, input.DurationSeconds, MinDurationSeconds).
		OneOf(FieldDifficulty, string(input.Difficulty), Difficulties()...).
		UUID(FieldCategoryID, input.CategoryID)

	if requireURL {
		v.Required(FieldVideoURL, input.VideoURL).MaxLen(FieldVideoURL, input.VideoURL, MaxURLLength)
	}

	return input, v.Err()
}

/*
GET /api/videos.

Request:
  - query: page, limit, category_id, difficulty

Response:
  - 200: []Video with pagination metadata
  - 400: VALIDATION_ERROR: Unknown difficulty
*/
func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		CategoryID: requestutil.Query(request, "category_id"),
		Difficulty: Difficulty(strings.ToUpper(requestutil.Query(request, "difficulty"))),
	}

	v := &validate.Validator{}
	if filter.CategoryID != "" {
		v.UUID(FieldCategoryID, filter.CategoryID)
	}
	if filter.Difficulty != "" {
		v.OneOf(FieldDifficulty, string(filter.Difficulty), Difficulties()...)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)

	videos, meta, err := handler.videoService.ListVideos(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, meta)
}

func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.videoService.GetVideo(request.Context(), videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, video)
}

/*
POST /api/videos.

Response:
  - 201: Video owned by the caller
  - 400: VALIDATION_ERROR
  - 401: UNAUTHENTICATED: Account deleted since the token was issued
  - 404: NOT_FOUND: Category does not exist
*/
func (handler *Handler) createVideo(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeInput(request, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.videoService.CreateVideo(request.Context(), identity, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, video)
}

/*
PUT /api/videos/{id}.

Response:
  - 200: Video
  - 403: FORBIDDEN: Caller is neither the owner nor an admin
  - 404: NOT_FOUND
*/
func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	videoID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeInput(request, false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.videoService.UpdateVideo(request.Context(), identity, videoID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, video)
}

func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	videoID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.videoService.DeleteVideo(request.Context(), identity, videoID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// viewResponse is the body of POST /api/videos/{id}/view.
type viewResponse struct {
	ViewsCount int64 `json:"views_count"`
}

func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	total, err := handler.videoService.RecordView(request.Context(), videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, viewResponse{ViewsCount: total})
}
