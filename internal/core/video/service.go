// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/learnsnap/internal/core/category"
	"github.com/taibuivan/learnsnap/internal/platform/access"
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
	"github.com/taibuivan/learnsnap/internal/users/auth"
	"github.com/taibuivan/learnsnap/pkg/pagination"
	"github.com/taibuivan/learnsnap/pkg/uuid"
)

// # Contracts

// CategoryReader resolves the category a video is filed under.
type CategoryReader interface {
	FindByID(context context.Context, id string) (*category.Category, error)
}

// AccountReader re-resolves the calling principal.
type AccountReader interface {
	FindByID(context context.Context, id string) (*auth.User, error)
}

// Service implements video catalog use cases.
type Service struct {
	videoRepository Repository
	categories      CategoryReader
	accounts        AccountReader
	views           ViewCounter
	logger          *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, categories CategoryReader, accounts AccountReader, views ViewCounter, logger *slog.Logger) *Service {
	return &Service{
		videoRepository: repo,
		categories:      categories,
		accounts:        accounts,
		views:           views,
		logger:          logger,
	}
}

// Input carries the writable fields of a video. VideoURL is ignored on update.
type Input struct {
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	DurationSeconds int
	Difficulty      Difficulty
	CategoryID      string
}

// # Reads

/*
ListVideos returns one page of the catalog with live view counts.

Parameters:
  - context: context.Context
  - filter: Filter
  - page: pagination.Params

Returns:
  - []*Video: Page contents
  - pagination.Meta: Page metadata
  - error: Storage failures
*/
func (service *Service) ListVideos(context context.Context, filter Filter, page pagination.Params) ([]*Video, pagination.Meta, error) {
	videos, total, err := service.videoRepository.List(context, filter, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	service.overlayViews(context, videos...)

	return videos, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// GetVideo returns one video with its category, instructor and live view count.
func (service *Service) GetVideo(context context.Context, id string) (*Video, error) {
	video, err := service.videoRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	service.overlayViews(context, video)
	return video, nil
}

// overlayViews copies counters onto videos. A Redis outage degrades to zero
// counts rather than failing the read.
func (service *Service) overlayViews(context context.Context, videos ...*Video) {
	if len(videos) == 0 {
		return
	}

	ids := make([]string, len(videos))
	for index, video := range videos {
		ids[index] = video.ID
	}

	counts, err := service.views.Counts(context, ids)
	if err != nil {
		service.logger.Warn("video_view_counts_unavailable", slog.String("error", err.Error()))
		return
	}

	for _, video := range videos {
		video.ViewsCount = counts[video.ID]
	}
}

// # Writes

/*
CreateVideo publishes a new video owned by the caller.

Parameters:
  - context: context.Context
  - identity: sec.Identity
  - input: Input

Returns:
  - *Video: The created entity
  - error: UNAUTHENTICATED, NOT_FOUND (category) or storage failures
*/
func (service *Service) CreateVideo(context context.Context, identity sec.Identity, input Input) (*Video, error) {
	principal, err := service.resolvePrincipal(context, identity)
	if err != nil {
		return nil, err
	}

	summary, err := service.resolveCategory(context, input.CategoryID)
	if err != nil {
		return nil, err
	}

	video := &Video{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		VideoURL:        input.VideoURL,
		ThumbnailURL:    input.ThumbnailURL,
		DurationSeconds: input.DurationSeconds,
		Difficulty:      input.Difficulty,
		CategoryID:      summary.ID,
		Category:        summary,
		InstructorID:    principal.ID,
		Instructor: &Instructor{
			ID:           principal.ID,
			DisplayName:  principal.DisplayName,
			ProfileImage: principal.ProfileImage,
		},
	}

	if err := service.videoRepository.Create(context, video); err != nil {
		return nil, err
	}

	service.logger.Info("video_created",
		slog.String("video_id", video.ID),
		slog.String("instructor_id", principal.ID),
	)

	return video, nil
}

// UpdateVideo replaces the mutable fields of a video the caller owns.
func (service *Service) UpdateVideo(context context.Context, identity sec.Identity, id string, input Input) (*Video, error) {
	video, err := service.authorizeOwner(context, identity, id)
	if err != nil {
		return nil, err
	}

	summary, err := service.resolveCategory(context, input.CategoryID)
	if err != nil {
		return nil, err
	}

	video.Title = input.Title
	video.Description = input.Description
	video.ThumbnailURL = input.ThumbnailURL
	video.DurationSeconds = input.DurationSeconds
	video.Difficulty = input.Difficulty
	video.CategoryID = summary.ID
	video.Category = summary

	if err := service.videoRepository.Update(context, video); err != nil {
		return nil, err
	}

	service.overlayViews(context, video)
	return video, nil
}

// DeleteVideo removes a video the caller owns along with its view counter.
func (service *Service) DeleteVideo(context context.Context, identity sec.Identity, id string) error {
	if _, err := service.authorizeOwner(context, identity, id); err != nil {
		return err
	}

	if err := service.videoRepository.Delete(context, id); err != nil {
		return err
	}

	if err := service.views.Reset(context, id); err != nil {
		service.logger.Warn("video_view_counter_reset_failed",
			slog.String("video_id", id),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Info("video_deleted", slog.String("video_id", id), slog.String("user_id", identity.UserID))
	return nil
}

// RecordView counts one playback of an existing video and returns the new total.
func (service *Service) RecordView(context context.Context, id string) (int64, error) {
	if _, err := service.videoRepository.FindByID(context, id); err != nil {
		return 0, err
	}

	total, err := service.views.Increment(context, id)
	if err != nil {
		return 0, fmt.Errorf("video_service_record_view_failed: %w", err)
	}
	return total, nil
}

// # Helpers

// authorizeOwner loads the video and applies the ownership check against the
// caller as currently stored.
func (service *Service) authorizeOwner(context context.Context, identity sec.Identity, id string) (*Video, error) {
	video, err := service.videoRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	principal, err := service.resolvePrincipal(context, identity)
	if err != nil {
		return nil, err
	}

	if err := access.CheckOwnership(principal.Identity(), video.InstructorID); err != nil {
		service.logger.Warn("video_ownership_denied",
			slog.String("video_id", id),
			slog.String("user_id", principal.ID),
		)
		return nil, err
	}

	return video, nil
}

func (service *Service) resolvePrincipal(context context.Context, identity sec.Identity) (*auth.User, error) {
	if !identity.IsAuthenticated() {
		return nil, apperr.Unauthenticated("Authentication required")
	}

	principal, err := service.accounts.FindByID(context, identity.UserID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthenticated("Account no longer exists")
		}
		return nil, fmt.Errorf("video_service_resolve_principal_failed: %w", err)
	}
	return principal, nil
}

func (service *Service) resolveCategory(context context.Context, categoryID string) (*CategorySummary, error) {
	found, err := service.categories.FindByID(context, categoryID)
	if err != nil {
		return nil, err
	}
	return &CategorySummary{ID: found.ID, Name: found.Name, Slug: found.Slug}, nil
}
