// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/core/category"
	"github.com/taibuivan/learnsnap/internal/core/category/categorytest"
	"github.com/taibuivan/learnsnap/internal/core/video"
	"github.com/taibuivan/learnsnap/internal/core/video/videotest"
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
	"github.com/taibuivan/learnsnap/internal/users/auth"
	"github.com/taibuivan/learnsnap/internal/users/auth/authtest"
	"github.com/taibuivan/learnsnap/pkg/pagination"
)

const (
	backendID  = "0190a000-0000-7000-8000-000000000001"
	frontendID = "0190a000-0000-7000-8000-000000000002"
)

type fixture struct {
	service  *video.Service
	accounts *authtest.MemoryUserRepository
	videos   *videotest.MemoryRepository
	views    *videotest.MemoryViewCounter

	owner   sec.Identity
	rival   sec.Identity
	admin   sec.Identity
	learner sec.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	accounts := authtest.NewMemoryUserRepository()
	seed := func(id, email string, role sec.Role) sec.Identity {
		user := &auth.User{ID: id, Email: email, DisplayName: id, Role: role}
		accounts.Seed(user)
		return user.Identity()
	}

	categories := categorytest.NewMemoryRepository()
	categories.Seed(&category.Category{ID: backendID, Name: "Backend", Slug: "backend"})
	categories.Seed(&category.Category{ID: frontendID, Name: "Frontend", Slug: "frontend"})

	videos := videotest.NewMemoryRepository()
	views := videotest.NewMemoryViewCounter()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:  video.NewService(videos, categories, accounts, views, logger),
		accounts: accounts,
		videos:   videos,
		views:    views,
		owner:    seed("u-owner", "owner@x.com", sec.RoleInstructor),
		rival:    seed("u-rival", "rival@x.com", sec.RoleInstructor),
		admin:    seed("u-admin", "admin@x.com", sec.RoleAdmin),
		learner:  seed("u-learner", "learner@x.com", sec.RoleLearner),
	}
}

func validInput() video.Input {
	return video.Input{
		Title:           "Intro to Go",
		VideoURL:        "https://cdn.example.com/go.mp4",
		DurationSeconds: 600,
		Difficulty:      video.DifficultyBeginner,
		CategoryID:      backendID,
	}
}

/*
TestService_CreateVideo assigns ownership to the caller.
*/
func TestService_CreateVideo(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateVideo(context.Background(), f.owner, validInput())
	require.NoError(t, err)

	assert.Equal(t, "u-owner", created.InstructorID)
	assert.Equal(t, "backend", created.Category.Slug)
	require.NotNil(t, created.Instructor)
	assert.Equal(t, "u-owner", created.Instructor.DisplayName)
}

/*
TestService_CreateVideo_Rejections covers the non-happy paths.
*/
func TestService_CreateVideo_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	missingCategory := validInput()
	missingCategory.CategoryID = "0190a000-0000-7000-8000-0000000000ff"

	ghost := sec.Authenticated("u-ghost", "ghost@x.com", sec.RoleInstructor)

	tests := []struct {
		name     string
		identity sec.Identity
		input    video.Input
		code     string
	}{
		{"anonymous", sec.Anonymous(), validInput(), apperr.CodeUnauthenticated},
		{"deleted_account", ghost, validInput(), apperr.CodeUnauthenticated},
		{"missing_category", f.owner, missingCategory, apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateVideo(ctx, tt.identity, tt.input)
			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
		})
	}
}

/*
TestService_UpdateVideo_Ownership verifies owner-or-admin semantics.
*/
func TestService_UpdateVideo_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateVideo(ctx, f.owner, validInput())
	require.NoError(t, err)

	changed := validInput()
	changed.Title = "Go in Depth"
	changed.Difficulty = video.DifficultyAdvanced
	changed.CategoryID = frontendID

	tests := []struct {
		name     string
		identity sec.Identity
		code     string
	}{
		{"owner", f.owner, ""},
		{"admin", f.admin, ""},
		{"other_instructor", f.rival, apperr.CodeForbidden},
		{"learner", f.learner, apperr.CodeForbidden},
		{"anonymous", sec.Anonymous(), apperr.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := f.service.UpdateVideo(ctx, tt.identity, created.ID, changed)
			if tt.code == "" {
				require.NoError(t, err)
				assert.Equal(t, "Go in Depth", updated.Title)
				assert.Equal(t, "frontend", updated.Category.Slug)
				assert.Equal(t, "u-owner", updated.InstructorID)
				return
			}
			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
		})
	}

	_, err = f.service.UpdateVideo(ctx, f.owner, "missing", changed)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_UpdateVideo_RoleReadFromStore ignores a stale role in the identity.
*/
func TestService_UpdateVideo_RoleReadFromStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateVideo(ctx, f.owner, validInput())
	require.NoError(t, err)

	// Claims admin, but the store says instructor.
	forged := sec.Authenticated(f.rival.UserID, f.rival.Subject, sec.RoleAdmin)

	_, err = f.service.UpdateVideo(ctx, forged, created.ID, validInput())
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}

/*
TestService_OrphanedVideo is editable only by admins once the owner is gone.
*/
func TestService_OrphanedVideo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.videos.Seed(&video.Video{
		ID:         "v-orphan",
		Title:      "Legacy",
		CategoryID: backendID,
		Difficulty: video.DifficultyBeginner,
		CreatedAt:  time.Now(),
	})

	_, err := f.service.UpdateVideo(ctx, f.owner, "v-orphan", validInput())
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	require.NoError(t, f.service.DeleteVideo(ctx, f.admin, "v-orphan"))
}

/*
TestService_DeleteVideo removes the video and its counter.
*/
func TestService_DeleteVideo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateVideo(ctx, f.owner, validInput())
	require.NoError(t, err)

	_, err = f.service.RecordView(ctx, created.ID)
	require.NoError(t, err)

	err = f.service.DeleteVideo(ctx, f.rival, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	require.NoError(t, f.service.DeleteVideo(ctx, f.owner, created.ID))

	counts, err := f.views.Counts(ctx, []string{created.ID})
	require.NoError(t, err)
	assert.Empty(t, counts)

	_, err = f.service.GetVideo(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_RecordView counts plays and overlays them on reads.
*/
func TestService_RecordView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateVideo(ctx, f.owner, validInput())
	require.NoError(t, err)

	for expected := int64(1); expected <= 3; expected++ {
		total, err := f.service.RecordView(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, total)
	}

	fetched, err := f.service.GetVideo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fetched.ViewsCount)

	_, err = f.service.RecordView(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_ViewCounterOutage keeps reads working with zero counts.
*/
func TestService_ViewCounterOutage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateVideo(ctx, f.owner, validInput())
	require.NoError(t, err)

	f.views.FailWith = errors.New("redis down")

	fetched, err := f.service.GetVideo(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, fetched.ViewsCount)

	_, err = f.service.RecordView(ctx, created.ID)
	assert.Error(t, err)
}

/*
TestService_ListVideos filters and paginates newest first.
*/
func TestService_ListVideos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for index, row := range []struct {
		id         string
		categoryID string
		difficulty video.Difficulty
	}{
		{"v-1", backendID, video.DifficultyBeginner},
		{"v-2", backendID, video.DifficultyAdvanced},
		{"v-3", frontendID, video.DifficultyBeginner},
	} {
		f.videos.Seed(&video.Video{
			ID:         row.id,
			CategoryID: row.categoryID,
			Difficulty: row.difficulty,
			CreatedAt:  base.Add(time.Duration(index) * time.Hour),
		})
	}

	all, meta, err := f.service.ListVideos(ctx, video.Filter{}, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "v-3", all[0].ID)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)

	backend, _, err := f.service.ListVideos(ctx, video.Filter{CategoryID: backendID}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, backend, 2)

	beginner, _, err := f.service.ListVideos(ctx, video.Filter{Difficulty: video.DifficultyBeginner}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, beginner, 2)

	empty, meta, err := f.service.ListVideos(ctx, video.Filter{}, pagination.Params{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 3, meta.Total)
}
