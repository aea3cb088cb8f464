// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
	"github.com/taibuivan/learnsnap/internal/users/account"
	"github.com/taibuivan/learnsnap/internal/users/auth"
	"github.com/taibuivan/learnsnap/internal/users/auth/authtest"
	"github.com/taibuivan/learnsnap/pkg/pointer"
)

func newService(t *testing.T) (*account.Service, *authtest.MemoryUserRepository, sec.Identity) {
	t.Helper()

	repository := authtest.NewMemoryUserRepository()
	repository.Seed(&auth.User{
		ID:          "u-1",
		Email:       "a@x.com",
		DisplayName: "Alice",
		Bio:         "hello",
		Role:        sec.RoleLearner,
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(repository, logger), repository, sec.Authenticated("u-1", "a@x.com", sec.RoleLearner)
}

/*
TestService_GetProfile covers the caller lookup paths.
*/
func TestService_GetProfile(t *testing.T) {
	service, _, identity := newService(t)
	ctx := context.Background()

	user, err := service.GetProfile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.DisplayName)

	_, err = service.GetProfile(ctx, sec.Anonymous())
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthenticated))

	ghost := sec.Authenticated("u-404", "ghost@x.com", sec.RoleLearner)
	_, err = service.GetProfile(ctx, ghost)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthenticated))
}

/*
TestService_UpdateProfile applies only the supplied fields.
*/
func TestService_UpdateProfile(t *testing.T) {
	service, repository, identity := newService(t)
	ctx := context.Background()

	updated, err := service.UpdateProfile(ctx, identity, account.UpdateProfileInput{
		DisplayName: pointer.To("Alicia"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.DisplayName)
	assert.Equal(t, "hello", updated.Bio)

	// Clearing a field is an explicit empty string.
	updated, err = service.UpdateProfile(ctx, identity, account.UpdateProfileInput{Bio: pointer.To("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Bio)

	stored, err := repository.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", stored.DisplayName)
	assert.Empty(t, stored.Bio)
	assert.Equal(t, sec.RoleLearner, stored.Role)
}

/*
TestService_DeleteAccount removes the account once.
*/
func TestService_DeleteAccount(t *testing.T) {
	service, repository, identity := newService(t)
	ctx := context.Background()

	require.NoError(t, service.DeleteAccount(ctx, identity))
	assert.Equal(t, 0, repository.Count())

	err := service.DeleteAccount(ctx, identity)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthenticated))
}

/*
TestService_GetPublicProfile hides private fields.
*/
func TestService_GetPublicProfile(t *testing.T) {
	service, _, _ := newService(t)

	profile, err := service.GetPublicProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, &account.PublicProfile{ID: "u-1", DisplayName: "Alice", Bio: "hello", Role: "learner"}, profile)

	_, err = service.GetPublicProfile(context.Background(), "u-404")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
