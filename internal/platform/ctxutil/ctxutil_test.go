// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/learnsnap/internal/platform/ctxutil"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Identity verifies that the request identity can be stored in context.
*/
func TestContext_Identity(t *testing.T) {
	ctx := context.Background()

	// 1. Initially absent and anonymous
	_, ok := ctxutil.LookupIdentity(ctx)
	assert.False(t, ok)
	assert.False(t, ctxutil.GetIdentity(ctx).IsAuthenticated())

	// 2. Anonymous is still a published identity
	anonymousCtx := ctxutil.WithIdentity(ctx, sec.Anonymous())
	_, ok = ctxutil.LookupIdentity(anonymousCtx)
	assert.True(t, ok)

	// 3. Inject and retrieve
	ctx = ctxutil.WithIdentity(ctx, sec.Authenticated("user-123", "a@x.com", sec.RoleAdmin))
	retrieved := ctxutil.GetIdentity(ctx)

	assert.True(t, retrieved.IsAuthenticated())
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, sec.RoleAdmin, retrieved.Role)
}
