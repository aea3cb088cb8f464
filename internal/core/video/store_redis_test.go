// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/core/video"
)

/*
TestRedisViewCounter exercises INCR, MGET and DEL against an in-process server.
*/
func TestRedisViewCounter(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	counter := video.NewViewCounter(client)
	ctx := context.Background()

	total, err := counter.Increment(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	total, err = counter.Increment(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = counter.Increment(ctx, "v-2")
	require.NoError(t, err)

	assert.True(t, server.Exists("video:views:v-1"))

	counts, err := counter.Counts(ctx, []string{"v-1", "v-2", "v-never"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"v-1": 2, "v-2": 1}, counts)

	require.NoError(t, counter.Reset(ctx, "v-1"))

	counts, err = counter.Counts(ctx, []string{"v-1"})
	require.NoError(t, err)
	assert.Empty(t, counts)

	empty, err := counter.Counts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
