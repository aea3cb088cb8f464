// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/learnsnap/internal/platform/constants"
)

// RedisViewCounter implements [ViewCounter] with one INCR key per video.
type RedisViewCounter struct {
	client redis.UniversalClient
}

// NewViewCounter creates a new Redis-backed view counter.
func NewViewCounter(client redis.UniversalClient) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

func viewKey(videoID string) string {
	return constants.RedisPrefixVideoViews + videoID
}

/*
Increment records one playback.

Parameters:
  - context: context.Context
  - videoID: string

Returns:
  - int64: The new total
  - error: Connectivity errors
*/
func (counter *RedisViewCounter) Increment(context context.Context, videoID string) (int64, error) {
	total, err := counter.client.Incr(context, viewKey(videoID)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_view_counter_incr_failed: %w", err)
	}
	return total, nil
}

// Counts reads every counter in a single MGET round trip.
func (counter *RedisViewCounter) Counts(context context.Context, videoIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(videoIDs))
	for index, videoID := range videoIDs {
		keys[index] = viewKey(videoID)
	}

	values, err := counter.client.MGet(context, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis_view_counter_mget_failed: %w", err)
	}

	for index, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		total, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		counts[videoIDs[index]] = total
	}

	return counts, nil
}

func (counter *RedisViewCounter) Reset(context context.Context, videoID string) error {
	if err := counter.client.Del(context, viewKey(videoID)).Err(); err != nil {
		return fmt.Errorf("redis_view_counter_delete_failed: %w", err)
	}
	return nil
}
