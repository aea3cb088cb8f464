// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"

	"github.com/taibuivan/learnsnap/pkg/pagination"
)

// Repository defines the persistence contract for videos.
type Repository interface {
	// List returns one page ordered newest first, plus the total match count.
	List(context context.Context, filter Filter, page pagination.Params) ([]*Video, int, error)

	FindByID(context context.Context, id string) (*Video, error)
	Create(context context.Context, video *Video) error

	// Update writes every mutable field. Ownership and VideoURL never change.
	Update(context context.Context, video *Video) error

	Delete(context context.Context, id string) error
}

// ViewCounter tracks playback counts outside the relational store.
type ViewCounter interface {
	// Increment adds one view and returns the new total.
	Increment(context context.Context, videoID string) (int64, error)

	// Counts returns totals for ids. Videos never viewed are absent.
	Counts(context context.Context, videoIDs []string) (map[string]int64, error)

	// Reset forgets the counter of a deleted video.
	Reset(context context.Context, videoID string) error
}
