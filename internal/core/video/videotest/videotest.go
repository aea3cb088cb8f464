// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package videotest provides in-memory doubles for the video contracts.
package videotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/learnsnap/internal/core/video"
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/pkg/pagination"
)

// # Repository

// MemoryRepository is a concurrency-safe [video.Repository].
type MemoryRepository struct {
	mutex  sync.RWMutex
	videos map[string]*video.Video
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{videos: make(map[string]*video.Video)}
}

// Seed stores entry as-is.
func (repository *MemoryRepository) Seed(entry *video.Video) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	stored := *entry
	repository.videos[entry.ID] = &stored
}

func (repository *MemoryRepository) List(_ context.Context, filter video.Filter, page pagination.Params) ([]*video.Video, int, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	matched := make([]*video.Video, 0)
	for _, entry := range repository.videos {
		if filter.CategoryID != "" && entry.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Difficulty != "" && entry.Difficulty != filter.Difficulty {
			continue
		}
		copied := *entry
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := min(page.Offset(), total)
	end := min(start+page.Limit, total)

	return matched[start:end], total, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*video.Video, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	entry, ok := repository.videos[id]
	if !ok {
		return nil, apperr.NotFound("Video")
	}
	copied := *entry
	return &copied, nil
}

func (repository *MemoryRepository) Create(_ context.Context, entry *video.Video) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	now := time.Now().UTC()
	entry.CreatedAt, entry.UpdatedAt = now, now

	stored := *entry
	repository.videos[entry.ID] = &stored
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, entry *video.Video) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	stored, ok := repository.videos[entry.ID]
	if !ok {
		return apperr.NotFound("Video")
	}

	entry.UpdatedAt = time.Now().UTC()
	entry.VideoURL = stored.VideoURL
	entry.InstructorID = stored.InstructorID

	copied := *entry
	repository.videos[entry.ID] = &copied
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if _, ok := repository.videos[id]; !ok {
		return apperr.NotFound("Video")
	}
	delete(repository.videos, id)
	return nil
}

// # View Counter

// MemoryViewCounter is a concurrency-safe [video.ViewCounter].
type MemoryViewCounter struct {
	mutex  sync.Mutex
	counts map[string]int64

	// FailWith, when set, is returned by every call.
	FailWith error
}

func NewMemoryViewCounter() *MemoryViewCounter {
	return &MemoryViewCounter{counts: make(map[string]int64)}
}

func (counter *MemoryViewCounter) Increment(_ context.Context, videoID string) (int64, error) {
	if counter.FailWith != nil {
		return 0, counter.FailWith
	}

	counter.mutex.Lock()
	defer counter.mutex.Unlock()

	counter.counts[videoID]++
	return counter.counts[videoID], nil
}

func (counter *MemoryViewCounter) Counts(_ context.Context, videoIDs []string) (map[string]int64, error) {
	if counter.FailWith != nil {
		return nil, counter.FailWith
	}

	counter.mutex.Lock()
	defer counter.mutex.Unlock()

	result := make(map[string]int64, len(videoIDs))
	for _, videoID := range videoIDs {
		if total, ok := counter.counts[videoID]; ok {
			result[videoID] = total
		}
	}
	return result, nil
}

func (counter *MemoryViewCounter) Reset(_ context.Context, videoID string) error {
	if counter.FailWith != nil {
		return counter.FailWith
	}

	counter.mutex.Lock()
	defer counter.mutex.Unlock()

	delete(counter.counts, videoID)
	return nil
}
