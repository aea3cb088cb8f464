// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package categorytest provides an in-memory category repository.
package categorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/learnsnap/internal/core/category"
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
)

// MemoryRepository is a concurrency-safe [category.Repository].
type MemoryRepository struct {
	mutex      sync.RWMutex
	categories map[string]*category.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{categories: make(map[string]*category.Category)}
}

// Seed stores entry as-is.
func (repository *MemoryRepository) Seed(entry *category.Category) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	stored := *entry
	repository.categories[entry.ID] = &stored
}

func (repository *MemoryRepository) List(context.Context) ([]*category.Category, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	result := make([]*category.Category, 0, len(repository.categories))
	for _, entry := range repository.categories {
		copied := *entry
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*category.Category, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	entry, ok := repository.categories[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}
	copied := *entry
	return &copied, nil
}

func (repository *MemoryRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	return repository.taken(func(entry *category.Category) bool { return entry.Name == name }, ""), nil
}

func (repository *MemoryRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	return repository.taken(func(entry *category.Category) bool { return entry.Slug == slug }, ""), nil
}

func (repository *MemoryRepository) Create(_ context.Context, entry *category.Category) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if err := repository.checkUnique(entry); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry.CreatedAt, entry.UpdatedAt = now, now

	stored := *entry
	repository.categories[entry.ID] = &stored
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, entry *category.Category) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if _, ok := repository.categories[entry.ID]; !ok {
		return apperr.NotFound("Category")
	}
	if err := repository.checkUnique(entry); err != nil {
		return err
	}

	entry.UpdatedAt = time.Now().UTC()
	stored := *entry
	repository.categories[entry.ID] = &stored
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if _, ok := repository.categories[id]; !ok {
		return apperr.NotFound("Category")
	}
	delete(repository.categories, id)
	return nil
}

func (repository *MemoryRepository) checkUnique(entry *category.Category) error {
	if repository.taken(func(other *category.Category) bool { return other.Name == entry.Name }, entry.ID) {
		return apperr.Conflict("Category name is already in use")
	}
	if repository.taken(func(other *category.Category) bool { return other.Slug == entry.Slug }, entry.ID) {
		return apperr.Conflict("Category slug is already in use")
	}
	return nil
}

// taken reports whether any category other than exceptID matches.
func (repository *MemoryRepository) taken(match func(*category.Category) bool, exceptID string) bool {
	for id, entry := range repository.categories {
		if id != exceptID && match(entry) {
			return true
		}
	}
	return false
}
