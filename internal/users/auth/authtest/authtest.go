// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authtest provides in-memory doubles for the auth contracts.
package authtest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/users/auth"
)

// # User Repository

// MemoryUserRepository is a concurrency-safe [auth.UserRepository] backed by maps.
type MemoryUserRepository struct {
	mutex   sync.RWMutex
	byID    map[string]*auth.User
	byEmail map[string]string

	// FailWith, when set, is returned by every call.
	FailWith error
}

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]string),
	}
}

// Seed inserts user directly, bypassing the duplicate check.
func (repository *MemoryUserRepository) Seed(user *auth.User) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	stored := *user
	repository.byID[user.ID] = &stored
	repository.byEmail[user.Email] = user.ID
}

// Count returns the number of stored accounts.
func (repository *MemoryUserRepository) Count() int {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()
	return len(repository.byID)
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if repository.FailWith != nil {
		return nil, repository.FailWith
	}

	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	user, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repository *MemoryUserRepository) FindByEmail(context context.Context, email string) (*auth.User, error) {
	if repository.FailWith != nil {
		return nil, repository.FailWith
	}

	repository.mutex.RLock()
	id, ok := repository.byEmail[email]
	repository.mutex.RUnlock()

	if !ok {
		return nil, apperr.NotFound("User")
	}
	return repository.FindByID(context, id)
}

func (repository *MemoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if repository.FailWith != nil {
		return false, repository.FailWith
	}

	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	_, ok := repository.byEmail[email]
	return ok, nil
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *auth.User) error {
	if repository.FailWith != nil {
		return repository.FailWith
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if _, taken := repository.byEmail[user.Email]; taken {
		return apperr.DuplicateIdentifier(user.Email)
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	repository.byID[user.ID] = &stored
	repository.byEmail[user.Email] = user.ID
	return nil
}

func (repository *MemoryUserRepository) Update(_ context.Context, user *auth.User) error {
	if repository.FailWith != nil {
		return repository.FailWith
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	stored, ok := repository.byID[user.ID]
	if !ok {
		return apperr.NotFound("User")
	}

	stored.DisplayName = user.DisplayName
	stored.Bio = user.Bio
	stored.ProfileImage = user.ProfileImage
	stored.UpdatedAt = time.Now().UTC()
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (repository *MemoryUserRepository) Delete(_ context.Context, id string) error {
	if repository.FailWith != nil {
		return repository.FailWith
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	user, ok := repository.byID[id]
	if !ok {
		return apperr.NotFound("User")
	}
	delete(repository.byEmail, user.Email)
	delete(repository.byID, id)
	return nil
}

// # Password Hasher

// CountingHasher is a cheap reversible hasher that records its work.
type CountingHasher struct {
	hashes   atomic.Int64
	compares atomic.Int64
}

func (hasher *CountingHasher) Hash(plainTextPassword string) (string, error) {
	hasher.hashes.Add(1)
	return "hashed:" + plainTextPassword, nil
}

func (hasher *CountingHasher) Compare(plainTextPassword, existingHash string) bool {
	hasher.compares.Add(1)
	return existingHash == "hashed:"+plainTextPassword
}

// Hashes returns how many times Hash was called.
func (hasher *CountingHasher) Hashes() int64 { return hasher.hashes.Load() }

// Compares returns how many times Compare was called.
func (hasher *CountingHasher) Compares() int64 { return hasher.compares.Load() }
