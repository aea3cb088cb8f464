// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
	"github.com/taibuivan/learnsnap/internal/users/auth"
	"github.com/taibuivan/learnsnap/pkg/pointer"
)

// Service implements self-service profile use cases.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile re-resolves the caller's account from the store.

Parameters:
  - context: context.Context
  - identity: sec.Identity (published by the identity gate)

Returns:
  - *auth.User: The hydrated user profile
  - error: UNAUTHENTICATED if anonymous or the account no longer exists
*/
func (service *Service) GetProfile(context context.Context, identity sec.Identity) (*auth.User, error) {
	if !identity.IsAuthenticated() {
		return nil, apperr.Unauthenticated("Authentication required")
	}

	user, err := service.accountRepository.FindByID(context, identity.UserID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthenticated("Account no longer exists")
		}
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}

	return user, nil
}

// GetPublicProfile returns another member's public view.
func (service *Service) GetPublicProfile(context context.Context, userID string) (*PublicProfile, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("account_service_get_public_profile_failed: %w", err)
	}
	return newPublicProfile(user), nil
}

// UpdateProfileInput defines the mutable subset of user profile fields.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName  *string
	Bio          *string
	ProfileImage *string
}

/*
UpdateProfile applies a partial set of changes to the caller's profile.

Description: Email and role are not part of the input and can never change
through this path.

Parameters:
  - context: context.Context
  - identity: sec.Identity
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: UNAUTHENTICATED or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, identity sec.Identity, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.GetProfile(context, identity)
	if err != nil {
		return nil, err
	}

	user.DisplayName = pointer.Fallback(input.DisplayName, user.DisplayName)
	user.Bio = pointer.Fallback(input.Bio, user.Bio)
	user.ProfileImage = pointer.Fallback(input.ProfileImage, user.ProfileImage)

	if err := service.accountRepository.Update(context, user); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthenticated("Account no longer exists")
		}
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", user.ID))

	return user, nil
}

/*
DeleteAccount removes the caller's account.

Description: Tokens already issued for the account stay cryptographically
valid until they expire, but the identity gate no longer resolves them.

Parameters:
  - context: context.Context
  - identity: sec.Identity

Returns:
  - error: UNAUTHENTICATED or execution failures
*/
func (service *Service) DeleteAccount(context context.Context, identity sec.Identity) error {
	if !identity.IsAuthenticated() {
		return apperr.Unauthenticated("Authentication required")
	}

	if err := service.accountRepository.Delete(context, identity.UserID); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return apperr.Unauthenticated("Account no longer exists")
		}
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	service.logger.Warn("user_account_deleted", slog.String("user_id", identity.UserID))

	return nil
}
