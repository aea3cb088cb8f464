// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/constants"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
	"github.com/taibuivan/learnsnap/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer signs access tokens for a subject.
type TokenIssuer interface {
	Issue(subject string, extraClaims map[string]any) (string, error)
	TTL() time.Duration
}

// PasswordHasher hashes and verifies raw passwords.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Compare(plainTextPassword, existingHash string) bool
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
	passwordHasher PasswordHasher

	equalizerOnce sync.Once
	equalizerHash string
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokens TokenIssuer, hasher PasswordHasher) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    tokens,
		passwordHasher: hasher,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

/*
Register hashes the password and persists a new learner account.

Description: The email is checked before hashing so a duplicate registration
costs no bcrypt work. A concurrent registration that slips past the check is
caught by the store's unique constraint and reported the same way.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (the hash is never serialized)
  - err: DUPLICATE_IDENTIFIER or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	exists, err := service.userRepository.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_exists_check_failed: %w", err)
	}

	if exists {
		return nil, apperr.DuplicateIdentifier(input.Email)
	}

	hashedPassword, err := service.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Every self-registered account starts as a learner.
	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         sec.RoleLearner,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.HasCode(err, apperr.CodeDuplicateIdentifier) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the transport-ready outcome of a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

/*
Login validates user credentials and issues an access token.

Description: An unknown email and a wrong password fail with the same
INVALID_CREDENTIALS error, and both paths perform one bcrypt comparison.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Token and user view
  - err: INVALID_CREDENTIALS or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
		}

		service.passwordHasher.Compare(input.Password, service.timingEqualizer())
		return nil, apperr.InvalidCredentials()
	}

	if !service.passwordHasher.Compare(input.Password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	accessToken, err := service.tokenIssuer.Issue(user.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   int64(service.tokenIssuer.TTL().Seconds()),
		User:        user,
	}, nil
}

// timingEqualizer returns a real hash to compare against for unknown emails.
func (service *Service) timingEqualizer() string {
	service.equalizerOnce.Do(func() {
		hash, err := service.passwordHasher.Hash(timingEqualizerPassword)
		if err == nil {
			service.equalizerHash = hash
		}
	})
	return service.equalizerHash
}

// # Principal Resolution

/*
ResolvePrincipal maps a verified token subject onto the current account.

Description: Role and ID come from the store, not the token, so a role
change or account deletion takes effect on the next request.

Parameters:
  - context: context.Context
  - subject: string (the email embedded in the token)

Returns:
  - sec.Identity: Authenticated identity
  - error: apperr.NotFound when no account matches
*/
func (service *Service) ResolvePrincipal(context context.Context, subject string) (sec.Identity, error) {
	user, err := service.userRepository.FindByEmail(context, subject)
	if err != nil {
		return sec.Identity{}, err
	}
	return user.Identity(), nil
}
