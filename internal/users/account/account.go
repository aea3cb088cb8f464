// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles profile management for the authenticated caller.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Every operation re-reads the caller's account, so a principal
    deleted after the identity gate ran is answered with 401.
*/
package account

import (
	"context"

	"github.com/taibuivan/learnsnap/internal/users/auth"
)

// # Domain Views

// PublicProfile is what one member may see of another.
type PublicProfile struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Role         string `json:"role"`
}

// newPublicProfile strips private fields from user.
func newPublicProfile(user *auth.User) *PublicProfile {
	return &PublicProfile{
		ID:           user.ID,
		DisplayName:  user.DisplayName,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		Role:         string(user.Role),
	}
}

// # Repository Contracts

// AccountRepository is the subset of [auth.UserRepository] this package needs.
type AccountRepository interface {
	FindByID(context context.Context, id string) (*auth.User, error)
	Update(context context.Context, user *auth.User) error
	Delete(context context.Context, id string) error
}

// # Field Identifiers

const (
	FieldDisplayName  = "display_name"
	FieldBio          = "bio"
	FieldProfileImage = "profile_image"
)

// # Profile Constraints

const (
	MinDisplayNameLength  = 1
	MaxDisplayNameLength  = 50
	MaxBioLength          = 500
	MaxProfileImageLength = 500
)
