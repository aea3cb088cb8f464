// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements credential management: registration, login and the
resolution of a verified token subject back into an account.

# Architecture

The [User] entity defined here is the principal of the platform. Other
packages (account, video) read it through the [UserRepository] contract and
never touch the password hash.
*/
package auth

import (
	"time"

	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the LearnSnap platform.
//
// Email is the login identifier and the token subject. It is unique and
// compared case-sensitively as stored.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string    `json:"display_name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the request identity for this account.
func (user *User) Identity() sec.Identity {
	return sec.Authenticated(user.ID, user.Email, user.Role)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldDisplayName   = "display_name"
	FieldAccessToken   = "access_token"
	FieldTokenType     = "token_type"
	FieldExpiresIn     = "expires_in"
	FieldUser          = "user"
	FieldAuthenticated = "authenticated"
)
