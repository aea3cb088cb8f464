// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// Roles are flat: there is no hierarchy between them. Access rules list every
// role they admit explicitly.
type Role string

const (
	// Unrestricted platform access (category management, any video).
	RoleAdmin Role = "admin"

	// Can publish videos and manage the ones they own.
	RoleInstructor Role = "instructor"

	// Default role for newly registered accounts.
	RoleLearner Role = "learner"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleLearner:
		return true
	default:
		return false
	}
}

// In reports whether r is a member of the given set.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
