// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"net/http"

	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// writeMethods are the methods that change catalog state.
var writeMethods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

// DefaultRules is the LearnSnap route table, most specific first.
//
// Catalog write rules sit above the public read rules for the same prefix;
// swapping them would make every write public. Write rules cover the whole
// prefix rather than single routes so a new write endpoint is guarded by default.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "/health", Requirement: Public()},
		{Pattern: "/ready", Requirement: Public()},

		{Pattern: "/api/auth/*", Requirement: Public()},

		{Pattern: "/api/users", Requirement: AuthenticatedOnly()},
		{Pattern: "/api/users/*", Requirement: AuthenticatedOnly()},

		{Pattern: "/api/categories", Methods: writeMethods, Requirement: RequiresRole(sec.RoleAdmin)},
		{Pattern: "/api/categories/*", Methods: writeMethods, Requirement: RequiresRole(sec.RoleAdmin)},
		{Pattern: "/api/categories", Requirement: Public()},
		{Pattern: "/api/categories/*", Requirement: Public()},

		{Pattern: "/api/videos/:id/view", Methods: []string{http.MethodPost}, Requirement: Public()},
		{Pattern: "/api/videos", Methods: writeMethods, Requirement: RequiresRole(sec.RoleInstructor, sec.RoleAdmin)},
		{Pattern: "/api/videos/*", Methods: writeMethods, Requirement: RequiresRole(sec.RoleInstructor, sec.RoleAdmin)},
		{Pattern: "/api/videos", Requirement: Public()},
		{Pattern: "/api/videos/*", Requirement: Public()},
	}
}
