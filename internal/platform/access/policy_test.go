// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/platform/access"
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

var (
	anonymous  = sec.Anonymous()
	learner    = sec.Authenticated("u-learner", "learner@x.com", sec.RoleLearner)
	instructor = sec.Authenticated("u-instructor", "instructor@x.com", sec.RoleInstructor)
	admin      = sec.Authenticated("u-admin", "admin@x.com", sec.RoleAdmin)
)

// outcome flattens a decision into "", UNAUTHENTICATED or FORBIDDEN.
func outcome(err error) string {
	if err == nil {
		return ""
	}
	return apperr.As(err).Code
}

/*
TestRequirements covers the three requirement kinds against every identity class.
*/
func TestRequirements(t *testing.T) {
	policy := access.MustPolicy(
		access.Rule{Pattern: "/public", Requirement: access.Public()},
		access.Rule{Pattern: "/members", Requirement: access.AuthenticatedOnly()},
		access.Rule{Pattern: "/admin", Requirement: access.RequiresRole(sec.RoleAdmin)},
	)

	tests := []struct {
		name     string
		path     string
		identity sec.Identity
		want     string
	}{
		{"public_anonymous", "/public", anonymous, ""},
		{"public_learner", "/public", learner, ""},
		{"members_anonymous", "/members", anonymous, apperr.CodeUnauthenticated},
		{"members_learner", "/members", learner, ""},
		{"admin_anonymous", "/admin", anonymous, apperr.CodeUnauthenticated},
		{"admin_learner", "/admin", learner, apperr.CodeForbidden},
		{"admin_instructor", "/admin", instructor, apperr.CodeForbidden},
		{"admin_admin", "/admin", admin, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(policy.Decide(http.MethodGet, tt.path, tt.identity)))
		})
	}
}

/*
TestPolicy_FirstMatchWins documents that rule order decides the outcome.
*/
func TestPolicy_FirstMatchWins(t *testing.T) {
	narrowFirst := access.MustPolicy(
		access.Rule{Pattern: "/api/reports/:id", Requirement: access.RequiresRole(sec.RoleAdmin)},
		access.Rule{Pattern: "/api/reports/*", Requirement: access.Public()},
	)
	broadFirst := access.MustPolicy(
		access.Rule{Pattern: "/api/reports/*", Requirement: access.Public()},
		access.Rule{Pattern: "/api/reports/:id", Requirement: access.RequiresRole(sec.RoleAdmin)},
	)

	assert.Equal(t, apperr.CodeUnauthenticated, outcome(narrowFirst.Decide(http.MethodGet, "/api/reports/7", anonymous)))
	// The broad catch-all shadows the admin rule entirely.
	assert.Equal(t, "", outcome(broadFirst.Decide(http.MethodGet, "/api/reports/7", anonymous)))
}

/*
TestPolicy_UnmatchedIsPermissive pins the current permissive default.
*/
func TestPolicy_UnmatchedIsPermissive(t *testing.T) {
	policy := access.MustPolicy(access.Rule{Pattern: "/api/users/*", Requirement: access.AuthenticatedOnly()})

	_, found := policy.Match(http.MethodGet, "/api/unlisted")
	assert.False(t, found)
	assert.NoError(t, policy.Decide(http.MethodDelete, "/api/unlisted", anonymous))
}

/*
TestPolicy_MethodFilter verifies that method-scoped rules fall through for other methods.
*/
func TestPolicy_MethodFilter(t *testing.T) {
	policy := access.MustPolicy(
		access.Rule{Pattern: "/api/videos", Methods: []string{"post"}, Requirement: access.RequiresRole(sec.RoleInstructor)},
		access.Rule{Pattern: "/api/videos", Requirement: access.Public()},
	)

	assert.Equal(t, apperr.CodeForbidden, outcome(policy.Decide(http.MethodPost, "/api/videos", learner)))
	assert.Equal(t, "", outcome(policy.Decide(http.MethodPost, "/api/videos", instructor)))
	assert.Equal(t, "", outcome(policy.Decide(http.MethodGet, "/api/videos", anonymous)))
}

/*
TestNewPolicy_Validation rejects rule sets that cannot be evaluated.
*/
func TestNewPolicy_Validation(t *testing.T) {
	_, err := access.NewPolicy(access.Rule{Pattern: "api/no-slash", Requirement: access.Public()})
	assert.Error(t, err)

	_, err = access.NewPolicy(access.Rule{Pattern: "/x", Requirement: access.RequiresRole()})
	assert.Error(t, err)

	_, err = access.NewPolicy(access.Rule{Pattern: "/x", Requirement: access.RequiresRole("moderator")})
	assert.Error(t, err)

	assert.Panics(t, func() {
		access.MustPolicy(access.Rule{Pattern: "", Requirement: access.Public()})
	})
}

/*
TestDefaultRules checks the LearnSnap route table end to end.
*/
func TestDefaultRules(t *testing.T) {
	policy, err := access.NewPolicy(access.DefaultRules()...)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		identity sec.Identity
		want     string
	}{
		{"health", http.MethodGet, "/health", anonymous, ""},
		{"signup", http.MethodPost, "/api/auth/signup", anonymous, ""},
		{"login", http.MethodPost, "/api/auth/login", anonymous, ""},

		{"profile_anonymous", http.MethodGet, "/api/users/me", anonymous, apperr.CodeUnauthenticated},
		{"profile_learner", http.MethodGet, "/api/users/me", learner, ""},

		{"category_list", http.MethodGet, "/api/categories", anonymous, ""},
		{"category_get", http.MethodGet, "/api/categories/abc", anonymous, ""},
		{"category_create_anonymous", http.MethodPost, "/api/categories", anonymous, apperr.CodeUnauthenticated},
		{"category_create_instructor", http.MethodPost, "/api/categories", instructor, apperr.CodeForbidden},
		{"category_create_admin", http.MethodPost, "/api/categories", admin, ""},
		{"category_update_learner", http.MethodPut, "/api/categories/abc", learner, apperr.CodeForbidden},
		{"category_delete_admin", http.MethodDelete, "/api/categories/abc", admin, ""},

		{"video_list", http.MethodGet, "/api/videos", anonymous, ""},
		{"video_view", http.MethodPost, "/api/videos/abc/view", anonymous, ""},
		{"video_create_learner", http.MethodPost, "/api/videos", learner, apperr.CodeForbidden},
		{"video_create_instructor", http.MethodPost, "/api/videos", instructor, ""},
		{"video_update_anonymous", http.MethodPut, "/api/videos/abc", anonymous, apperr.CodeUnauthenticated},
		{"video_delete_admin", http.MethodDelete, "/api/videos/abc", admin, ""},
		{"video_patch_learner", http.MethodPatch, "/api/videos/abc", learner, apperr.CodeForbidden},
		{"video_nested_write_learner", http.MethodPost, "/api/videos/abc/transcripts", learner, apperr.CodeForbidden},

		{"users_root_anonymous", http.MethodGet, "/api/users", anonymous, apperr.CodeUnauthenticated},
		{"double_slash_write", http.MethodPost, "/api//categories", instructor, apperr.CodeForbidden},
		{"trailing_slash_write", http.MethodPost, "/api/categories/", anonymous, apperr.CodeUnauthenticated},
		{"dot_segment_write", http.MethodDelete, "/api/videos/x/../abc", learner, apperr.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(policy.Decide(tt.method, tt.path, tt.identity)))
		})
	}
}

/*
TestCheckOwnership verifies the owner-or-admin rule.
*/
func TestCheckOwnership(t *testing.T) {
	assert.NoError(t, access.CheckOwnership(instructor, "u-instructor"))
	assert.NoError(t, access.CheckOwnership(admin, "u-instructor"))
	assert.Equal(t, apperr.CodeForbidden, outcome(access.CheckOwnership(learner, "u-instructor")))
	assert.Equal(t, apperr.CodeForbidden, outcome(access.CheckOwnership(instructor, "")))
	assert.Equal(t, apperr.CodeUnauthenticated, outcome(access.CheckOwnership(anonymous, "u-instructor")))
}
