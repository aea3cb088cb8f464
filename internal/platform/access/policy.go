// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package access implements the route-level authorization policy.

A [Policy] is an ordered list of [Rule] values evaluated top-down against the
request method and path. The first rule whose pattern and method match decides
the outcome; later rules are never consulted. Narrow patterns must therefore be
listed before the broad catch-alls that would otherwise shadow them.

Patterns use the casbin KeyMatch2 syntax:

	/api/videos          exact path
	/api/videos/:id      one path segment
	/api/videos/*        anything below /api/videos/

# Concurrency

A Policy is built once at startup and never mutated, so it is safe for
unsynchronized concurrent reads.
*/
package access

import (
	"fmt"
	"path"
	"strings"

	"github.com/casbin/casbin/v2/util"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// # Requirements

type requirementKind int

const (
	kindPublic requirementKind = iota
	kindAuthenticated
	kindRole
)

// Requirement is what a matched rule demands of the request identity.
type Requirement struct {
	kind  requirementKind
	roles []sec.Role
}

// Public allows every caller, anonymous included.
func Public() Requirement {
	return Requirement{kind: kindPublic}
}

// AuthenticatedOnly allows any caller resolved to an account.
func AuthenticatedOnly() Requirement {
	return Requirement{kind: kindAuthenticated}
}

// RequiresRole allows authenticated callers whose role is one of roles.
func RequiresRole(roles ...sec.Role) Requirement {
	return Requirement{kind: kindRole, roles: roles}
}

// String renders the requirement for logs.
func (requirement Requirement) String() string {
	switch requirement.kind {
	case kindAuthenticated:
		return "authenticated"
	case kindRole:
		names := make([]string, len(requirement.roles))
		for index, role := range requirement.roles {
			names[index] = string(role)
		}
		return "role(" + strings.Join(names, "|") + ")"
	default:
		return "public"
	}
}

// check applies the requirement to identity.
func (requirement Requirement) check(identity sec.Identity) error {
	switch requirement.kind {
	case kindPublic:
		return nil
	case kindAuthenticated:
		if !identity.IsAuthenticated() {
			return apperr.Unauthenticated("Authentication required")
		}
		return nil
	default:
		if !identity.IsAuthenticated() {
			return apperr.Unauthenticated("Authentication required")
		}
		if !identity.HasRole(requirement.roles...) {
			return apperr.Forbidden("Insufficient permissions")
		}
		return nil
	}
}

// # Rules

// Rule binds a route pattern, and optionally a method set, to a requirement.
// An empty Methods slice matches every method.
type Rule struct {
	Pattern     string
	Methods     []string
	Requirement Requirement
}

// matches reports whether the rule applies to method and path.
func (rule Rule) matches(method, requestPath string) bool {
	if len(rule.Methods) > 0 {
		found := false
		for _, allowed := range rule.Methods {
			if allowed == method {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return util.KeyMatch2(requestPath, rule.Pattern)
}

// # Policy

// Policy is an immutable, ordered rule list.
type Policy struct {
	rules []Rule
}

// NewPolicy validates rules and freezes them in the given order.
func NewPolicy(rules ...Rule) (*Policy, error) {
	frozen := make([]Rule, len(rules))
	for index, rule := range rules {
		if !strings.HasPrefix(rule.Pattern, "/") {
			return nil, fmt.Errorf("access: rule %d: pattern %q must start with '/'", index, rule.Pattern)
		}

		if rule.Requirement.kind == kindRole && len(rule.Requirement.roles) == 0 {
			return nil, fmt.Errorf("access: rule %d: role requirement on %q lists no roles", index, rule.Pattern)
		}

		for _, role := range rule.Requirement.roles {
			if !role.IsValid() {
				return nil, fmt.Errorf("access: rule %d: unknown role %q", index, role)
			}
		}

		methods := make([]string, len(rule.Methods))
		for methodIndex, method := range rule.Methods {
			methods[methodIndex] = strings.ToUpper(method)
		}

		frozen[index] = Rule{Pattern: rule.Pattern, Methods: methods, Requirement: rule.Requirement}
	}

	return &Policy{rules: frozen}, nil
}

// MustPolicy is like [NewPolicy] but panics on an invalid rule set.
func MustPolicy(rules ...Rule) *Policy {
	policy, err := NewPolicy(rules...)
	if err != nil {
		panic(err)
	}
	return policy
}

// Match returns the first rule applying to method and path.
func (policy *Policy) Match(method, requestPath string) (Rule, bool) {
	normalized := normalizePath(requestPath)
	for _, rule := range policy.rules {
		if rule.matches(method, normalized) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Decide returns nil when identity may proceed, otherwise an
// UNAUTHENTICATED or FORBIDDEN [apperr.AppError].
//
// A request no rule matches is allowed.
func (policy *Policy) Decide(method, requestPath string, identity sec.Identity) error {
	rule, found := policy.Match(method, requestPath)
	if !found {
		// TODO: flip to deny-by-default once every route group has an explicit rule.
		return nil
	}
	return rule.Requirement.check(identity)
}

// normalizePath cleans requestPath the way the router does before routing,
// so "/api//videos/" and "/api/videos" are judged alike.
func normalizePath(requestPath string) string {
	if requestPath == "" {
		return "/"
	}
	if !strings.HasPrefix(requestPath, "/") {
		requestPath = "/" + requestPath
	}
	return path.Clean(requestPath)
}

// Rules returns a copy of the ordered rule list.
func (policy *Policy) Rules() []Rule {
	rules := make([]Rule, len(policy.rules))
	copy(rules, policy.rules)
	return rules
}
