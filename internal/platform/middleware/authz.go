// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/learnsnap/internal/platform/ctxutil"
	"github.com/taibuivan/learnsnap/internal/platform/respond"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// PolicyDecider decides whether an identity may call method on path.
//
// [access.Policy] is the production implementation.
type PolicyDecider interface {
	Decide(method, path string, identity sec.Identity) error
}

// Authorize enforces the route policy against the identity published by [Authenticate].
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. A request without a
// published identity is evaluated as anonymous.
//
// # Flow
//  1. Read the request identity from context.
//  2. Ask the policy for a decision on method and the routed path.
//  3. On denial, write the 401 or 403 error and stop the chain.
func Authorize(policy PolicyDecider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			if err := policy.Decide(request.Method, routedPath(request), identity); err != nil {
				ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "access_denied",
					slog.String("user_id", identity.UserID),
					slog.String("role", string(identity.Role)),
				)
				respond.Error(writer, request, err)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// routedPath returns the path in the form chi dispatches on: the raw, still
// escaped path when the URL carries one, the decoded path otherwise.
//
// Judging the decoded form would let "%2F.." segments clean away to a public
// path while the router still serves the protected route.
func routedPath(request *http.Request) string {
	if request.URL.RawPath != "" {
		return request.URL.RawPath
	}
	return request.URL.Path
}
