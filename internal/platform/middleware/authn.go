// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/constants"
	"github.com/taibuivan/learnsnap/internal/platform/ctxutil"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// TokenVerifier checks a bearer token and returns its claims.
//
// Defining TokenVerifier here decouples the middleware from the token service
// implementation so tests can inject stubs.
type TokenVerifier interface {
	Verify(tokenString string, expectedSubject ...string) (*sec.TokenClaims, error)
}

// PrincipalResolver maps a verified token subject onto a current account.
//
// It must return an error when no account exists for subject.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, subject string) (sec.Identity, error)
}

// Authenticate is the identity gate. It resolves the bearer token, if any,
// into a [sec.Identity] and publishes it into the request context.
//
// # Flow
//  1. If an identity is already published, pass through untouched.
//  2. Missing header or non-Bearer scheme: publish anonymous.
//  3. Verify the token; any token error publishes anonymous.
//  4. Resolve the subject against the credential store; an unknown subject
//     or a lookup failure publishes anonymous.
//  5. Otherwise publish the authenticated identity with the stored role.
//
// The gate never writes a response. Rejection is left to [Authorize] and the
// handlers, so every request reaches the next handler.
func Authenticate(verifier TokenVerifier, resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			if _, published := ctxutil.LookupIdentity(ctx); published {
				next.ServeHTTP(writer, request)
				return
			}

			identity := resolveIdentity(ctx, request.Header.Get(constants.HeaderAuthorization), verifier, resolver)
			if sink, ok := writer.(identitySink); ok {
				sink.recordIdentity(identity)
			}
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithIdentity(ctx, identity)))
		})
	}
}

// resolveIdentity turns an Authorization header value into an identity.
func resolveIdentity(ctx context.Context, header string, verifier TokenVerifier, resolver PrincipalResolver) sec.Identity {
	tokenString, ok := strings.CutPrefix(header, constants.BearerScheme)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return sec.Anonymous()
	}

	logger := ctxutil.GetLogger(ctx)

	claims, err := verifier.Verify(strings.TrimSpace(tokenString))
	if err != nil {
		logger.DebugContext(ctx, "auth_token_rejected", slog.String("reason", err.Error()))
		return sec.Anonymous()
	}

	identity, err := resolver.ResolvePrincipal(ctx, claims.Subject)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			logger.DebugContext(ctx, "auth_subject_unknown")
		} else {
			logger.WarnContext(ctx, "auth_subject_lookup_failed", slog.Any("error", err))
		}
		return sec.Anonymous()
	}

	if !identity.IsAuthenticated() {
		return sec.Anonymous()
	}

	return identity
}
