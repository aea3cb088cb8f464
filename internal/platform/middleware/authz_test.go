// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/platform/access"
	"github.com/taibuivan/learnsnap/internal/platform/ctxutil"
	"github.com/taibuivan/learnsnap/internal/platform/middleware"
	"github.com/taibuivan/learnsnap/internal/platform/respond"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// withIdentity publishes identity the way the gate would.
func withIdentity(identity sec.Identity, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		next.ServeHTTP(writer, request.WithContext(ctxutil.WithIdentity(request.Context(), identity)))
	})
}

/*
TestAuthorize verifies status codes and error codes for each policy outcome.
*/
func TestAuthorize(t *testing.T) {
	policy := access.MustPolicy(access.DefaultRules()...)
	ok := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		method   string
		path     string
		identity sec.Identity
		status   int
		code     string
	}{
		{"public_read", http.MethodGet, "/api/videos", sec.Anonymous(), http.StatusOK, ""},
		{"anonymous_profile", http.MethodGet, "/api/users/me", sec.Anonymous(), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"learner_profile", http.MethodGet, "/api/users/me", sec.Authenticated("u", "l@x.com", sec.RoleLearner), http.StatusOK, ""},
		{"learner_admin_route", http.MethodPost, "/api/categories", sec.Authenticated("u", "l@x.com", sec.RoleLearner), http.StatusForbidden, "FORBIDDEN"},
		{"admin_admin_route", http.MethodPost, "/api/categories", sec.Authenticated("u", "a@x.com", sec.RoleAdmin), http.StatusOK, ""},
		{"encoded_slash_profile", http.MethodGet, "/api/users/..%2F..%2Fhealth", sec.Anonymous(), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"encoded_slash_admin_write", http.MethodPut, "/api/categories/..%2F..%2Fhealth", sec.Anonymous(), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"encoded_slash_learner_write", http.MethodDelete, "/api/videos/..%2F..%2Fhealth", sec.Authenticated("u", "l@x.com", sec.RoleLearner), http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := withIdentity(tt.identity, middleware.Authorize(policy)(ok))
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, recorder.Code)
			if tt.code != "" {
				var envelope respond.ErrorEnvelope
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
				assert.Equal(t, tt.code, envelope.Code)
			}
		})
	}
}

/*
TestAuthorize_WithoutGate treats a request with no published identity as anonymous.
*/
func TestAuthorize_WithoutGate(t *testing.T) {
	policy := access.MustPolicy(access.Rule{Pattern: "/private", Requirement: access.AuthenticatedOnly()})
	handler := middleware.Authorize(policy)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
