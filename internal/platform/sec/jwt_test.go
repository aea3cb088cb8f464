// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef-test"

// fakeClock is a settable time source shared by issue and verify.
type fakeClock struct {
	current time.Time
}

func (clock *fakeClock) Now() time.Time { return clock.current }

func newService(t *testing.T, ttl time.Duration, clock *fakeClock) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, ttl, "learnsnap.test", sec.WithClock(clock.Now))
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that verify(issue(subject)) returns the subject.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		ttl     time.Duration
	}{
		{"short_ttl", "a@x.com", time.Second},
		{"day_ttl", "learner@learnsnap.com", 24 * time.Hour},
		{"unicode_subject", "학생@example.com", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
			service := newService(t, tt.ttl, clock)

			token, err := service.Issue(tt.subject, nil)
			require.NoError(t, err)

			claims, err := service.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.subject, claims.Subject)
			assert.Equal(t, clock.current.Add(tt.ttl).Unix(), claims.ExpiresAt.Unix())
			assert.Equal(t, clock.current.Unix(), claims.IssuedAt.Unix())
		})
	}
}

/*
TestTokenService_ExtraClaims checks that optional claims survive the round trip.
*/
func TestTokenService_ExtraClaims(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	token, err := service.Issue("a@x.com", map[string]any{"purpose": "test"})
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "test", claims.Extra["purpose"])
}

/*
TestTokenService_Expired verifies that a token checked at or after its expiry fails.
*/
func TestTokenService_Expired(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	service := newService(t, time.Minute, clock)

	token, err := service.Issue("a@x.com", nil)
	require.NoError(t, err)

	// 1. Exactly at expiresAt the token is already expired
	clock.current = clock.current.Add(time.Minute)
	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)

	// 2. Well past expiry
	clock.current = clock.current.Add(time.Hour)
	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_TamperedSignature verifies that altered signatures never verify.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	token, err := service.Issue("a@x.com", nil)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swap the first signature character for another valid base64url character.
	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(signature)

	_, err = service.Verify(tampered)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_TamperedPayload verifies that a forged payload is rejected.
*/
func TestTokenService_TamperedPayload(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	victim, err := service.Issue("victim@x.com", nil)
	require.NoError(t, err)
	attacker, err := service.Issue("attacker@x.com", nil)
	require.NoError(t, err)

	victimParts := strings.Split(victim, ".")
	attackerParts := strings.Split(attacker, ".")

	// Attacker payload glued onto the victim signature.
	forged := victimParts[0] + "." + attackerParts[1] + "." + victimParts[2]

	_, err = service.Verify(forged)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_ForeignKey verifies that a token signed with another secret fails.
*/
func TestTokenService_ForeignKey(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	other, err := sec.NewTokenService("another-secret-another-secret-another", time.Hour, "learnsnap.test", sec.WithClock(clock.Now))
	require.NoError(t, err)

	token, err := other.Issue("a@x.com", nil)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_ForeignIssuer rejects a token signed with the shared secret
under another issuer.
*/
func TestTokenService_ForeignIssuer(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	other, err := sec.NewTokenService(testSecret, time.Hour, "billing.internal", sec.WithClock(clock.Now))
	require.NoError(t, err)

	token, err := other.Issue("a@x.com", nil)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)

	// Same issuer still verifies
	own, err := service.Issue("a@x.com", nil)
	require.NoError(t, err)
	claims, err := service.Verify(own)
	require.NoError(t, err)
	assert.Equal(t, "learnsnap.test", claims.Issuer)
}

/*
TestTokenService_AlgorithmConfusion rejects unsigned and non-HS256 tokens.
*/
func TestTokenService_AlgorithmConfusion(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Verify(unsigned)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.Verify(hs512)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_Malformed covers strings that are not tokens at all.
*/
func TestTokenService_Malformed(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two_segments", "abc.def"},
		{"bad_base64", "%%%.%%%.%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenService_SubjectMismatch verifies the optional expected-subject check.
*/
func TestTokenService_SubjectMismatch(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newService(t, time.Hour, clock)

	token, err := service.Issue("a@x.com", nil)
	require.NoError(t, err)

	_, err = service.Verify(token, "b@x.com")
	assert.ErrorIs(t, err, sec.ErrTokenSubjectMismatch)

	claims, err := service.Verify(token, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
}

/*
TestNewTokenService_Validation rejects weak secrets and non-positive lifetimes.
*/
func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("short", time.Hour, "iss")
	assert.Error(t, err)

	_, err = sec.NewTokenService(testSecret, 0, "iss")
	assert.Error(t, err)

	service, err := sec.NewTokenService(testSecret, time.Hour, "iss")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, service.TTL())

	_, err = service.Issue("", nil)
	assert.Error(t, err)
}
