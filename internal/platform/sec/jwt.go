// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces declared by the consumers.
//
// Tokens are stateless: validity is decided purely by the HMAC signature and
// the expiry claim. Nothing is persisted and nothing can be revoked.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Token Errors

// TokenError classifies why a token failed verification.
//
// Token errors never leave the process: the identity gate downgrades every
// one of them to an anonymous identity.
type TokenError struct {
	kind string
}

func (e *TokenError) Error() string { return "sec: token " + e.kind }

var (
	// ErrTokenMalformed is returned when the string cannot be parsed or decoded.
	ErrTokenMalformed = &TokenError{kind: "malformed"}

	// ErrTokenSignatureInvalid is returned when the signature does not verify
	// against the signing key, or the token uses another algorithm.
	ErrTokenSignatureInvalid = &TokenError{kind: "signature invalid"}

	// ErrTokenExpired is returned when now >= exp.
	ErrTokenExpired = &TokenError{kind: "expired"}

	// ErrTokenSubjectMismatch is returned when an expected subject was supplied
	// and differs from the embedded one.
	ErrTokenSubjectMismatch = &TokenError{kind: "subject mismatch"}
)

// minSecretLength is the HS256 minimum key size in bytes.
const minSecretLength = 32

// # Claims

// TokenClaims represents the payload embedded inside an access token.
//
// The subject is the account email. Role and account ID are deliberately not
// embedded: the identity gate reads them from the credential store so that a
// token never outlives the account it was issued for.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Extra holds optional caller-supplied claims.
	Extra map[string]any `json:"ext,omitempty"`
}

// # Token Service

// TokenService issues and verifies HS256-signed JWTs.
//
// # Concurrency
//
// The key, issuer and TTL are fixed at construction and never mutated, so a
// single instance is safe for concurrent use by every request goroutine.
type TokenService struct {
	signingKey []byte
	issuer     string
	timeToLive time.Duration
	now        func() time.Time
}

// Option customises a [TokenService].
type Option func(*TokenService)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(service *TokenService) {
		service.now = now
	}
}

// NewTokenService derives the signing key from secret and returns a ready service.
//
// # Parameters
//   - secret: shared HMAC secret, at least 32 bytes.
//   - timeToLive: lifetime of every issued token.
//   - issuer: value of the 'iss' claim.
func NewTokenService(secret string, timeToLive time.Duration, issuer string, options ...Option) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: jwt secret must be at least %d bytes, got %d", minSecretLength, len(secret))
	}

	if timeToLive <= 0 {
		return nil, fmt.Errorf("sec: jwt expiration must be positive, got %s", timeToLive)
	}

	service := &TokenService{
		signingKey: []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
		now:        time.Now,
	}

	for _, option := range options {
		option(service)
	}

	return service, nil
}

// TTL returns the configured token lifetime.
func (service *TokenService) TTL() time.Duration {
	return service.timeToLive
}

// Issue creates a signed token for subject.
//
// issuedAt is now and expiresAt is now + the configured TTL; the caller cannot
// influence the lifetime.
func (service *TokenService) Issue(subject string, extraClaims map[string]any) (string, error) {
	if subject == "" {
		return "", errors.New("sec: token subject must not be empty")
	}

	currentTime := service.now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		Extra: extraClaims,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.signingKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of tokenString and returns its claims.
//
// The 'iss' claim must equal the configured issuer. When expectedSubject is
// supplied, the embedded subject must equal it. The returned error is always one of the ErrToken* sentinels.
func (service *TokenService) Verify(tokenString string, expectedSubject ...string) (*TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(service.issuer),
		jwt.WithTimeFunc(service.now),
	)

	claims := &TokenClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return service.signingKey, nil
	})

	if err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	if len(expectedSubject) > 0 && claims.Subject != expectedSubject[0] {
		return nil, ErrTokenSubjectMismatch
	}

	return claims, nil
}

// classifyTokenError maps jwt parse failures onto the token error taxonomy.
//
// jwt/v5 verifies the signature before validating claims, so an altered token
// is reported as SignatureInvalid even if it is also expired.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrTokenMalformed
	default:
		return ErrTokenMalformed
	}
}
