package auth

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 15 * time.Minute

var errEmptySigningKey = errors.New("jwt signing key must not be empty")

// JWTTokenService implements TokenService with HS256-signed JWTs. The subject
// claim carries the user id; expiry comes from the injected clock plus
// TokenTTL.
type JWTTokenService struct {
	signingKey []byte
	clock      func() time.Time
}

// NewJWTTokenService creates a token service signing with the given key.
// Fails on an empty key so a missing secret is caught at startup, not on the
// first login.
func NewJWTTokenService(signingKey string, clock func() time.Time) (JWTTokenService, error) {
	if signingKey == "" {
		return JWTTokenService{}, errEmptySigningKey
	}

	return JWTTokenService{
		signingKey: []byte(signingKey),
		clock:      clock,
	}, nil
}

// Issue creates a signed token whose subject is the given user id.
func (s JWTTokenService) Issue(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := s.clock()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Verify checks signature and expiry and returns the subject user id.
// Every failure mode collapses into the same unauthenticated error; the
// underlying cause stays attached for logging only.
func (s JWTTokenService) Verify(token string) (kernel.UUID, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return kernel.UUID{}, errs.NewUnauthenticatedError()
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	return userID, nil
}
