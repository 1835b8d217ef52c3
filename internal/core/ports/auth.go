package ports

import (
	"orders/internal/core/domain/model/kernel"
)

// PasswordHasher is the opaque credential-hashing capability. The domain only
// ever sees digests; raw passwords stay at the application boundary.
type PasswordHasher interface {
	// Hash derives a digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the digest.
	Verify(password, digest string) bool
}

// TokenService issues and verifies signed, time-limited bearer tokens carrying
// a user identity claim.
type TokenService interface {
	// Issue creates a signed token whose subject is the given user id.
	Issue(userID kernel.UUID) (string, error)

	// Verify checks signature and expiry and returns the subject user id.
	// Any failure (malformed, expired, bad signature, bad subject) yields an
	// unauthenticated error.
	Verify(token string) (kernel.UUID, error)
}
