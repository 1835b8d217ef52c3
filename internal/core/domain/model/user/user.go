package user

import (
	"errors"
	"time"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

const (
	// MinNameLength is the minimum length of a user's display name.
	MinNameLength = 1
	// MaxNameLength is the maximum length of a user's display name.
	MaxNameLength = 100
)

// User represents a registered account in the system. It is the aggregate root
// that owns orders: every order carries exactly one owning user id for its
// entire lifetime.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Name length must be within [MinNameLength, MaxNameLength]
//   - Email must be a valid address; uniqueness is enforced by the record store
//   - Password digest is opaque to the domain and must be non-empty
//   - Immutable once created (no account-management flows exist in this system)
type User struct {
	id           kernel.UUID
	name         string
	email        kernel.Email
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a User with validation. The password digest must already be
// produced by the hashing port; raw passwords never reach the domain.
func NewUser(
	id kernel.UUID,
	name string,
	email kernel.Email,
	passwordHash string,
	now time.Time,
) (*User, error) {
	u := &User{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence. All fields are validated
// the same way as in NewUser so corrupt rows never become live aggregates.
func RestoreUser(
	id kernel.UUID,
	name string,
	email kernel.Email,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash, createdAt)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through a factory
// function. Call it when reconstructing users from external input.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() kernel.Email {
	return u.email
}

// PasswordHash returns the stored password digest. The domain treats it as
// opaque; only the hashing port can verify a password against it.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	// Limit is in characters, not bytes, so multibyte names get the full range.
	length := utf8.RuneCountInString(name)
	if length < MinNameLength || length > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", length, MinNameLength, MaxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
