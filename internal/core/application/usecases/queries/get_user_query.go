package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one user by id. The auth middleware runs it on every
// bearer request to confirm the token's subject still exists.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve a user.
// Validates that the identifier is valid.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserQueryIsNotConstructed if validation fails.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the user to retrieve.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

// UserResponse is the read model for a user. The password digest is never
// part of it.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
