package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order owned by one user.
type ListOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list a user's orders.
// Validates that the user identifier is valid.
func NewListOrdersQuery(userID kernel.UUID) (ListOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the requesting user.
func (q ListOrdersQuery) UserID() kernel.UUID {
	return q.userID
}
