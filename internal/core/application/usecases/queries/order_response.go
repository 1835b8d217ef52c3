// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database, so listing orders never pays the cost of aggregate hydration.
package queries

import (
	"database/sql"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderResponse is the read model for a single order. The status is carried
// as its wire string so HTTP adapters can serialize it without touching the
// domain enum.
type OrderResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	ItemName  string
	Quantity  int
	Price     float64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// scanOrderResponse reads one order row in the column order used by every
// order query: id, user_id, item_name, quantity, price, status, created_at,
// updated_at.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, userID uuid.UUID

	if err := rows.Scan(
		&id,
		&userID,
		&resp.ItemName,
		&resp.Quantity,
		&resp.Price,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.UserID = ownerID

	return resp, nil
}
