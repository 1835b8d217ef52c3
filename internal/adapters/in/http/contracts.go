package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// RegisterRequest is the POST /auth/register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// UpdateOrderRequest is the PATCH /orders/:id payload. Nil fields were absent
// from the request body and stay untouched.
type UpdateOrderRequest struct {
	ItemName *string  `json:"item_name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Status   *string  `json:"status"`
}

// UserResponse is the public representation of a user account. It never
// carries the password digest.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the POST /auth/login success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// OrderResponse is the public representation of an order.
type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the GET / payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// orderFromAggregate maps a domain order to its public representation.
func orderFromAggregate(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:        aggregate.ID().String(),
		UserID:    aggregate.UserID().String(),
		ItemName:  aggregate.ItemName(),
		Quantity:  aggregate.Quantity(),
		Price:     aggregate.Price(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// orderFromReadModel maps a query read model to the public representation.
func orderFromReadModel(resp queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:        resp.ID.String(),
		UserID:    resp.UserID.String(),
		ItemName:  resp.ItemName,
		Quantity:  resp.Quantity,
		Price:     resp.Price,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}
