package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Nil fields are left untouched; a command with no fields at all is still
// valid and only refreshes the order's modification timestamp. Field values
// are validated by the order aggregate when applied, status changes must
// follow the order lifecycle graph.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	userID   kernel.UUID
	itemName *string
	quantity *int
	price    *float64
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order on behalf of the
// given user. Validates both identifiers and, when a status is supplied, that
// it names a known status value.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	itemName *string,
	quantity *int,
	price *float64,
	status *order.Status,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		itemName: itemName,
		quantity: quantity,
		price:    price,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUserID(userID),
		command.checkStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the requesting user.
func (c UpdateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ItemName returns the new item name, or nil when unchanged.
func (c UpdateOrderCommand) ItemName() *string {
	return c.itemName
}

// Quantity returns the new quantity, or nil when unchanged.
func (c UpdateOrderCommand) Quantity() *int {
	return c.quantity
}

// Price returns the new unit price, or nil when unchanged.
func (c UpdateOrderCommand) Price() *float64 {
	return c.price
}

// Status returns the requested status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

func (c *UpdateOrderCommand) checkStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	return status.Validate()
}
