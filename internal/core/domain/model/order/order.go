package order

import (
	"errors"
	"time"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const (
	// MinItemNameLength is the minimum length of an order's item name.
	MinItemNameLength = 1
	// MaxItemNameLength is the maximum length of an order's item name.
	MaxItemNameLength = 200
)

// Order represents a purchase order in the system. It is the aggregate root
// that manages the order lifecycle from creation through processing to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid owning user identifier
//   - The owning user never changes after creation
//   - Item name length must be within [MinItemNameLength, MaxItemNameLength]
//   - Quantity and price must be positive
//   - Status transitions follow the edges defined by Status
//   - UpdatedAt is refreshed on every mutation, including status-only changes
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the owning user's identifier, immutable after creation
	userID kernel.UUID

	// itemName describes what was ordered
	itemName string

	// quantity is the number of items (must be positive)
	quantity int

	// price is the unit price (must be positive)
	price float64

	// status is the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation. This is the
// only way to create a valid new Order; createdAt and updatedAt are both set
// to now.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	itemName string,
	quantity int,
	price float64,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemName(itemName),
		o.setQuantity(quantity),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and timestamps. All fields are validated so corrupt rows never become
// live aggregates.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	itemName string,
	quantity int,
	price float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, itemName, quantity, price, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// IsOwnedBy reports whether the given user owns this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// ItemName returns the ordered item's name.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the number of items ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the unit price.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeItemName replaces the item name after validation and refreshes
// updatedAt.
func (o *Order) ChangeItemName(itemName string, now time.Time) error {
	if err := o.setItemName(itemName); err != nil {
		return err
	}
	o.Touch(now)
	return nil
}

// ChangeQuantity replaces the quantity after validation and refreshes
// updatedAt.
func (o *Order) ChangeQuantity(quantity int, now time.Time) error {
	if err := o.setQuantity(quantity); err != nil {
		return err
	}
	o.Touch(now)
	return nil
}

// ChangePrice replaces the unit price after validation and refreshes
// updatedAt.
func (o *Order) ChangePrice(price float64, now time.Time) error {
	if err := o.setPrice(price); err != nil {
		return err
	}
	o.Touch(now)
	return nil
}

// ChangeStatus moves the order along a legal edge of the status graph and
// refreshes updatedAt. Illegal edges, including any edge that skips a state,
// fail with an invalid transition error carrying the current status.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.Touch(now)
	return nil
}

// StartProcessing promotes a pending order to Processing. Used by the
// background advancer once the pending dwell time has elapsed.
func (o *Order) StartProcessing(now time.Time) error {
	return o.ChangeStatus(Processing, now)
}

// Complete promotes a processing order to Completed. Used by the background
// advancer once the processing dwell time has elapsed.
func (o *Order) Complete(now time.Time) error {
	return o.ChangeStatus(Completed, now)
}

// Cancel moves a pending or processing order to Cancelled. Cancelling an
// order that is already terminal fails with an invalid transition error
// naming the current status.
func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

// Touch refreshes updatedAt without changing any other field. Updates that
// carry no field changes still bump the modification timestamp.
func (o *Order) Touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemName(itemName string) error {
	// Limits are in characters, not bytes, so multibyte names get the full range.
	length := utf8.RuneCountInString(itemName)
	if length < MinItemNameLength || length > MaxItemNameLength {
		return errs.NewValueIsOutOfRangeError(
			"item_name length", length, MinItemNameLength, MaxItemNameLength,
		)
	}
	o.itemName = itemName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			errors.New("quantity must be greater than 0"),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			errors.New("price must be greater than 0"),
		)
	}
	o.price = price
	return nil
}
