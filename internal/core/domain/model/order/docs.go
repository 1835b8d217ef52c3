// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing order identity, properties, ownership, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, a valid owning user, a non-empty
//     item name, and positive quantity and price
//   - The owning user never changes after creation
//   - Status follows a defined workflow: pending -> processing -> completed,
//     with cancellation possible from pending and processing
//   - Completed and cancelled are terminal statuses
//   - Every mutation refreshes the updatedAt timestamp
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
