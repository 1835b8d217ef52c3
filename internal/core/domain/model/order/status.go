package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: no outgoing transitions exist.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The background advancer promotes pending orders to Processing
	// after the pending dwell time has elapsed.
	Pending

	// Processing indicates the order is being worked on. The background
	// advancer promotes processing orders to Completed after the processing
	// dwell time has elapsed.
	Processing

	// Completed indicates the order finished the lifecycle. Terminal.
	Completed

	// Cancelled indicates the owner cancelled the order before completion.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the legal edges of the status graph.
// Terminal statuses have no entry.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
	}
}

// StatusFromString parses the persisted or request-supplied form of a status.
// Returns an error for anything outside the enum.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the enum.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status ("pending", "processing",
// "completed", "cancelled"), or "unknown" for invalid values. This form is
// used both for persistence and API representations. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the status graph has an edge from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves along a legal edge of the status graph.
//
// Returns:
//   - (next, nil) when the edge s -> next exists
//   - (0, *errs.InvalidTransitionError) otherwise, carrying both statuses
//
// Self-transitions and edges that skip a state (Pending -> Completed) are
// rejected the same way as transitions out of a terminal status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}

// StartProcessing transitions the status to Processing.
// Only Pending orders may start processing.
func (s Status) StartProcessing() (Status, error) {
	return s.TransitionTo(Processing)
}

// Complete transitions the status to Completed.
// Only Processing orders may complete.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

// Cancel transitions the status to Cancelled.
// Only Pending and Processing orders may be cancelled; cancelling a terminal
// order fails with an invalid transition error naming the current status.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
