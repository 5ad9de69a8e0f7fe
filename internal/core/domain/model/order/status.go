package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of an order.
// It implements a state machine with an explicit transition table so the
// full DAG is verifiable by inspection.
//
// State transitions:
//
//	Pending ──┬──> Preparing ──┬──> OutForDelivery ──> Delivered
//	          │                │
//	          └──> Canceled <──┘
//
// Delivered and Canceled are terminal; no state may transition to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// Preparing indicates the order has been accepted and is being prepared.
	Preparing

	// OutForDelivery indicates the order has left for the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled before leaving. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Canceled:       "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Canceled:       "CANCELED",
	}
}

// getAllowedTransitions returns the full transition table.
// An absent or empty entry means the state is terminal.
// The table contains no self-loops: no status may transition to itself.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Preparing, Canceled},
		Preparing:      {OutForDelivery, Canceled},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Canceled:       {},
	}
}

// StatusFromString parses the persisted/external representation of a status.
// Returns an error for anything outside the five valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "OUT_FOR_DELIVERY".
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to target. Self-transitions are never permitted.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (Unknown, InvalidTransitionError) otherwise, carrying both endpoints
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
