package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrAlreadyProcessed is returned when a requested status change is no longer
// legal because the order has already moved to or past the requested point,
// whether observed in memory or detected by a conditional update matching
// zero rows. Callers must surface it, never retry blindly.
var ErrAlreadyProcessed = errors.New("order has already been processed")

// Status represents the lifecycle state of an order. It implements a strictly
// forward-only state machine:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//
// Customer self-service orders start at Pending and walk the full pipeline;
// walk-in till orders are finalized on creation (see NewWalkInOrder). Forward
// jumps are permitted where an operation's target set allows them; any move to
// the current status or behind it fails with ErrAlreadyProcessed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a customer self-service order,
	// awaiting cashier confirmation.
	Pending

	// Confirmed means a cashier accepted the order and the kitchen may
	// start on it.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is ready for the customer to collect.
	Ready

	// Completed is the final state: collected by the customer, or a walk-in
	// order fulfilled at the till. No further transitions are allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Completed: "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Completed: "COMPLETED",
	}
}

// KitchenTargets returns the set of statuses the kitchen may request an order
// to move to. Pending is excluded: only a cashier confirmation brings an
// order into the kitchen pipeline.
func KitchenTargets() []Status {
	return []Status{Confirmed, Preparing, Ready, Completed}
}

// StatusFromString parses the wire representation ("PENDING".."COMPLETED").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the five valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Before reports whether s precedes other in the lifecycle.
func (s Status) Before(other Status) bool {
	return s < other
}

// AtOrPast reports whether s has reached other in the lifecycle.
func (s Status) AtOrPast(other Status) bool {
	return s >= other
}

// TransitionTo validates a move from s to target and returns the new status.
//
// Rules:
//   - both statuses must be valid lifecycle states
//   - target must lie strictly ahead of s; the same status or any earlier
//     one fails with ErrAlreadyProcessed (no regression, no silent repeats)
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.Before(target) {
		return Unknown, fmt.Errorf("%w: cannot move from %s to %s", ErrAlreadyProcessed, s, target)
	}

	return target, nil
}
