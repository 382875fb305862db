package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with guarded transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Dispatched ──> Delivered
//	   │            │             │              │
//	   └────────────┴─────────────┘              └──> Delivered only
//	                │
//	                v
//	            Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is legal from any
// non-terminal state; forward progression is legal one step at a time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits restaurant confirmation.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the order is being prepared.
	Preparing

	// Dispatched indicates the order left for delivery.
	// The only legal transition from here is Delivered.
	Dispatched

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled. Terminal, reachable from
	// any non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Preparing:  "Preparing",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Preparing:  "Preparing",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString resolves a status by its name, case-insensitively.
// Unknown is not resolvable.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", name),
	)
}

// nextInSequence maps each status to its legal forward successor.
var nextInSequence = map[Status]Status{
	Pending:    Confirmed,
	Confirmed:  Preparing,
	Preparing:  Dispatched,
	Dispatched: Delivered,
}

// Validate checks that the Status value names a real lifecycle state.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsContentEdit reports whether an order in this status may still have
// its items and notes changed. Once dispatched, order content is locked.
func (s Status) AllowsContentEdit() bool {
	return s == Pending || s == Confirmed || s == Preparing
}

// CanTransitionTo validates a transition from s to next without performing it.
//
// Rules:
//   - Delivered and Cancelled are terminal: nothing leaves them.
//   - From Dispatched the only legal target is Delivered.
//   - Cancellation is legal from any non-terminal state.
//   - Otherwise the order progresses one step forward in sequence.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s == Cancelled {
		return errs.NewBusinessRuleViolationError("a cancelled order cannot change status")
	}
	if s == Delivered {
		return errs.NewBusinessRuleViolationError("a delivered order cannot change status")
	}
	if s == Dispatched && next != Delivered {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("a dispatched order can only be delivered, not %s", next),
		)
	}
	if next == Cancelled {
		return nil
	}
	if nextInSequence[s] != next {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("illegal status transition from %s to %s", s, next),
		)
	}
	return nil
}

// TransitionTo returns the new status after a validated transition, or an
// error when the transition is illegal.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.CanTransitionTo(next); err != nil {
		return 0, err
	}
	return next, nil
}
