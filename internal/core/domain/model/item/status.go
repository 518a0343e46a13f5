package item

import (
	"fmt"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery item.
// It implements a state machine with defined transitions to ensure
// items follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──┬──> Out_For_Delivery ──┐
//	   │            │          │      │         │   ▲         │
//	   │            │          │      └──> Delivery_Attempted │
//	   │            │          │                │             │
//	   │            │          └──────────┬─────┴─────────────┤
//	   │            │                     ▼                   ▼
//	   └────────────┴───────────────> Cancelled           Delivered
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates transitions and provides the canonical string forms used for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created item,
	// waiting to be assigned to a delivery agent.
	Pending

	// Assigned indicates the item has been assigned to an agent
	// but not yet picked up.
	Assigned

	// Picked indicates the agent has collected the item.
	Picked

	// OutForDelivery indicates the agent is en route to the customer.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Cancelled indicates the delivery was abandoned. Terminal.
	Cancelled

	// DeliveryAttempted indicates a delivery attempt failed
	// (customer unavailable, wrong address) and may be retried.
	DeliveryAttempted
)

// getStatusStrings returns the canonical string form for every Status,
// matching the persisted enum spelling.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pending",
		Assigned:          "Assigned",
		Picked:            "Picked",
		OutForDelivery:    "Out_For_Delivery",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
		DeliveryAttempted: "Delivery_Attempted",
	}
}

// AllStatuses returns every lifecycle member in declaration order, Unknown
// excluded.
func AllStatuses() []Status {
	return []Status{Pending, Assigned, Picked, OutForDelivery, Delivered, Cancelled, DeliveryAttempted}
}

// getTransitions returns the directed transition graph as a data table:
// source status to the set of permitted destinations. Terminal statuses map
// to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:           {Assigned, Cancelled},
		Assigned:          {Picked, Cancelled},
		Picked:            {OutForDelivery, DeliveryAttempted, Delivered, Cancelled},
		OutForDelivery:    {Delivered, DeliveryAttempted, Cancelled},
		DeliveryAttempted: {OutForDelivery, Delivered, Cancelled},
		Delivered:         {},
		Cancelled:         {},
	}
}

// ParseStatus resolves an incoming status string to its enum member.
// Matching is case- and whitespace-insensitive: the input is trimmed,
// internal whitespace runs collapse to a single underscore, and the result
// is upper-cased before lookup, so "out for delivery", "Out_For_Delivery"
// and "OUT_FOR_DELIVERY" are equivalent.
//
// Returns an InvalidStatus error when the normalized value is not a
// recognized member.
func ParseStatus(raw string) (Status, error) {
	normalized := normalizeStatus(raw)
	for status, canonical := range getStatusStrings() {
		if status == Unknown {
			continue
		}
		if normalized == strings.ToUpper(canonical) {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(raw)
}

// normalizeStatus trims, collapses internal whitespace and underscores to a
// single underscore, and upper-cases.
func normalizeStatus(raw string) string {
	fields := strings.Fields(strings.ReplaceAll(raw, "_", " "))
	return strings.ToUpper(strings.Join(fields, "_"))
}

// Validate checks that the Status value is a recognized lifecycle member.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, or "Unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	destinations, ok := getTransitions()[s]
	return ok && len(destinations) == 0
}

// CanTransitionTo reports whether the edge s -> next exists in the
// transition graph.
func (s Status) CanTransitionTo(next Status) bool {
	for _, destination := range getTransitions()[s] {
		if destination == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the move to next.
//
// Returns:
//   - (next, nil) when the edge exists in the transition graph
//   - (0, InvalidStatus error) when next is not a recognized member
//   - (0, InvalidTransition error naming both endpoints) otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, errs.NewInvalidStatusError(next.String())
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}

// CarriesAgent reports whether the status requires a delivery agent to be
// attached. Pending and Cancelled items carry no agent; everything past
// assignment does, including Delivered for audit purposes.
func (s Status) CarriesAgent() bool {
	switch s {
	case Assigned, Picked, OutForDelivery, DeliveryAttempted, Delivered:
		return true
	default:
		return false
	}
}
