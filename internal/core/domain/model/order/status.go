package order

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> InProcessing ──┬──> Cooking ──> Assembling ──> SearchingCourier ──> AwaitingCourier ──┬──> InDelivery
//	                 │         │                                                          │              │
//	                 │         └──> Cancelled (seller rejected)                           └──> Delayed ──┘
//	                 └──> Cancelled (seller timeout)
//
// Created is transient: NewOrder moves straight to InProcessing.
// Cancelled and InDelivery are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Created
	InProcessing
	Cooking
	Assembling
	SearchingCourier
	AwaitingCourier
	Delayed
	InDelivery
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Created:          "CREATED",
		InProcessing:     "IN_PROCESSING",
		Cooking:          "COOKING",
		Assembling:       "ASSEMBLING",
		SearchingCourier: "SEARCHING_COURIER",
		AwaitingCourier:  "AWAITING_COURIER",
		Delayed:          "DELAYED",
		InDelivery:       "IN_DELIVERY",
		Cancelled:        "CANCELLED",
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Created, InProcessing, Cooking, Assembling, SearchingCourier,
		AwaitingCourier, Delayed, InDelivery, Cancelled,
	}
}

// ParseStatus converts the persisted or wire name of a status back into a Status.
// Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, st := range AllStatuses() {
		if st.String() == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper snake case name, e.g. "IN_PROCESSING".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == InDelivery
}

// HasCourier reports whether an order in this status must have a courier bound to it.
func (s Status) HasCourier() bool {
	return s == AwaitingCourier || s == Delayed || s == InDelivery
}

// transition returns next if s is one of from, otherwise an InvalidStateTransitionError.
func (s Status) transition(next Status, from ...Status) error {
	for _, f := range from {
		if s == f {
			return nil
		}
	}
	return &InvalidStateTransitionError{Current: s, Target: next, Expected: from}
}
