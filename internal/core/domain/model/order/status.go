package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Values are persisted as-is.
//
//	pending ──> confirmed ──> completed
//	   │            │
//	   └────────────┴──> cancelled
//
// completed and cancelled are terminal.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Completed, Cancelled}
}

// ParseStatus converts a persisted or user supplied value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// Confirm transitions pending -> confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return "", transitionError(s, Confirmed)
	}
	return Confirmed, nil
}

// Complete transitions confirmed -> completed.
func (s Status) Complete() (Status, error) {
	if s != Confirmed {
		return "", transitionError(s, Completed)
	}
	return Completed, nil
}

// ValidateCancel checks that an order in status s may still be cancelled.
func (s Status) ValidateCancel() error {
	if s != Pending && s != Confirmed {
		return transitionError(s, Cancelled)
	}
	return nil
}

// Cancel transitions pending or confirmed -> cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return "", err
	}
	return Cancelled, nil
}

func transitionError(from, to Status) error {
	return errs.NewValidationError(fmt.Sprintf("cannot move order from %s to %s", from, to))
}
