package order

import (
	"fmt"
	"strings"

	"castlecare/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The expected progression is
//
//	PENDING -> ACCEPTED -> IN_PROGRESS -> COMPLETED
//
// but the engine accepts any caller-specified target status: correctness is
// gated by transition preconditions (worker assignment rules, proof rules),
// not by a strict adjacency graph. The one structural rule the status itself
// enforces is that COMPLETED is terminal.
type Status string

const (
	// StatusPending is the initial status of every new order.
	StatusPending Status = "PENDING"

	// StatusAccepted indicates the order was accepted, usually with a worker
	// assigned at the same time.
	StatusAccepted Status = "ACCEPTED"

	// StatusInProgress indicates work has started. Proof of completion may
	// only be attached while the order is in this status.
	StatusInProgress Status = "IN_PROGRESS"

	// StatusCompleted is the terminal status. No further transitions are
	// allowed out of it.
	StatusCompleted Status = "COMPLETED"
)

// StatusFromString parses a status from external input, case-insensitively.
func StatusFromString(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the supported values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// ValidateTransition checks whether the status may move to target. The target
// must be a valid status and the current status must not be terminal.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewIllegalStateError(
			fmt.Sprintf("order is %s and cannot transition to %s", s, target))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
