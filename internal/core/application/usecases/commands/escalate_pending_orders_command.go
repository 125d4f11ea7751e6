package commands

import (
	"errors"

	"castlecare/internal/pkg/guard"
)

var ErrEscalatePendingOrdersCommandIsNotConstructed = errors.New(
	"EscalatePendingOrdersCommand must be created via NewEscalatePendingOrdersCommand constructor",
)

// EscalatePendingOrdersCommand represents a request to sweep orders stuck in
// PENDING and re-publish their events for downstream notification.
type EscalatePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalatePendingOrdersCommand creates a command to run the escalation sweep.
func NewEscalatePendingOrdersCommand() EscalatePendingOrdersCommand {
	return EscalatePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c EscalatePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalatePendingOrdersCommandIsNotConstructed)
}
