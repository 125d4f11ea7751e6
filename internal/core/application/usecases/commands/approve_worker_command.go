package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrApproveWorkerCommandIsNotConstructed = errors.New(
	"ApproveWorkerCommand must be created via NewApproveWorkerCommand constructor",
)

// ApproveWorkerCommand represents a request to approve a pending worker.
type ApproveWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveWorkerCommand creates a command to approve a worker.
func NewApproveWorkerCommand(workerID kernel.UUID) (ApproveWorkerCommand, error) {
	workerCommand := ApproveWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := workerCommand.setWorkerID(workerID); err != nil {
		return ApproveWorkerCommand{}, err
	}

	return workerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWorkerCommand) Validate() error {
	return c.guard.Validate(ErrApproveWorkerCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker to approve.
func (c ApproveWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *ApproveWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
