package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrSetWorkerAvailabilityCommandIsNotConstructed = errors.New(
	"SetWorkerAvailabilityCommand must be created via NewSetWorkerAvailabilityCommand constructor",
)

// SetWorkerAvailabilityCommand represents a request to toggle a worker's
// availability flag. Only approved workers may change availability.
type SetWorkerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	workerID  kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetWorkerAvailabilityCommand creates a command to toggle availability.
func NewSetWorkerAvailabilityCommand(workerID kernel.UUID, available bool) (SetWorkerAvailabilityCommand, error) {
	availabilityCommand := SetWorkerAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setWorkerID(workerID); err != nil {
		return SetWorkerAvailabilityCommand{}, err
	}

	availabilityCommand.available = available

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetWorkerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerAvailabilityCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker.
func (c SetWorkerAvailabilityCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Available returns the requested availability state.
func (c SetWorkerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetWorkerAvailabilityCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
