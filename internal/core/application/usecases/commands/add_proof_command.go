package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var (
	ErrAddProofCommandIsNotConstructed = errors.New(
		"AddProofCommand must be created via NewAddProofCommand constructor",
	)
	ErrProofRefIsRequired = errors.New("proof reference is required")
)

// AddProofCommand represents a request to attach proof-of-completion media to
// an in-progress order.
type AddProofCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	proofRef string

	guard guard.ConstructorGuard
}

// NewAddProofCommand creates a command to attach a proof reference.
func NewAddProofCommand(orderID kernel.UUID, proofRef string) (AddProofCommand, error) {
	proofCommand := AddProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		proofCommand.setOrderID(orderID),
		proofCommand.setProofRef(proofRef),
	); err != nil {
		return AddProofCommand{}, err
	}

	return proofCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProofCommand) Validate() error {
	return c.guard.Validate(ErrAddProofCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the proof.
func (c AddProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProofRef returns the proof media reference.
func (c AddProofCommand) ProofRef() string {
	return c.proofRef
}

func (c *AddProofCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddProofCommand) setProofRef(proofRef string) error {
	if proofRef == "" {
		return ErrProofRefIsRequired
	}

	c.proofRef = proofRef
	return nil
}
