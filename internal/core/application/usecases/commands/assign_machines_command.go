package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

var ErrAssignMachinesCommandIsNotConstructed = errors.New(
	"AssignMachinesCommand must be created via NewAssignMachinesCommand constructor",
)

// AssignMachinesCommand binds concrete machine instances to a pedido's
// requested types. A justification is only needed when the proposed per-type
// counts diverge from the requested quantities; that rule lives in the
// MachineAssigner domain service, not here.
type AssignMachinesCommand struct { //nolint:recvcheck //using for validation
	pedidoID      kernel.OrderID
	machineIDs    []string
	justification string
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewAssignMachinesCommand creates a command to assign machines to a pedido.
// The machine id list must be non-empty.
func NewAssignMachinesCommand(
	pedidoID kernel.OrderID,
	machineIDs []string,
	justification string,
	actor kernel.Actor,
) (AssignMachinesCommand, error) {
	cmd := AssignMachinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPedidoID(pedidoID),
		cmd.setMachineIDs(machineIDs),
		cmd.setActor(actor),
	); err != nil {
		return AssignMachinesCommand{}, err
	}

	cmd.justification = justification
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignMachinesCommand) Validate() error {
	return c.guard.Validate(ErrAssignMachinesCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c AssignMachinesCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// MachineIDs returns the proposed machine ids.
func (c AssignMachinesCommand) MachineIDs() []string { return c.machineIDs }

// Justification returns the optional mismatch justification.
func (c AssignMachinesCommand) Justification() string { return c.justification }

// Actor returns who performs the assignment.
func (c AssignMachinesCommand) Actor() kernel.Actor { return c.actor }

func (c *AssignMachinesCommand) setPedidoID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pedidoID = id
	return nil
}

func (c *AssignMachinesCommand) setMachineIDs(ids []string) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("asignadas")
	}
	c.machineIDs = ids
	return nil
}

func (c *AssignMachinesCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
