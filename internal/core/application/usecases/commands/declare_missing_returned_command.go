package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

var ErrDeclareMissingReturnedCommandIsNotConstructed = errors.New(
	"DeclareMissingReturnedCommand must be created via NewDeclareMissingReturnedCommand constructor",
)

// DeclareMissingReturnedCommand registers the late return of machines the
// depot had confirmed missing. It reopens the pedido into the second
// confirmation branch so the late arrivals can be verified.
type DeclareMissingReturnedCommand struct { //nolint:recvcheck //using for validation
	pedidoID   kernel.OrderID
	machineIDs []string
	note       string
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeclareMissingReturnedCommand creates a command to declare missing
// machines returned. The id list must be non-empty.
func NewDeclareMissingReturnedCommand(
	pedidoID kernel.OrderID,
	machineIDs []string,
	note string,
	actor kernel.Actor,
) (DeclareMissingReturnedCommand, error) {
	cmd := DeclareMissingReturnedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pedidoID.Validate(),
		actor.Validate(),
		validateMachineIDs(machineIDs),
	); err != nil {
		return DeclareMissingReturnedCommand{}, err
	}

	cmd.pedidoID = pedidoID
	cmd.machineIDs = machineIDs
	cmd.note = note
	cmd.actor = actor
	return cmd, nil
}

func validateMachineIDs(ids []string) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("devueltas")
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c DeclareMissingReturnedCommand) Validate() error {
	return c.guard.Validate(ErrDeclareMissingReturnedCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c DeclareMissingReturnedCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// MachineIDs returns the late-returned machine ids.
func (c DeclareMissingReturnedCommand) MachineIDs() []string { return c.machineIDs }

// Note returns the optional declaration note.
func (c DeclareMissingReturnedCommand) Note() string { return c.note }

// Actor returns who declares the late return.
func (c DeclareMissingReturnedCommand) Actor() kernel.Actor { return c.actor }
