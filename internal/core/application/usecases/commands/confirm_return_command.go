package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/guard"
)

var ErrConfirmReturnCommandIsNotConstructed = errors.New(
	"ConfirmReturnCommand must be created via NewConfirmReturnCommand constructor",
)

// ConfirmReturnCommand carries the depot's verdict on a registered return:
// which machines are verified back and which are confirmed missing.
type ConfirmReturnCommand struct { //nolint:recvcheck //using for validation
	pedidoID kernel.OrderID
	returned []string
	missing  []string
	note     string
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewConfirmReturnCommand creates a command to confirm a return. Set
// disjointness and membership in the assignment are aggregate rules.
func NewConfirmReturnCommand(
	pedidoID kernel.OrderID,
	returned []string,
	missing []string,
	note string,
	actor kernel.Actor,
) (ConfirmReturnCommand, error) {
	if err := errors.Join(pedidoID.Validate(), actor.Validate()); err != nil {
		return ConfirmReturnCommand{}, err
	}

	return ConfirmReturnCommand{
		pedidoID: pedidoID,
		returned: returned,
		missing:  missing,
		note:     note,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReturnCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReturnCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c ConfirmReturnCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// Returned returns the confirmed-returned machine ids.
func (c ConfirmReturnCommand) Returned() []string { return c.returned }

// Missing returns the confirmed-missing machine ids.
func (c ConfirmReturnCommand) Missing() []string { return c.missing }

// Note returns the optional confirmation note.
func (c ConfirmReturnCommand) Note() string { return c.note }

// Actor returns who confirms the return.
func (c ConfirmReturnCommand) Actor() kernel.Actor { return c.actor }
