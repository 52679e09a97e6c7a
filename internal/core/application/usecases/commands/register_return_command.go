package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/guard"
)

var ErrRegisterReturnCommandIsNotConstructed = errors.New(
	"RegisterReturnCommand must be created via NewRegisterReturnCommand constructor",
)

// RegisterReturnCommand declares which assigned machines came back from the
// field. An incomplete return (some machines not in the list) requires a
// justification; that rule is enforced by the aggregate.
type RegisterReturnCommand struct { //nolint:recvcheck //using for validation
	pedidoID      kernel.OrderID
	returned      []string
	justification string
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewRegisterReturnCommand creates a command to register a return. The
// returned list may be empty (nothing came back), in which case the
// justification carries the whole story.
func NewRegisterReturnCommand(
	pedidoID kernel.OrderID,
	returned []string,
	justification string,
	actor kernel.Actor,
) (RegisterReturnCommand, error) {
	if err := errors.Join(pedidoID.Validate(), actor.Validate()); err != nil {
		return RegisterReturnCommand{}, err
	}

	return RegisterReturnCommand{
		pedidoID:      pedidoID,
		returned:      returned,
		justification: justification,
		actor:         actor,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterReturnCommand) Validate() error {
	return c.guard.Validate(ErrRegisterReturnCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c RegisterReturnCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// Returned returns the declared returned machine ids.
func (c RegisterReturnCommand) Returned() []string { return c.returned }

// Justification returns the incomplete-return justification.
func (c RegisterReturnCommand) Justification() string { return c.justification }

// Actor returns who registers the return.
func (c RegisterReturnCommand) Actor() kernel.Actor { return c.actor }
