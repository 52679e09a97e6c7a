package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/guard"
)

var ErrDeletePedidoCommandIsNotConstructed = errors.New(
	"DeletePedidoCommand must be created via NewDeletePedidoCommand constructor",
)

// DeletePedidoCommand removes a pedido and releases its still-assigned
// machines back to disponible.
type DeletePedidoCommand struct { //nolint:recvcheck //using for validation
	pedidoID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDeletePedidoCommand creates a command to delete a pedido.
func NewDeletePedidoCommand(pedidoID kernel.OrderID) (DeletePedidoCommand, error) {
	if err := pedidoID.Validate(); err != nil {
		return DeletePedidoCommand{}, err
	}

	return DeletePedidoCommand{
		pedidoID: pedidoID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePedidoCommand) Validate() error {
	return c.guard.Validate(ErrDeletePedidoCommandIsNotConstructed)
}

// PedidoID returns the pedido to delete.
func (c DeletePedidoCommand) PedidoID() kernel.OrderID { return c.pedidoID }
