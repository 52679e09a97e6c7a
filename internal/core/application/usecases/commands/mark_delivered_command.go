package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand records the hand-over of a prepared pedido.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	pedidoID kernel.OrderID
	note     string
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a pedido as delivered.
func NewMarkDeliveredCommand(pedidoID kernel.OrderID, note string, actor kernel.Actor) (MarkDeliveredCommand, error) {
	if err := errors.Join(pedidoID.Validate(), actor.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		pedidoID: pedidoID,
		note:     note,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c MarkDeliveredCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// Note returns the optional delivery note.
func (c MarkDeliveredCommand) Note() string { return c.note }

// Actor returns who records the delivery.
func (c MarkDeliveredCommand) Actor() kernel.Actor { return c.actor }
