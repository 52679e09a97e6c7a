package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand forces a pedido into an arbitrary status, skipping
// the workflow preconditions. Administrative escape hatch with no inventory
// side effects.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	pedidoID kernel.OrderID
	target   pedido.Status
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewOverrideStatusCommand creates a command to force a status change. The
// estado token is parsed here so an unknown status fails before any
// transaction starts.
func NewOverrideStatusCommand(
	pedidoID kernel.OrderID,
	estado string,
	actor kernel.Actor,
) (OverrideStatusCommand, error) {
	target, parseErr := pedido.ParseStatus(estado)

	if err := errors.Join(pedidoID.Validate(), actor.Validate(), parseErr); err != nil {
		return OverrideStatusCommand{}, err
	}

	return OverrideStatusCommand{
		pedidoID: pedidoID,
		target:   target,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

// PedidoID returns the target pedido code.
func (c OverrideStatusCommand) PedidoID() kernel.OrderID { return c.pedidoID }

// Target returns the forced status.
func (c OverrideStatusCommand) Target() pedido.Status { return c.target }

// Actor returns who forces the change.
func (c OverrideStatusCommand) Actor() kernel.Actor { return c.actor }
