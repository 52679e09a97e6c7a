package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
)

// DeclareMissingReturnedCommandHandler reopens a closed pedido when machines
// confirmed missing turn up late. Machine states stay no_devuelta until the
// depot confirms the late return through the regular confirmation operation.
type DeclareMissingReturnedCommandHandler struct {
	uowFactory PedidoUoWFactory
	notifier   ports.Notifier
}

// NewDeclareMissingReturnedCommandHandler creates a handler for late-return
// declarations.
func NewDeclareMissingReturnedCommandHandler(
	uowFactory PedidoUoWFactory,
	notifier ports.Notifier,
) DeclareMissingReturnedCommandHandler {
	return DeclareMissingReturnedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the declaration and returns the reopened pedido.
func (h DeclareMissingReturnedCommandHandler) Handle(
	ctx context.Context,
	cmd DeclareMissingReturnedCommand,
) (*pedido.Pedido, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pedidoRepo := uow.PedidoRepository()

	p, err := pedidoRepo.Get(ctx, cmd.PedidoID())
	if err != nil {
		return nil, err
	}

	if err = p.DeclareMissingReturned(cmd.MachineIDs(), cmd.Note(), cmd.Actor()); err != nil {
		return nil, err
	}

	if err = pedidoRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Event{
		PedidoID: p.ID().String(),
		Action:   pedido.ActionMissingDeclared.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
