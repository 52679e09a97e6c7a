package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
)

// OverrideStatusCommandHandler applies an administrative status override.
type OverrideStatusCommandHandler struct {
	uowFactory PedidoUoWFactory
	notifier   ports.Notifier
}

// NewOverrideStatusCommandHandler creates a handler for status overrides.
func NewOverrideStatusCommandHandler(uowFactory PedidoUoWFactory, notifier ports.Notifier) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the override and returns the updated pedido.
func (h OverrideStatusCommandHandler) Handle(
	ctx context.Context,
	cmd OverrideStatusCommand,
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

	if err = p.OverrideStatus(cmd.Target(), cmd.Actor()); err != nil {
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
		Action:   pedido.ActionAdminStatusOverride.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
