package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
)

// RegisterReturnCommandHandler moves a delivered pedido into the
// confirmation queue. Only the pedido changes here: machine states are
// settled later, when the depot confirms what actually came back.
type RegisterReturnCommandHandler struct {
	uowFactory PedidoUoWFactory
	notifier   ports.Notifier
}

// NewRegisterReturnCommandHandler creates a handler for return registration.
func NewRegisterReturnCommandHandler(uowFactory PedidoUoWFactory, notifier ports.Notifier) RegisterReturnCommandHandler {
	return RegisterReturnCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the return registration and returns the updated pedido.
func (h RegisterReturnCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterReturnCommand,
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

	if err = p.RegisterReturn(cmd.Returned(), cmd.Justification(), cmd.Actor()); err != nil {
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
		Action:   pedido.ActionReturnRegistered.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
