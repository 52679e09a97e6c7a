package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
)

// MarkDeliveredCommandHandler records the hand-over of a prepared pedido.
// Machine states do not change here: they flipped to asignada at assignment
// time and stay that way until the return is confirmed.
type MarkDeliveredCommandHandler struct {
	uowFactory PedidoUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for delivery registration.
func NewMarkDeliveredCommandHandler(uowFactory PedidoUoWFactory, notifier ports.Notifier) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery and returns the updated pedido.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveredCommand,
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

	if err = p.MarkDelivered(cmd.Note(), cmd.Actor()); err != nil {
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
		Action:   pedido.ActionDelivered.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
