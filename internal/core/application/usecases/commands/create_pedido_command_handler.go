package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
)

// CreatePedidoCommandHandler handles pedido submission: it allocates the
// next sequential code and persists the new pedido with its CREATED history
// entry in one transaction.
type CreatePedidoCommandHandler struct {
	uowFactory PedidoUoWFactory
	notifier   ports.Notifier
}

// NewCreatePedidoCommandHandler creates a handler for pedido submissions.
func NewCreatePedidoCommandHandler(uowFactory PedidoUoWFactory, notifier ports.Notifier) CreatePedidoCommandHandler {
	return CreatePedidoCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the submission and returns the created pedido.
// The code allocation happens inside the creating transaction so concurrent
// submissions get distinct sequential codes.
func (h CreatePedidoCommandHandler) Handle(ctx context.Context, cmd CreatePedidoCommand) (*pedido.Pedido, error) {
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

	repo := uow.PedidoRepository()

	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := pedido.NewPedido(id, cmd.Requester(), cmd.Service(), cmd.Items(), cmd.Note())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Event{
		PedidoID: p.ID().String(),
		Action:   pedido.ActionCreated.String(),
		Actor:    cmd.Requester(),
	})
	return p, nil
}
