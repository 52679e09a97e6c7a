package commands

import (
	"context"
	"strings"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
	"fleetrent/internal/pkg/errs"
)

// ConfirmReturnCommandHandler closes the loop on a registered return. The
// pedido transitions to CERRADO and every machine named in the verdict flips
// state in the same transaction: confirmed returned machines become
// disponible again, confirmed missing ones become no_devuelta.
type ConfirmReturnCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewConfirmReturnCommandHandler creates a handler for return confirmation.
func NewConfirmReturnCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ConfirmReturnCommandHandler {
	return ConfirmReturnCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirmation and returns the closed pedido.
func (h ConfirmReturnCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmReturnCommand,
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
	machineRepo := uow.MachineRepository()

	p, err := pedidoRepo.Get(ctx, cmd.PedidoID())
	if err != nil {
		return nil, err
	}

	if err = p.ConfirmReturn(cmd.Returned(), cmd.Missing(), cmd.Note(), cmd.Actor()); err != nil {
		return nil, err
	}

	combined := append(append([]string{}, cmd.Returned()...), cmd.Missing()...)
	machines, notFound, err := machineRepo.GetByIDs(ctx, combined)
	if err != nil {
		return nil, err
	}
	if len(notFound) > 0 {
		return nil, errs.NewObjectNotFoundError("maquinas", strings.Join(notFound, ", "))
	}

	missingSet := make(map[string]bool, len(cmd.Missing()))
	for _, id := range cmd.Missing() {
		missingSet[id] = true
	}

	for _, m := range machines {
		if missingSet[m.ID()] {
			m.MarkNotReturned()
		} else {
			m.ConfirmReturned()
		}
		if err = machineRepo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	if err = pedidoRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Event{
		PedidoID: p.ID().String(),
		Action:   pedido.ActionReturnConfirmed.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
