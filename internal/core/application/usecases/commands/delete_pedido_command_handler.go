package commands

import (
	"context"
)

// DeletePedidoCommandHandler removes a pedido and, in the same transaction,
// releases every machine referenced in its assignment back to disponible,
// whatever state the machine is in. The purge erases the pedido's whole
// footprint, including a no_devuelta verdict that only its history justified.
type DeletePedidoCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeletePedidoCommandHandler creates a handler for pedido deletion.
func NewDeletePedidoCommandHandler(uowFactory UoWFactory) DeletePedidoCommandHandler {
	return DeletePedidoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the pedido. Machines listed in the assignment that no
// longer exist in inventory are skipped rather than failing the deletion.
func (h DeletePedidoCommandHandler) Handle(ctx context.Context, cmd DeletePedidoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pedidoRepo := uow.PedidoRepository()
	machineRepo := uow.MachineRepository()

	p, err := pedidoRepo.Get(ctx, cmd.PedidoID())
	if err != nil {
		return err
	}

	if assigned := p.AssignedIDs(); len(assigned) > 0 {
		machines, _, getErr := machineRepo.GetByIDs(ctx, assigned)
		if getErr != nil {
			return getErr
		}
		for _, m := range machines {
			m.Release()
			if err = machineRepo.Update(ctx, m); err != nil {
				return err
			}
		}
	}

	if err = pedidoRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
