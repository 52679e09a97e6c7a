package commands

import (
	"context"
	"strings"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/domain/services"
	"fleetrent/internal/core/ports"
	"fleetrent/internal/pkg/errs"
)

// AssignMachinesCommandHandler orchestrates the assignment transition: it
// loads the pedido and the proposed machines with their rows locked, runs the
// MachineAssigner domain service, and persists both sides in one
// transaction. A rejected assignment leaves every machine untouched.
type AssignMachinesCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAssignMachinesCommandHandler creates a handler for machine assignment.
func NewAssignMachinesCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AssignMachinesCommandHandler {
	return AssignMachinesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment and returns the updated pedido.
// Unknown machine ids fail with ObjectNotFound listing them; machines that
// are not disponible fail with Conflict listing their current states. Row
// locks taken by GetByIDs serialize concurrent assignments of the same
// machine, so the loser of the race observes the flipped state and conflicts.
func (h AssignMachinesCommandHandler) Handle(
	ctx context.Context,
	cmd AssignMachinesCommand,
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

	machines, missing, err := machineRepo.GetByIDs(ctx, cmd.MachineIDs())
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectNotFoundError("maquinas", strings.Join(missing, ", "))
	}

	if err = services.NewMachineAssigner().Assign(p, machines, cmd.Justification(), cmd.Actor()); err != nil {
		return nil, err
	}

	if err = pedidoRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	for _, m := range machines {
		if err = machineRepo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Event{
		PedidoID: p.ID().String(),
		Action:   pedido.ActionMachinesAssigned.String(),
		Actor:    cmd.Actor().String(),
	})
	return p, nil
}
