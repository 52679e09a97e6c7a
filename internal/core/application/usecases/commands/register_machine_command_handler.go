package commands

import (
	"context"
	"errors"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"
)

// RegisterMachineCommandHandler adds a machine to the inventory, rejecting
// duplicate ids.
type RegisterMachineCommandHandler struct {
	uowFactory MachineUoWFactory
}

// NewRegisterMachineCommandHandler creates a handler for machine
// registration.
func NewRegisterMachineCommandHandler(uowFactory MachineUoWFactory) RegisterMachineCommandHandler {
	return RegisterMachineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the machine and returns it. An existing machine with the
// same id fails with Conflict; only an ObjectNotFound probe result means the
// id is free.
func (h RegisterMachineCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterMachineCommand,
) (*machine.Machine, error) {
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

	machineRepo := uow.MachineRepository()
	m := cmd.Machine()

	_, err := machineRepo.Get(ctx, m.ID())
	if err == nil {
		return nil, errs.NewConflictError("maquina", m.ID()+" already exists")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = machineRepo.Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
