package commands

import (
	"context"

	"fleetrent/internal/core/domain/model/machine"
)

// UpdateMachineCommandHandler edits a machine's descriptive fields and,
// when requested, forces its state through the administrative transition.
type UpdateMachineCommandHandler struct {
	uowFactory MachineUoWFactory
}

// NewUpdateMachineCommandHandler creates a handler for machine updates.
func NewUpdateMachineCommandHandler(uowFactory MachineUoWFactory) UpdateMachineCommandHandler {
	return UpdateMachineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the update and returns the machine.
func (h UpdateMachineCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMachineCommand,
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

	m, err := machineRepo.Get(ctx, cmd.MachineID())
	if err != nil {
		return nil, err
	}

	// Empty fields mean "leave unchanged", matching the partial-edit
	// semantics of the HTTP surface.
	model, serial, service := m.Model(), m.Serial(), m.Service()
	if cmd.Model() != "" {
		model = cmd.Model()
	}
	if cmd.Serial() != "" {
		serial = cmd.Serial()
	}
	if cmd.Service() != "" {
		service = cmd.Service()
	}
	m.UpdateDetails(model, serial, service)

	if cmd.HasState() {
		if err = m.ChangeState(cmd.State()); err != nil {
			return nil, err
		}
	}

	if err = machineRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
