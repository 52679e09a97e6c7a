package commands_test

import (
	"testing"

	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMachineCommandHandler_Handle_DetailsOnly(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMachineCommand("M-01", "GX-300", "SN-002", "mineria", "")
	require.NoError(t, err)

	m := testMachine(t, "M-01", "excavadora", machine.Assigned)

	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, "M-01").Return(m, nil).Once(),
		machineRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMachineCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "GX-300", updated.Model())
	assert.Equal(t, "SN-002", updated.Serial())
	assert.Equal(t, "mineria", updated.Service())
	// empty estado leaves the state untouched
	assert.Equal(t, machine.Assigned, updated.State())
}

func TestUpdateMachineCommandHandler_Handle_WithStateChange(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMachineCommand("M-01", "GX-200", "SN-001", "obras", "en_reparacion")
	require.NoError(t, err)

	m := testMachine(t, "M-01", "excavadora", machine.Available)

	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, "M-01").Return(m, nil).Once(),
		machineRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMachineCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, machine.UnderRepair, updated.State())
}

func TestUpdateMachineCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMachineCommand("M-99", "GX-200", "SN-001", "obras", "")
	require.NoError(t, err)

	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, "M-99").
			Return(nil, errs.NewObjectNotFoundError("maquina", "M-99")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMachineCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateMachineCommand_UnknownState(t *testing.T) {
	_, err := commands.NewUpdateMachineCommand("M-01", "GX-200", "SN-001", "obras", "volando")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
