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

func TestRegisterMachineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterMachineCommand(
		"M-01", "excavadora", "GX-200", "SN-001", "obras", "",
	)
	require.NoError(t, err)

	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, "M-01").
			Return(nil, errs.NewObjectNotFoundError("maquina", "M-01")).
			Once(),
		machineRepo.On("Add", ctx, mock.AnythingOfType("*machine.Machine")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterMachineCommandHandler(factory)
	m, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "M-01", m.ID())
	// absent estado registers the machine as disponible
	assert.Equal(t, machine.Available, m.State())

	machineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterMachineCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterMachineCommand(
		"M-01", "excavadora", "GX-200", "SN-001", "obras", "disponible",
	)
	require.NoError(t, err)

	existing := testMachine(t, "M-01", "excavadora", machine.Available)

	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, "M-01").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterMachineCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	machineRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterMachineCommand_NormalizesState(t *testing.T) {
	cmd, err := commands.NewRegisterMachineCommand(
		"M-01", "excavadora", "GX-200", "SN-001", "obras", "En Reparacion",
	)

	require.NoError(t, err)
	assert.Equal(t, machine.UnderRepair, cmd.Machine().State())
}

func TestNewRegisterMachineCommand_MissingFields(t *testing.T) {
	_, err := commands.NewRegisterMachineCommand("", "", "GX-200", "SN-001", "obras", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
