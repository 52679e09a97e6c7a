package commands_test

import (
	"errors"
	"testing"

	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePedidoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePedidoCommand(
		"jgarcia", "obras", map[string]int{"excavadora": 2, "generador": 1}, "urgente",
	)
	require.NoError(t, err)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	allocated := testOrderID(t, 1)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("NextID", ctx).Return(allocated, nil).Once(),
		pedidoRepo.On("Add", ctx, mock.AnythingOfType("*pedido.Pedido")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Publish", ctx, ports.Event{
		PedidoID: "P-0001",
		Action:   "CREATED",
		Actor:    "jgarcia",
	}).Once()

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePedidoCommandHandler(factory, notifier)
	p, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "P-0001", p.ID().String())
	assert.Equal(t, pedido.PendingPreparation, p.Status())
	assert.Len(t, p.History(), 1)

	pedidoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePedidoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePedidoCommand{} // not constructed properly

	factory := new(MockPedidoUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewCreatePedidoCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreatePedidoCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePedidoCommandHandler_Handle_NextIDError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePedidoCommand(
		"jgarcia", "obras", map[string]int{"excavadora": 1}, "",
	)
	require.NoError(t, err)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("NextID", ctx).
			Return(testOrderID(t, 1), errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := commands.NewCreatePedidoCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	notifier.AssertNotCalled(t, "Publish")
}

func TestCreatePedidoCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePedidoCommand(
		"jgarcia", "obras", map[string]int{"excavadora": 1}, "",
	)
	require.NoError(t, err)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("NextID", ctx).Return(testOrderID(t, 1), nil).Once(),
		pedidoRepo.On("Add", ctx, mock.AnythingOfType("*pedido.Pedido")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePedidoCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Publish")
}
