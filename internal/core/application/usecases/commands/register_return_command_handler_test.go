package commands_test

import (
	"testing"

	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"
	"fleetrent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnCommandHandler_Handle_CompleteReturn(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterReturnCommand(
		testOrderID(t, 1), []string{"M-01", "M-02"}, "", testActor(t, "jgarcia"),
	)
	require.NoError(t, err)

	m1 := testMachine(t, "M-01", "excavadora", machine.Available)
	m2 := testMachine(t, "M-02", "excavadora", machine.Available)
	p := testPedidoDelivered(t, m1, m2)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("Get", ctx, testOrderID(t, 1)).Return(p, nil).Once(),
		pedidoRepo.On("Update", ctx, mock.AnythingOfType("*pedido.Pedido")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Publish", ctx, ports.Event{
		PedidoID: "P-0001",
		Action:   "RETURN_REGISTERED",
		Actor:    "jgarcia",
	}).Once()

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterReturnCommandHandler(factory, notifier)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pedido.PendingConfirmation, updated.Status())
	assert.Equal(t, []string{"M-01", "M-02"}, updated.ReturnedItems())
}

func TestRegisterReturnCommandHandler_Handle_IncompleteWithoutJustification(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterReturnCommand(
		testOrderID(t, 1), []string{"M-01"}, "", testActor(t, "jgarcia"),
	)
	require.NoError(t, err)

	m1 := testMachine(t, "M-01", "excavadora", machine.Available)
	m2 := testMachine(t, "M-02", "excavadora", machine.Available)
	p := testPedidoDelivered(t, m1, m2)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("Get", ctx, testOrderID(t, 1)).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterReturnCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "justificacion")
	assert.Equal(t, pedido.Delivered, p.Status())
}

func TestRegisterReturnCommandHandler_Handle_UnknownMachine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterReturnCommand(
		testOrderID(t, 1), []string{"M-99"}, "", testActor(t, "jgarcia"),
	)
	require.NoError(t, err)

	m1 := testMachine(t, "M-01", "excavadora", machine.Available)
	p := testPedidoDelivered(t, m1)

	pedidoRepo := new(MockPedidoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(pedidoRepo).Once(),
		pedidoRepo.On("Get", ctx, testOrderID(t, 1)).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterReturnCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "M-99")
}
