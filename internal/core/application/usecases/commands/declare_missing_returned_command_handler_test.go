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

// closedPedidoWithMissing builds a pedido closed with M-02 confirmed missing.
func closedPedidoWithMissing(t *testing.T) *pedido.Pedido {
	t.Helper()
	m1 := testMachine(t, "M-01", "excavadora", machine.Available)
	m2 := testMachine(t, "M-02", "excavadora", machine.Available)
	p := testPedidoPendingConfirmation(t, []string{"M-01"}, "falta una", m1, m2)
	require.NoError(
		t,
		p.ConfirmReturn([]string{"M-01"}, []string{"M-02"}, "", testActor(t, "deposito")),
	)
	return p
}

func TestDeclareMissingReturnedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeclareMissingReturnedCommand(
		testOrderID(t, 1), []string{"M-02"}, "apareció en otra obra", testActor(t, "jgarcia"),
	)
	require.NoError(t, err)

	p := closedPedidoWithMissing(t)

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
		Action:   "MISSING_DECLARED",
		Actor:    "jgarcia",
	}).Once()

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeclareMissingReturnedCommandHandler(factory, notifier)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pedido.PendingConfirmationMissing, updated.Status())
}

func TestDeclareMissingReturnedCommandHandler_Handle_NotClosed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeclareMissingReturnedCommand(
		testOrderID(t, 1), []string{"M-02"}, "", testActor(t, "jgarcia"),
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

	handler := commands.NewDeclareMissingReturnedCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeclareMissingReturnedCommandHandler_Handle_NotInMissingSet(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeclareMissingReturnedCommand(
		testOrderID(t, 1), []string{"M-01"}, "", testActor(t, "jgarcia"),
	)
	require.NoError(t, err)

	p := closedPedidoWithMissing(t) // only M-02 is missing

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

	handler := commands.NewDeclareMissingReturnedCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "M-01")
	assert.Equal(t, pedido.Closed, p.Status())
}
