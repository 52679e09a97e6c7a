package commands_test

import (
	"context"

	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPedidoRepository struct{ mock.Mock }

func (m *MockPedidoRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockPedidoRepository) Add(ctx context.Context, p *pedido.Pedido) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPedidoRepository) Update(ctx context.Context, p *pedido.Pedido) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPedidoRepository) Get(ctx context.Context, id kernel.OrderID) (*pedido.Pedido, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pedido.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) GetAllInStatus(
	ctx context.Context,
	status pedido.Status,
) ([]*pedido.Pedido, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pedido.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMachineRepository struct{ mock.Mock }

func (m *MockMachineRepository) Add(ctx context.Context, mc *machine.Machine) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *MockMachineRepository) Update(ctx context.Context, mc *machine.Machine) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *MockMachineRepository) Get(ctx context.Context, id string) (*machine.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*machine.Machine), args.Error(1)
}

func (m *MockMachineRepository) GetByIDs(
	ctx context.Context,
	ids []string,
) ([]*machine.Machine, []string, error) {
	args := m.Called(ctx, ids)
	var found []*machine.Machine
	if args.Get(0) != nil {
		found = args.Get(0).([]*machine.Machine)
	}
	var missing []string
	if args.Get(1) != nil {
		missing = args.Get(1).([]string)
	}
	return found, missing, args.Error(2)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PedidoRepository() ports.PedidoRepository {
	args := m.Called()
	return args.Get(0).(ports.PedidoRepository)
}

func (m *MockUoW) MachineRepository() ports.MachineRepository {
	args := m.Called()
	return args.Get(0).(ports.MachineRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPedidoUoWFactory struct{ mock.Mock }

func (m *MockPedidoUoWFactory) Create() commands.PedidoUoW {
	args := m.Called()
	return args.Get(0).(commands.PedidoUoW)
}

type MockMachineUoWFactory struct{ mock.Mock }

func (m *MockMachineUoWFactory) Create() commands.MachineUoW {
	args := m.Called()
	return args.Get(0).(commands.MachineUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, event ports.Event) {
	m.Called(ctx, event)
}
