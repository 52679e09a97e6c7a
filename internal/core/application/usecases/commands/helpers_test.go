package commands_test

import (
	"testing"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"

	"github.com/stretchr/testify/require"
)

func testOrderID(t *testing.T, seq int) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)
	return id
}

func testActor(t *testing.T, name string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(name)
	require.NoError(t, err)
	return actor
}

func testMachine(t *testing.T, id, machineType string, state machine.State) *machine.Machine {
	t.Helper()
	m, err := machine.NewMachine(id, machineType, "GX-200", "SN-"+id, "obras", state)
	require.NoError(t, err)
	return m
}

func testPedidoPending(t *testing.T, requestedItems map[string]int) *pedido.Pedido {
	t.Helper()
	p, err := pedido.NewPedido(testOrderID(t, 1), "jgarcia", "obras", requestedItems, "")
	require.NoError(t, err)
	return p
}

// testPedidoPrepared walks a fresh pedido through assignment so its status
// and assigned set are consistent with real history.
func testPedidoPrepared(t *testing.T, machines ...*machine.Machine) *pedido.Pedido {
	t.Helper()

	requested := map[string]int{}
	snapshots := make([]machine.Snapshot, 0, len(machines))
	for _, m := range machines {
		requested[m.Type()]++
		snapshots = append(snapshots, m.Snapshot())
	}

	p := testPedidoPending(t, requested)
	require.NoError(t, p.Assign(snapshots, nil, "", testActor(t, "deposito")))
	return p
}

func testPedidoDelivered(t *testing.T, machines ...*machine.Machine) *pedido.Pedido {
	t.Helper()
	p := testPedidoPrepared(t, machines...)
	require.NoError(t, p.MarkDelivered("", testActor(t, "deposito")))
	return p
}

func testPedidoPendingConfirmation(
	t *testing.T,
	returned []string,
	justification string,
	machines ...*machine.Machine,
) *pedido.Pedido {
	t.Helper()
	p := testPedidoDelivered(t, machines...)
	require.NoError(t, p.RegisterReturn(returned, justification, testActor(t, "jgarcia")))
	return p
}
