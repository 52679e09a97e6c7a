package machine_test

import (
	"testing"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, id string, state machine.State) *machine.Machine {
	t.Helper()
	m, err := machine.NewMachine(id, "MOTOGUADAÑA", "Stihl FS 280", "SN-123", "Store A", state)
	require.NoError(t, err)
	return m
}

func TestNewMachine(t *testing.T) {
	t.Run("creates a valid machine", func(t *testing.T) {
		m := newTestMachine(t, "M-01", machine.Available)

		assert.Equal(t, "M-01", m.ID())
		assert.Equal(t, "MOTOGUADAÑA", m.Type())
		assert.Equal(t, "Stihl FS 280", m.Model())
		assert.Equal(t, "SN-123", m.Serial())
		assert.Equal(t, "Store A", m.Service())
		assert.Equal(t, machine.Available, m.State())
		require.NoError(t, m.Validate())
	})

	t.Run("requires id and type", func(t *testing.T) {
		_, err := machine.NewMachine("", "MOTOGUADAÑA", "", "", "", machine.Available)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = machine.NewMachine("M-01", "", "", "", "", machine.Available)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid state", func(t *testing.T) {
		_, err := machine.NewMachine("M-01", "MOTOGUADAÑA", "", "", "", machine.StateUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m machine.Machine
		require.ErrorIs(t, m.Validate(), machine.ErrMachineIsNotConstructed)

		var nilMachine *machine.Machine
		require.ErrorIs(t, nilMachine.Validate(), machine.ErrMachineIsNotConstructed)
	})
}

func TestMachine_Assign(t *testing.T) {
	t.Run("assigns an available machine", func(t *testing.T) {
		m := newTestMachine(t, "M-01", machine.Available)

		require.NoError(t, m.Assign())
		assert.Equal(t, machine.Assigned, m.State())
		assert.False(t, m.IsAvailable())
	})

	t.Run("conflicts for any other state", func(t *testing.T) {
		for _, state := range []machine.State{
			machine.Assigned, machine.NotReturned, machine.OutOfService,
			machine.UnderRepair, machine.Decommissioned,
		} {
			m := newTestMachine(t, "M-02", state)

			err := m.Assign()
			require.ErrorIs(t, err, errs.ErrConflict)
			assert.Contains(t, err.Error(), state.String())
			assert.Equal(t, state, m.State(), "rejected assignment must not mutate state")
		}
	})
}

func TestMachine_ReturnTransitions(t *testing.T) {
	m := newTestMachine(t, "M-01", machine.Available)
	require.NoError(t, m.Assign())

	m.MarkNotReturned()
	assert.Equal(t, machine.NotReturned, m.State())

	// late return of a missing machine
	m.ConfirmReturned()
	assert.Equal(t, machine.Available, m.State())
}

func TestMachine_Release(t *testing.T) {
	m := newTestMachine(t, "M-01", machine.Available)
	require.NoError(t, m.Assign())

	m.Release()
	assert.Equal(t, machine.Available, m.State())
}

func TestMachine_ChangeState(t *testing.T) {
	m := newTestMachine(t, "M-01", machine.Available)

	require.NoError(t, m.ChangeState(machine.UnderRepair))
	assert.Equal(t, machine.UnderRepair, m.State())

	require.ErrorIs(t, m.ChangeState(machine.StateUnknown), errs.ErrValueIsInvalid)
	assert.Equal(t, machine.UnderRepair, m.State())
}

func TestMachine_Decommission(t *testing.T) {
	m := newTestMachine(t, "M-01", machine.Available)

	m.Decommission()
	assert.Equal(t, machine.Decommissioned, m.State())
}

func TestMachine_Snapshot(t *testing.T) {
	m := newTestMachine(t, "M-01", machine.Available)

	snap := m.Snapshot()
	assert.Equal(t, machine.Snapshot{
		ID:     "M-01",
		Type:   "MOTOGUADAÑA",
		Model:  "Stihl FS 280",
		Serial: "SN-123",
	}, snap)

	// snapshot stays fixed when the record changes afterwards
	m.UpdateDetails("Stihl FS 560", "SN-999", "Store B")
	assert.Equal(t, "Stihl FS 280", snap.Model)
}
