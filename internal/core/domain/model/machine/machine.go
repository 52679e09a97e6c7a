package machine

import (
	"errors"
	"fmt"

	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

// ErrMachineIsNotConstructed is returned when a Machine instance was not
// created through NewMachine or RestoreMachine.
var ErrMachineIsNotConstructed = errors.New("Machine must be created via NewMachine or RestoreMachine")

// Machine is the aggregate root for one rentable inventory unit.
//
// Invariants:
//   - id and machineType are non-empty; id is externally assigned and unique
//   - state is always one of the six enumerated values
//   - state is mutated only by admin edits and by the order engine during
//     assignment and return confirmation
//   - deletion is logical: Decommission flips the state to baja, the record
//     stays while orders reference it
type Machine struct {
	// id is the externally assigned inventory code, e.g. "M-01".
	id string

	// machineType is the category used to match requested quantities, e.g. "MOTOGUADAÑA".
	machineType string

	model  string
	serial string

	// service is the optional site currently holding the machine.
	service string

	state State

	guard guard.ConstructorGuard
}

// NewMachine creates a machine record with validation. State goes through
// Validate, so callers normalizing free-form input should run ParseState first.
func NewMachine(id, machineType, model, serial, service string, state State) (*Machine, error) {
	m := &Machine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setType(machineType),
		m.setState(state),
	); err != nil {
		return nil, err
	}

	m.model = model
	m.serial = serial
	m.service = service
	return m, nil
}

// RestoreMachine reconstructs a machine from persistence.
func RestoreMachine(id, machineType, model, serial, service string, state State) (*Machine, error) {
	return NewMachine(id, machineType, model, serial, service, state)
}

// Validate ensures the Machine was created through a constructor.
func (m *Machine) Validate() error {
	if m == nil {
		return ErrMachineIsNotConstructed
	}
	return m.guard.Validate(ErrMachineIsNotConstructed)
}

// ID returns the external inventory code.
func (m *Machine) ID() string { return m.id }

// Type returns the machine category.
func (m *Machine) Type() string { return m.machineType }

// Model returns the machine model.
func (m *Machine) Model() string { return m.model }

// Serial returns the optional serial number.
func (m *Machine) Serial() string { return m.serial }

// Service returns the optional service association.
func (m *Machine) Service() string { return m.service }

// State returns the current inventory state.
func (m *Machine) State() State { return m.state }

// IsAvailable reports whether the machine can be assigned to a pedido.
func (m *Machine) IsAvailable() bool {
	return m.state == Available
}

// Assign flips the machine to asignada. Only available machines can be
// assigned; anything else is a conflict carrying the current state so the
// caller can report it.
func (m *Machine) Assign() error {
	if m.state != Available {
		return errs.NewConflictError(
			"maquina",
			fmt.Sprintf("%s is %s", m.id, m.state),
		)
	}
	m.state = Assigned
	return nil
}

// ConfirmReturned flips the machine back to disponible after the depot
// confirms its return, whether from an active assignment or a late return of
// a machine previously flagged no_devuelta.
func (m *Machine) ConfirmReturned() {
	m.state = Available
}

// MarkNotReturned flags the machine as missing after depot confirmation.
func (m *Machine) MarkNotReturned() {
	m.state = NotReturned
}

// Release puts the machine back to disponible when the pedido referencing it
// is administratively deleted.
func (m *Machine) Release() {
	m.state = Available
}

// Decommission logically deletes the machine.
func (m *Machine) Decommission() {
	m.state = Decommissioned
}

// ChangeState applies a direct administrative edit. The target must be one of
// the six enumerated values; no workflow precondition applies.
func (m *Machine) ChangeState(target State) error {
	if err := target.Validate(); err != nil {
		return err
	}
	m.state = target
	return nil
}

// UpdateDetails applies an administrative edit of the descriptive fields.
func (m *Machine) UpdateDetails(model, serial, service string) {
	m.model = model
	m.serial = serial
	m.service = service
}

// Snapshot captures the machine's identifying fields at assignment time.
// Snapshots stored on a pedido stay fixed even if the machine record later
// changes.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		ID:     m.id,
		Type:   m.machineType,
		Model:  m.model,
		Serial: m.serial,
	}
}

func (m *Machine) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("machine id")
	}
	m.id = id
	return nil
}

func (m *Machine) setType(machineType string) error {
	if machineType == "" {
		return errs.NewValueIsRequiredError("machine type")
	}
	m.machineType = machineType
	return nil
}

func (m *Machine) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	m.state = state
	return nil
}

// Snapshot is the immutable view of a machine captured when it is assigned
// to a pedido.
type Snapshot struct {
	ID     string `json:"id"`
	Type   string `json:"tipo"`
	Model  string `json:"modelo"`
	Serial string `json:"serial,omitempty"`
}
