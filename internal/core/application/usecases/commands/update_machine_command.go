package commands

import (
	"errors"
	"strings"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

var ErrUpdateMachineCommandIsNotConstructed = errors.New(
	"UpdateMachineCommand must be created via NewUpdateMachineCommand constructor",
)

// UpdateMachineCommand edits a machine's descriptive fields and, optionally,
// forces its state. An empty estado leaves the state untouched; this is the
// one place where an estado token is not coerced, so typos surface instead
// of silently flipping the machine to disponible.
type UpdateMachineCommand struct { //nolint:recvcheck //using for validation
	machineID string
	model     string
	serial    string
	service   string
	state     machine.State
	hasState  bool

	guard guard.ConstructorGuard
}

// NewUpdateMachineCommand creates a command to update a machine.
func NewUpdateMachineCommand(
	machineID, model, serial, service, estado string,
) (UpdateMachineCommand, error) {
	cmd := UpdateMachineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(machineID) == "" {
		return UpdateMachineCommand{}, errs.NewValueIsRequiredError("id")
	}

	if strings.TrimSpace(estado) != "" {
		state := machine.ParseState(estado)
		// ParseState coerces unknown tokens to disponible; an explicit
		// state edit must name a real state.
		if state == machine.Available && normalizeStateToken(estado) != machine.Available.String() {
			return UpdateMachineCommand{}, errs.NewValueIsInvalidError("estado")
		}
		cmd.state = state
		cmd.hasState = true
	}

	cmd.machineID = machineID
	cmd.model = model
	cmd.serial = serial
	cmd.service = service
	return cmd, nil
}

func normalizeStateToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

// Validate ensures the command was created through the constructor.
func (c UpdateMachineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMachineCommandIsNotConstructed)
}

// MachineID returns the machine to update.
func (c UpdateMachineCommand) MachineID() string { return c.machineID }

// Model returns the new model label.
func (c UpdateMachineCommand) Model() string { return c.model }

// Serial returns the new serial number.
func (c UpdateMachineCommand) Serial() string { return c.serial }

// Service returns the new service association.
func (c UpdateMachineCommand) Service() string { return c.service }

// State returns the forced state; meaningful only when HasState is true.
func (c UpdateMachineCommand) State() machine.State { return c.state }

// HasState reports whether the command carries a state change.
func (c UpdateMachineCommand) HasState() bool { return c.hasState }
