package commands

import (
	"errors"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/guard"
)

var ErrRegisterMachineCommandIsNotConstructed = errors.New(
	"RegisterMachineCommand must be created via NewRegisterMachineCommand constructor",
)

// RegisterMachineCommand adds a machine to the inventory. The estado token
// is normalized through ParseState, so an absent or unknown token registers
// the machine as disponible.
type RegisterMachineCommand struct { //nolint:recvcheck //using for validation
	machine *machine.Machine

	guard guard.ConstructorGuard
}

// NewRegisterMachineCommand creates a command to register a machine. Field
// validation is delegated to the Machine constructor.
func NewRegisterMachineCommand(
	id, machineType, model, serial, service, estado string,
) (RegisterMachineCommand, error) {
	m, err := machine.NewMachine(id, machineType, model, serial, service, machine.ParseState(estado))
	if err != nil {
		return RegisterMachineCommand{}, err
	}

	return RegisterMachineCommand{
		machine: m,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMachineCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMachineCommandIsNotConstructed)
}

// Machine returns the machine to register.
func (c RegisterMachineCommand) Machine() *machine.Machine { return c.machine }
