package queries

import (
	"errors"
	"strings"

	"fleetrent/internal/pkg/guard"
)

var ErrListMachinesQueryIsNotConstructed = errors.New(
	"ListMachinesQuery must be created via NewListMachinesQuery constructor",
)

// ListMachinesQuery retrieves the machine inventory, optionally filtered by
// type.
type ListMachinesQuery struct {
	machineType string

	guard guard.ConstructorGuard
}

// NewListMachinesQuery creates an inventory list query. An empty type lists
// every machine.
func NewListMachinesQuery(machineType string) ListMachinesQuery {
	return ListMachinesQuery{
		machineType: strings.TrimSpace(machineType),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListMachinesQuery) Validate() error {
	return q.guard.Validate(ErrListMachinesQueryIsNotConstructed)
}

// MachineType returns the type filter; empty means no filter.
func (q ListMachinesQuery) MachineType() string { return q.machineType }

// ListMachinesQueryResponse is one machine row of the inventory view.
type ListMachinesQueryResponse struct {
	ID      string `json:"id"`
	Type    string `json:"tipo"`
	Model   string `json:"modelo,omitempty"`
	Serial  string `json:"serial,omitempty"`
	Service string `json:"servicio,omitempty"`
	State   string `json:"estado"`
}
