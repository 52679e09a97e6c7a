package machine

import (
	"fmt"
	"strings"

	"fleetrent/internal/pkg/errs"
)

// State represents the inventory lifecycle state of a machine.
//
// State transitions driven by the order engine:
//
//	disponible ──> asignada ──┬──> disponible   (return confirmed)
//	                          └──> no_devuelta  (missing confirmed)
//	no_devuelta ──> disponible                  (late return confirmed)
//
// fuera_de_servicio, en_reparacion and baja are set only by direct
// administrative edits. baja is the logical-delete state: machines are never
// physically removed while orders reference them.
type State int

const (
	// StateUnknown is the zero value and is never valid. It helps catch
	// uninitialized State values.
	StateUnknown State = iota

	// Available (disponible): the machine can be assigned to a pedido.
	Available

	// Assigned (asignada): the machine is bound to a pedido in flight.
	Assigned

	// NotReturned (no_devuelta): the depot confirmed the machine missing.
	NotReturned

	// OutOfService (fuera_de_servicio): administratively withdrawn.
	OutOfService

	// UnderRepair (en_reparacion): in the workshop.
	UnderRepair

	// Decommissioned (baja): logically deleted.
	Decommissioned
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "desconocido",
		Available:      "disponible",
		Assigned:       "asignada",
		NotReturned:    "no_devuelta",
		OutOfService:   "fuera_de_servicio",
		UnderRepair:    "en_reparacion",
		Decommissioned: "baja",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		Available:      "disponible",
		Assigned:       "asignada",
		NotReturned:    "no_devuelta",
		OutOfService:   "fuera_de_servicio",
		UnderRepair:    "en_reparacion",
		Decommissioned: "baja",
	}
}

// ParseState is the single canonical normalization for machine states.
// Input is lowercased and spaces/hyphens become underscores, so "Disponible",
// "NO DEVUELTA" and "no-devuelta" all resolve to their canonical token.
// Anything unrecognized (including the empty string) normalizes to Available,
// which is the documented behavior for seed imports with free-form states.
func ParseState(s string) State {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	for state, token := range getValidStateStrings() {
		if normalized == token {
			return state
		}
	}
	return Available
}

// Validate checks that the State is one of the six enumerated values.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"machine state",
			fmt.Errorf("%d is not a valid machine state", s),
		)
	}
	return nil
}

// String returns the canonical token, e.g. "disponible".
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "desconocido"
}
