package services

import (
	"fmt"
	"sort"
	"strings"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/errs"
)

// MachineAssigner is the domain service that binds concrete machines to a
// pedido. It owns the cross-aggregate rules of the assignment step:
//
//   - every proposed machine must currently be disponible, otherwise the
//     whole assignment conflicts, listing the offenders with their states
//   - the per-type counts of the proposal are compared against the requested
//     quantities; an inequality on a requested type makes a non-empty
//     justification mandatory
//   - on success the pedido snapshots the machines and advances to PREPARADO
//     while every machine flips to asignada
//
// The caller persists both sides in one transaction so a rejected or failed
// assignment never leaves partial state behind.
type MachineAssigner struct{}

// NewMachineAssigner creates a MachineAssigner instance.
func NewMachineAssigner() MachineAssigner {
	return MachineAssigner{}
}

// Assign executes the assignment workflow against the pedido and the
// proposed machines. Types absent from the requested map are unconstrained:
// they show up in the comparison rows but never force a justification.
func (a MachineAssigner) Assign(
	p *pedido.Pedido,
	machines []*machine.Machine,
	justification string,
	actor kernel.Actor,
) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(machines) == 0 {
		return errs.NewValueIsRequiredError("asignadas")
	}
	for _, m := range machines {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	if unavailable := collectUnavailable(machines); len(unavailable) > 0 {
		return errs.NewConflictError("maquinas", strings.Join(unavailable, ", "))
	}

	comparison, mismatch := CompareCounts(p.RequestedItems(), machines)
	if mismatch && strings.TrimSpace(justification) == "" {
		return errs.NewValueIsRequiredError("justificacion")
	}

	snapshots := make([]machine.Snapshot, 0, len(machines))
	for _, m := range machines {
		snapshots = append(snapshots, m.Snapshot())
	}

	if err := p.Assign(snapshots, comparison, justification, actor); err != nil {
		return err
	}

	for _, m := range machines {
		if err := m.Assign(); err != nil {
			return err
		}
	}
	return nil
}

// CompareCounts builds the per-type comparison between requested quantities
// and a proposed machine list, sorted by type for stable history output.
// mismatch is true when a requested type's assigned count differs from its
// requested count; unrequested types are recorded but not constrained.
func CompareCounts(requested map[string]int, machines []*machine.Machine) ([]pedido.TypeCount, bool) {
	assigned := make(map[string]int, len(requested))
	for _, m := range machines {
		assigned[m.Type()]++
	}

	types := make(map[string]struct{}, len(requested)+len(assigned))
	for t := range requested {
		types[t] = struct{}{}
	}
	for t := range assigned {
		types[t] = struct{}{}
	}

	comparison := make([]pedido.TypeCount, 0, len(types))
	mismatch := false
	for t := range types {
		row := pedido.TypeCount{
			Type:      t,
			Requested: requested[t],
			Assigned:  assigned[t],
		}
		if _, wasRequested := requested[t]; wasRequested && row.Requested != row.Assigned {
			mismatch = true
		}
		comparison = append(comparison, row)
	}

	sort.Slice(comparison, func(i, j int) bool {
		return comparison[i].Type < comparison[j].Type
	})
	return comparison, mismatch
}

func collectUnavailable(machines []*machine.Machine) []string {
	var unavailable []string
	for _, m := range machines {
		if !m.IsAvailable() {
			unavailable = append(unavailable, fmt.Sprintf("%s is %s", m.ID(), m.State()))
		}
	}
	return unavailable
}
