package pedido

import (
	"errors"
	"fmt"
	"strings"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

// ErrPedidoIsNotConstructed is returned when a Pedido instance was not
// created through NewPedido or RestorePedido.
var ErrPedidoIsNotConstructed = errors.New("Pedido must be created via NewPedido or RestorePedido")

// Pedido is the aggregate root for one machine rental order. It owns the
// lifecycle state machine, the requested-vs-assigned bookkeeping, and the
// append-only audit history.
//
// Invariants:
//   - status transitions follow the directed graph documented on Status
//   - requestedItems is preserved verbatim as originally submitted
//   - assignedItems is empty until assignment and then a fixed snapshot,
//     decoupled from the live machine records
//   - history entries are appended on every transition and never rewritten;
//     the "has missing machines" flag is always derived from history, never
//     stored
type Pedido struct {
	id        kernel.OrderID
	requester string
	service   string
	status    Status

	// requestedItems maps machine type to requested quantity.
	requestedItems map[string]int

	// assignedItems holds the machine snapshots captured at assignment time.
	assignedItems []machine.Snapshot

	// returnedItems is nil until the requester registers a return.
	returnedItems []string

	note    string
	history []HistoryEntry

	guard guard.ConstructorGuard
}

// NewPedido creates a pedido in PENDIENTE_PREPARACION with a CREATED history
// entry. Requester and service are required; every requested quantity must be
// positive. The requested map is copied so later caller mutation cannot leak in.
func NewPedido(
	id kernel.OrderID,
	requester string,
	service string,
	requestedItems map[string]int,
	note string,
) (*Pedido, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if requester == "" {
		return nil, errs.NewValueIsRequiredError("requesterUsername")
	}
	if strings.TrimSpace(service) == "" {
		return nil, errs.NewValueIsRequiredError("servicio")
	}
	if len(requestedItems) == 0 {
		return nil, errs.NewValueIsRequiredError("itemsSolicitados")
	}

	requested := make(map[string]int, len(requestedItems))
	for machineType, qty := range requestedItems {
		if machineType == "" {
			return nil, errs.NewValueIsRequiredError("itemsSolicitados: tipo")
		}
		if qty <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"itemsSolicitados",
				fmt.Errorf("quantity for %s is %d, must be greater than 0", machineType, qty),
			)
		}
		requested[machineType] = qty
	}

	p := &Pedido{
		id:             id,
		requester:      requester,
		service:        service,
		status:         PendingPreparation,
		requestedItems: requested,
		note:           note,
		guard:          guard.NewConstructorGuard(),
	}

	p.appendHistory(ActionCreated, requester, Detail{
		Mensaje: fmt.Sprintf("pedido %s creado para %s", id, service),
	})
	return p, nil
}

// RestorePedido reconstructs a pedido from persistence without appending
// history. The stored status and history are taken as-is.
func RestorePedido(
	id kernel.OrderID,
	requester string,
	service string,
	status Status,
	requestedItems map[string]int,
	assignedItems []machine.Snapshot,
	returnedItems []string,
	note string,
	history []HistoryEntry,
) (*Pedido, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if requester == "" {
		return nil, errs.NewValueIsRequiredError("requesterUsername")
	}
	if service == "" {
		return nil, errs.NewValueIsRequiredError("servicio")
	}

	return &Pedido{
		id:             id,
		requester:      requester,
		service:        service,
		status:         status,
		requestedItems: requestedItems,
		assignedItems:  assignedItems,
		returnedItems:  returnedItems,
		note:           note,
		history:        history,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Pedido was created through a constructor.
func (p *Pedido) Validate() error {
	if p == nil {
		return ErrPedidoIsNotConstructed
	}
	return p.guard.Validate(ErrPedidoIsNotConstructed)
}

// ID returns the pedido code.
func (p *Pedido) ID() kernel.OrderID { return p.id }

// Requester returns the username that submitted the pedido.
func (p *Pedido) Requester() string { return p.requester }

// Service returns the destination service label.
func (p *Pedido) Service() string { return p.service }

// Status returns the current lifecycle status.
func (p *Pedido) Status() Status { return p.status }

// Note returns the optional free-text note.
func (p *Pedido) Note() string { return p.note }

// RequestedItems returns a copy of the type-to-quantity request, verbatim as
// originally submitted.
func (p *Pedido) RequestedItems() map[string]int {
	items := make(map[string]int, len(p.requestedItems))
	for k, v := range p.requestedItems {
		items[k] = v
	}
	return items
}

// AssignedItems returns a copy of the machine snapshots captured at
// assignment time.
func (p *Pedido) AssignedItems() []machine.Snapshot {
	return append([]machine.Snapshot(nil), p.assignedItems...)
}

// AssignedIDs returns the ids of the assigned machines in assignment order.
func (p *Pedido) AssignedIDs() []string {
	ids := make([]string, 0, len(p.assignedItems))
	for _, snap := range p.assignedItems {
		ids = append(ids, snap.ID)
	}
	return ids
}

// ReturnedItems returns a copy of the registered return list, or nil if no
// return has been registered.
func (p *Pedido) ReturnedItems() []string {
	if p.returnedItems == nil {
		return nil
	}
	return append([]string(nil), p.returnedItems...)
}

// History returns a copy of the audit trail, ordered by timestamp ascending.
func (p *Pedido) History() []HistoryEntry {
	return append([]HistoryEntry(nil), p.history...)
}

// IsEqual compares two pedidos by their codes.
func (p *Pedido) IsEqual(other *Pedido) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Assign snapshots the proposed machines into the pedido and advances it to
// PREPARADO. The caller (the MachineAssigner domain service) has already
// verified availability and computed the per-type comparison; this method
// enforces the status precondition and records the transition.
func (p *Pedido) Assign(
	snapshots []machine.Snapshot,
	comparison []TypeCount,
	justification string,
	actor kernel.Actor,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return errs.NewValueIsRequiredError("asignadas")
	}

	newStatus, err := p.status.Prepare()
	if err != nil {
		return err
	}

	p.assignedItems = append([]machine.Snapshot(nil), snapshots...)
	p.status = newStatus
	p.appendHistory(ActionMachinesAssigned, actor.String(), Detail{
		Asignadas:     p.assignedItems,
		Comparacion:   comparison,
		Justificacion: justification,
	})
	return nil
}

// MarkDelivered advances the pedido from PREPARADO to ENTREGADO.
func (p *Pedido) MarkDelivered(note string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.appendHistory(ActionDelivered, actor.String(), Detail{
		Observacion: note,
	})
	return nil
}

// RegisterReturn records the requester-initiated return list and advances to
// PENDIENTE_CONFIRMACION. Machines in the assignment but absent from returned
// are the missing set; a non-empty missing set requires a justification.
// Machine states are not touched here: confirmation is the depot's step.
func (p *Pedido) RegisterReturn(returned []string, justification string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if unknown := subtract(returned, p.AssignedIDs()); len(unknown) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"devueltas",
			fmt.Errorf("machines not assigned to this pedido: %s", strings.Join(unknown, ", ")),
		)
	}

	missing := subtract(p.AssignedIDs(), returned)
	if len(missing) > 0 && strings.TrimSpace(justification) == "" {
		return errs.NewValueIsRequiredError("justificacion")
	}

	newStatus, err := p.status.RegisterReturn()
	if err != nil {
		return err
	}

	p.returnedItems = append([]string{}, returned...)
	p.status = newStatus
	p.appendHistory(ActionReturnRegistered, actor.String(), Detail{
		Devueltas:     append([]string{}, returned...),
		Faltantes:     missing,
		Justificacion: justification,
	})
	return nil
}

// ConfirmReturn records the depot's verdict and closes the pedido. The
// confirmation carries no state precondition: the depot can close from any
// live status. The confirmed sets must be disjoint and drawn from the
// assignment. Machine state flips are coordinated by the command handler in
// the same transaction.
func (p *Pedido) ConfirmReturn(
	confirmedReturned []string,
	confirmedMissing []string,
	note string,
	actor kernel.Actor,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if overlap := intersect(confirmedReturned, confirmedMissing); len(overlap) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"devueltas/faltantes",
			fmt.Errorf("machines in both sets: %s", strings.Join(overlap, ", ")),
		)
	}
	combined := append(append([]string{}, confirmedReturned...), confirmedMissing...)
	if unknown := subtract(combined, p.AssignedIDs()); len(unknown) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"devueltas/faltantes",
			fmt.Errorf("machines not assigned to this pedido: %s", strings.Join(unknown, ", ")),
		)
	}

	newStatus, err := p.status.Close()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.appendHistory(ActionReturnConfirmed, actor.String(), Detail{
		DevueltasConfirmadas: append([]string{}, confirmedReturned...),
		FaltantesConfirmados: append([]string{}, confirmedMissing...),
		Observacion:          note,
	})
	return nil
}

// DeclareMissingReturned registers the late return of machines the depot had
// confirmed missing, moving the pedido into the second confirmation branch.
// Only valid while CERRADO with a non-empty derived missing set.
func (p *Pedido) DeclareMissingReturned(machineIDs []string, note string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if len(machineIDs) == 0 {
		return errs.NewValueIsRequiredError("devueltas")
	}

	newStatus, err := p.status.DeclareMissing()
	if err != nil {
		return err
	}

	missing := p.MissingMachineIDs()
	if len(missing) == 0 {
		return errs.NewConflictError("pedido", fmt.Sprintf("%s has no missing machines", p.id))
	}
	if unknown := subtract(machineIDs, missing); len(unknown) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"devueltas",
			fmt.Errorf("machines not in the missing set: %s", strings.Join(unknown, ", ")),
		)
	}

	p.status = newStatus
	p.appendHistory(ActionMissingDeclared, actor.String(), Detail{
		DevueltasDeclaradas: append([]string{}, machineIDs...),
		Observacion:         note,
	})
	return nil
}

// OverrideStatus forces the status directly, bypassing workflow
// preconditions. The target must still be one of the six valid statuses.
// No inventory side effects.
func (p *Pedido) OverrideStatus(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	previous := p.status
	p.status = target
	p.appendHistory(ActionAdminStatusOverride, actor.String(), Detail{
		Estado:  target.String(),
		Mensaje: fmt.Sprintf("forced status change from %s", previous),
	})
	return nil
}

// HasMissingMachines derives the "has missing" flag from history: true iff
// the most recent RETURN_CONFIRMED entry carries a non-empty confirmed
// missing set. Recomputed on every call, never stored.
func (p *Pedido) HasMissingMachines() bool {
	return len(p.MissingMachineIDs()) > 0
}

// MissingMachineIDs returns the confirmed-missing set of the most recent
// RETURN_CONFIRMED entry, or nil if no return has been confirmed.
func (p *Pedido) MissingMachineIDs() []string {
	for i := len(p.history) - 1; i >= 0; i-- {
		if p.history[i].action == ActionReturnConfirmed {
			return append([]string(nil), p.history[i].detail.FaltantesConfirmados...)
		}
	}
	return nil
}

func (p *Pedido) appendHistory(action Action, actor string, detail Detail) {
	p.history = append(p.history, newHistoryEntry(action, actor, detail))
}

// subtract returns the elements of a that are not in b, preserving order.
func subtract(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}

	var out []string
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// intersect returns the elements present in both a and b, in a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}

	var out []string
	for _, id := range a {
		if _, ok := inB[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
