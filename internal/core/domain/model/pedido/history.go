package pedido

import (
	"fmt"
	"strings"
	"time"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"
)

// Action tags one kind of lifecycle transition in the audit history.
type Action int

const (
	// ActionUnknown is never valid; it catches uninitialized values.
	ActionUnknown Action = iota

	// ActionCreated: the pedido was submitted.
	ActionCreated

	// ActionMachinesAssigned: the depot bound concrete machines to the pedido.
	ActionMachinesAssigned

	// ActionStatusUpdated tags plain workflow status changes. No current
	// operation emits it, but it remains a valid tag so seed and legacy
	// histories round-trip.
	ActionStatusUpdated

	// ActionDelivered: the machines were handed over.
	ActionDelivered

	// ActionReturnRegistered: the requester registered a return.
	ActionReturnRegistered

	// ActionReturnConfirmed: the depot confirmed returned/missing machines.
	ActionReturnConfirmed

	// ActionMissingDeclared: missing machines were declared returned late.
	ActionMissingDeclared

	// ActionAdminStatusOverride: an admin forced the status directly.
	ActionAdminStatusOverride
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionCreated:             "CREATED",
		ActionMachinesAssigned:    "MACHINES_ASSIGNED",
		ActionStatusUpdated:       "STATUS_UPDATED",
		ActionDelivered:           "DELIVERED",
		ActionReturnRegistered:    "RETURN_REGISTERED",
		ActionReturnConfirmed:     "RETURN_CONFIRMED",
		ActionMissingDeclared:     "MISSING_DECLARED",
		ActionAdminStatusOverride: "ADMIN_STATUS_OVERRIDE",
	}
}

// ParseAction resolves an action tag from its persisted token.
func ParseAction(s string) (Action, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for action, token := range getActionStrings() {
		if normalized == token {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action",
		fmt.Errorf("%q is not a valid history action", s),
	)
}

// Validate checks that the Action is one of the defined tags.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%d is not a valid history action", a),
		)
	}
	return nil
}

// String returns the canonical tag, e.g. "RETURN_CONFIRMED".
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// TypeCount is one row of the requested-vs-assigned comparison recorded on a
// MACHINES_ASSIGNED entry.
type TypeCount struct {
	Type      string `json:"tipo"`
	Requested int    `json:"solicitadas"`
	Assigned  int    `json:"asignadas"`
}

// Detail is the structured payload of a history entry. Fields are
// action-specific and serialized under the keys consumers read; entries only
// populate the fields relevant to their action, everything else is omitted.
type Detail struct {
	Mensaje              string             `json:"mensaje,omitempty"`
	Justificacion        string             `json:"justificacion,omitempty"`
	Observacion          string             `json:"observacion,omitempty"`
	Asignadas            []machine.Snapshot `json:"asignadas,omitempty"`
	Comparacion          []TypeCount        `json:"comparacion,omitempty"`
	Devueltas            []string           `json:"devueltas,omitempty"`
	Faltantes            []string           `json:"faltantes,omitempty"`
	DevueltasConfirmadas []string           `json:"devueltasConfirmadas,omitempty"`
	FaltantesConfirmados []string           `json:"faltantesConfirmados,omitempty"`
	DevueltasDeclaradas  []string           `json:"devueltasDeclaradas,omitempty"`
	Estado               string             `json:"estado,omitempty"`
}

// HistoryEntry is one immutable audit record of a lifecycle transition.
// Entries are appended in timestamp order and never rewritten or removed.
type HistoryEntry struct {
	action    Action
	actor     string
	timestamp time.Time
	detail    Detail
}

// newHistoryEntry stamps a fresh entry with the current time.
func newHistoryEntry(action Action, actor string, detail Detail) HistoryEntry {
	return HistoryEntry{
		action:    action,
		actor:     actor,
		timestamp: time.Now().UTC(),
		detail:    detail,
	}
}

// RestoreHistoryEntry reconstructs an entry from persistence.
func RestoreHistoryEntry(action Action, actor string, timestamp time.Time, detail Detail) HistoryEntry {
	return HistoryEntry{
		action:    action,
		actor:     actor,
		timestamp: timestamp,
		detail:    detail,
	}
}

// Action returns the transition tag.
func (e HistoryEntry) Action() Action { return e.action }

// Actor returns who performed the transition.
func (e HistoryEntry) Actor() string { return e.actor }

// Timestamp returns when the entry was appended.
func (e HistoryEntry) Timestamp() time.Time { return e.timestamp }

// Detail returns the action-specific payload.
func (e HistoryEntry) Detail() Detail { return e.detail }
