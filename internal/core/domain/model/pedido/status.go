package pedido

import (
	"fmt"
	"strings"

	"fleetrent/internal/pkg/errs"
)

// Status represents the lifecycle state of a pedido.
// It implements a state machine with defined transitions so orders follow the
// request/assignment/return workflow.
//
// State transitions:
//
//	PENDIENTE_PREPARACION ──> PREPARADO ──> ENTREGADO ──> PENDIENTE_CONFIRMACION ──> CERRADO
//	                                                                                   │
//	                                       PENDIENTE_CONFIRMACION_FALTANTES <──────────┘
//	                                                     │          (missing machines
//	                                                     └──> CERRADO    declared returned)
//
// Status is a value object that validates state transitions and provides the
// canonical string tokens used for persistence and the HTTP surface.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// PendingPreparation (PENDIENTE_PREPARACION) is the initial status: the
	// pedido was submitted and awaits machine assignment by the depot.
	PendingPreparation

	// Prepared (PREPARADO): machines are assigned and snapshotted.
	Prepared

	// Delivered (ENTREGADO): the machines were handed over to the requester.
	Delivered

	// PendingConfirmation (PENDIENTE_CONFIRMACION): the requester registered
	// a return and the depot has not yet confirmed it.
	PendingConfirmation

	// Closed (CERRADO) is the terminal status after depot confirmation.
	Closed

	// PendingConfirmationMissing (PENDIENTE_CONFIRMACION_FALTANTES): a closed
	// pedido with missing machines had some of them declared returned late
	// and awaits one more depot confirmation.
	PendingConfirmationMissing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:              "DESCONOCIDO",
		PendingPreparation:         "PENDIENTE_PREPARACION",
		Prepared:                   "PREPARADO",
		Delivered:                  "ENTREGADO",
		PendingConfirmation:        "PENDIENTE_CONFIRMACION",
		Closed:                     "CERRADO",
		PendingConfirmationMissing: "PENDIENTE_CONFIRMACION_FALTANTES",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPreparation:         "PENDIENTE_PREPARACION",
		Prepared:                   "PREPARADO",
		Delivered:                  "ENTREGADO",
		PendingConfirmation:        "PENDIENTE_CONFIRMACION",
		Closed:                     "CERRADO",
		PendingConfirmationMissing: "PENDIENTE_CONFIRMACION_FALTANTES",
	}
}

// ParseStatus is the single canonical normalization for pedido statuses.
// Input is uppercased and spaces/hyphens become underscores. Unlike machine
// states there is no fallback: an unrecognized token is a validation error,
// which is what the admin override contract requires.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	for status, token := range getValidStatusStrings() {
		if normalized == token {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"estado",
		fmt.Errorf("%q is not a valid pedido status", s),
	)
}

// Validate checks that the Status is one of the six valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"estado",
			fmt.Errorf("%d is not a valid pedido status", s),
		)
	}
	return nil
}

// String returns the canonical token, e.g. "PENDIENTE_PREPARACION".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// Prepare transitions the status to Prepared after machine assignment.
// Only valid from PendingPreparation.
func (s Status) Prepare() (Status, error) {
	if s != PendingPreparation {
		return 0, s.transitionError(PendingPreparation)
	}
	return Prepared, nil
}

// Deliver transitions the status to Delivered.
// Only valid from Prepared.
func (s Status) Deliver() (Status, error) {
	if s != Prepared {
		return 0, s.transitionError(Prepared)
	}
	return Delivered, nil
}

// RegisterReturn transitions the status to PendingConfirmation when the
// requester registers a return. Only valid from Delivered.
func (s Status) RegisterReturn() (Status, error) {
	if s != Delivered {
		return 0, s.transitionError(Delivered)
	}
	return PendingConfirmation, nil
}

// Close transitions the status to Closed after depot confirmation.
// Confirmation carries no state precondition: the depot can close a pedido
// from any live status, including re-closing an already closed one.
func (s Status) Close() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Closed, nil
}

// DeclareMissing transitions a closed pedido back into the confirmation
// branch when missing machines are declared returned late.
func (s Status) DeclareMissing() (Status, error) {
	if s != Closed {
		return 0, s.transitionError(Closed)
	}
	return PendingConfirmationMissing, nil
}

func (s Status) transitionError(required Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"estado",
		fmt.Errorf("pedido is %s, must be %s", s, required),
	)
}
