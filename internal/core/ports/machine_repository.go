// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the notification
// boundary. Adapters implement these interfaces; use cases depend on them.
package ports

import (
	"context"

	"fleetrent/internal/core/domain/model/machine"
)

// MachineRepository defines the persistence contract for machine aggregates.
type MachineRepository interface {
	// Add persists a new machine. A machine with the same external id must
	// not already exist.
	Add(ctx context.Context, m *machine.Machine) error

	// Update persists changes to an existing machine.
	Update(ctx context.Context, m *machine.Machine) error

	// Get retrieves a machine by its external id.
	Get(ctx context.Context, id string) (*machine.Machine, error)

	// GetByIDs retrieves the named machines, locking the rows for the
	// duration of the surrounding transaction so concurrent assignments of
	// the same machine are serialized. Ids with no matching row are returned
	// in missing; the call itself only errors on infrastructure failures.
	GetByIDs(ctx context.Context, ids []string) (found []*machine.Machine, missing []string, err error)
}
