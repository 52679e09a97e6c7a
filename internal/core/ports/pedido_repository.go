package ports

import (
	"context"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/pedido"
)

// PedidoRepository defines the persistence contract for pedido aggregates,
// including their history rows.
type PedidoRepository interface {
	// NextID allocates the next sequential pedido code. Must be called
	// inside the transaction that will persist the new pedido so codes stay
	// gapless under concurrent creation.
	NextID(ctx context.Context) (kernel.OrderID, error)

	// Add persists a new pedido with its history.
	Add(ctx context.Context, p *pedido.Pedido) error

	// Update persists changes to an existing pedido. History entries are
	// append-only: existing rows are never rewritten, new ones are inserted.
	Update(ctx context.Context, p *pedido.Pedido) error

	// Get retrieves a pedido with its complete history.
	Get(ctx context.Context, id kernel.OrderID) (*pedido.Pedido, error)

	// GetAllInStatus retrieves every pedido currently in the given status.
	GetAllInStatus(ctx context.Context, status pedido.Status) ([]*pedido.Pedido, error)

	// Delete removes the pedido and all its history rows. The caller
	// releases the assigned machines in the same transaction.
	Delete(ctx context.Context, id kernel.OrderID) error
}
