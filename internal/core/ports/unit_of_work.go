package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command so
// concurrent operations stay isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. Every lifecycle
// transition runs inside one: order state, history append and machine state
// flips commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// MachineRepository returns a MachineRepository bound to the current
	// transaction.
	MachineRepository() MachineRepository

	// PedidoRepository returns a PedidoRepository bound to the current
	// transaction.
	PedidoRepository() PedidoRepository
}
