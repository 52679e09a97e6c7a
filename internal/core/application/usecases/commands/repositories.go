// Package commands contains the business operations that modify system
// state: the pedido lifecycle transitions and the inventory administration
// operations. It implements the Command pattern for the write side of the
// CQRS split. All commands follow the same shape: a guard-validated command
// struct, a handler owning a unit-of-work factory, and a Handle method that
// runs the whole transition inside one transaction.
package commands

import (
	"context"

	"fleetrent/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, scoped to the aggregates a command actually touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PedidoRepoFactory provides the pedido repository within a transaction.
	PedidoRepoFactory interface {
		PedidoRepository() ports.PedidoRepository
	}

	// MachineRepoFactory provides the machine repository within a transaction.
	MachineRepoFactory interface {
		MachineRepository() ports.MachineRepository
	}

	// PedidoUoW manages transactions for pedido-only operations.
	PedidoUoW interface {
		TxManager
		PedidoRepoFactory
	}

	// PedidoUoWFactory creates pedido unit of work instances.
	PedidoUoWFactory interface {
		Create() PedidoUoW
	}

	// MachineUoW manages transactions for machine-only operations.
	MachineUoW interface {
		TxManager
		MachineRepoFactory
	}

	// MachineUoWFactory creates machine unit of work instances.
	MachineUoWFactory interface {
		Create() MachineUoW
	}

	// UoW manages transactions that span both aggregates: assignment,
	// return confirmation and pedido deletion all mutate the pedido and its
	// machines as one atomic unit.
	UoW interface {
		TxManager
		PedidoRepoFactory
		MachineRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
