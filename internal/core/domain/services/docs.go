// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - MachineAssigner: binds concrete available machines to a pedido,
//     cross-checking proposed per-type counts against the requested
//     quantities and enforcing the justification rule on mismatches
//
// Domain services hold the coordination logic that does not naturally belong
// to a single aggregate root: assignment touches both the pedido and every
// proposed machine.
package services
