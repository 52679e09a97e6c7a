// Package machine provides the inventory side of the domain model: the
// Machine aggregate, its six-state lifecycle enum with one canonical
// normalization function (ParseState), and the Snapshot value captured when a
// machine is bound to a pedido.
//
// Key business rules:
//   - a machine's state is always one of the six enumerated values; unknown
//     input states normalize to disponible
//   - only disponible machines can be assigned
//   - machines are logically deleted (baja), never removed while referenced
package machine
