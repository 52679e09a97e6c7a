// Package pedido provides the order side of the domain model: the Pedido
// aggregate root, the Status state machine, and the append-only audit
// history with its action-tagged detail payloads.
//
// The package includes:
//   - Pedido: the aggregate root owning the lifecycle, the
//     requested-vs-assigned bookkeeping and the history
//   - Status: a state machine enforcing the workflow
//     PENDIENTE_PREPARACION -> PREPARADO -> ENTREGADO ->
//     PENDIENTE_CONFIRMACION -> CERRADO, with the
//     PENDIENTE_CONFIRMACION_FALTANTES branch for late returns
//   - HistoryEntry and Detail: immutable audit records per transition
//
// Key business rules:
//   - requested quantities are preserved verbatim as submitted
//   - assigned machines are snapshotted once and then fixed
//   - a mismatch between requested and assigned/returned quantities requires
//     a justification
//   - the "has missing machines" flag is derived from history on every read
package pedido
