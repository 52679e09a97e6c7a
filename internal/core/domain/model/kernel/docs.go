// Package kernel contains shared value objects used across the domain model:
// OrderID (sequential P-NNNN pedido codes) and Actor (who performed a
// transition). Value objects are immutable and only constructible through
// their factory functions, so invalid identifiers never enter the model.
package kernel
