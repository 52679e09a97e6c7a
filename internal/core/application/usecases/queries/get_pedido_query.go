// Package queries contains the read side of the CQRS split: raw SQL
// projections over the pedidos, pedido_history and machines tables. Query
// responses carry the wire-format JSON keys so the HTTP adapter can
// serialize them directly.
package queries

import (
	"errors"
	"time"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/pkg/guard"
)

var ErrGetPedidoQueryIsNotConstructed = errors.New(
	"GetPedidoQuery must be created via NewGetPedidoQuery constructor",
)

// GetPedidoQuery retrieves one pedido with its complete audit history.
type GetPedidoQuery struct {
	pedidoID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetPedidoQuery creates a query for a single pedido.
func NewGetPedidoQuery(pedidoID kernel.OrderID) (GetPedidoQuery, error) {
	if err := pedidoID.Validate(); err != nil {
		return GetPedidoQuery{}, err
	}

	return GetPedidoQuery{
		pedidoID: pedidoID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPedidoQuery) Validate() error {
	return q.guard.Validate(ErrGetPedidoQueryIsNotConstructed)
}

// PedidoID returns the requested pedido code.
func (q GetPedidoQuery) PedidoID() kernel.OrderID { return q.pedidoID }

// HistoryEntryResponse is one audit entry in the detail view. Detail keeps
// the stored JSON payload as-is.
type HistoryEntryResponse struct {
	Action    string         `json:"accion"`
	Actor     string         `json:"usuario"`
	Timestamp time.Time      `json:"fecha"`
	Detail    map[string]any `json:"detalle,omitempty"`
}

// GetPedidoQueryResponse is the full pedido view, including the derived
// hasMissing flag.
type GetPedidoQueryResponse struct {
	ID             string                 `json:"id"`
	Requester      string                 `json:"requesterUsername"`
	Service        string                 `json:"servicio"`
	Status         string                 `json:"estado"`
	RequestedItems map[string]int         `json:"itemsSolicitados"`
	AssignedItems  []AssignedItemResponse `json:"asignadas"`
	ReturnedItems  []string               `json:"devueltas"`
	Note           string                 `json:"observacion,omitempty"`
	HasMissing     bool                   `json:"hasMissing"`
	History        []HistoryEntryResponse `json:"historial"`
}

// AssignedItemResponse is one machine snapshot in the assignment.
type AssignedItemResponse struct {
	ID     string `json:"id"`
	Type   string `json:"tipo"`
	Model  string `json:"modelo,omitempty"`
	Serial string `json:"serial,omitempty"`
}
