package queries

import (
	"errors"
	"strings"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/guard"
)

var ErrListPedidosQueryIsNotConstructed = errors.New(
	"ListPedidosQuery must be created via NewListPedidosQuery constructor",
)

// ListPedidosQuery retrieves the pedido overview, optionally filtered by
// status.
type ListPedidosQuery struct {
	status    pedido.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewListPedidosQuery creates a list query. An empty estado token lists
// every pedido; a non-empty one must name a valid status.
func NewListPedidosQuery(estado string) (ListPedidosQuery, error) {
	q := ListPedidosQuery{guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(estado) != "" {
		status, err := pedido.ParseStatus(estado)
		if err != nil {
			return ListPedidosQuery{}, err
		}
		q.status = status
		q.hasStatus = true
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPedidosQuery) Validate() error {
	return q.guard.Validate(ErrListPedidosQueryIsNotConstructed)
}

// Status returns the status filter; meaningful only when HasStatus is true.
func (q ListPedidosQuery) Status() pedido.Status { return q.status }

// HasStatus reports whether the query carries a status filter.
func (q ListPedidosQuery) HasStatus() bool { return q.hasStatus }

// ListPedidosQueryResponse is one row of the pedido overview.
type ListPedidosQueryResponse struct {
	ID         string `json:"id"`
	Requester  string `json:"requesterUsername"`
	Service    string `json:"servicio"`
	Status     string `json:"estado"`
	HasMissing bool   `json:"hasMissing"`
}
