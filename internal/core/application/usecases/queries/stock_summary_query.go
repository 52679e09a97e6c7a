package queries

import (
	"errors"

	"fleetrent/internal/pkg/guard"
)

var ErrStockSummaryQueryIsNotConstructed = errors.New(
	"StockSummaryQuery must be created via NewStockSummaryQuery constructor",
)

// StockSummaryQuery retrieves fleet availability counts: machines per state
// and per type within each state.
type StockSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewStockSummaryQuery creates a stock summary query.
func NewStockSummaryQuery() StockSummaryQuery {
	return StockSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q StockSummaryQuery) Validate() error {
	return q.guard.Validate(ErrStockSummaryQueryIsNotConstructed)
}

// StockSummaryQueryResponse is the aggregated availability view.
type StockSummaryQueryResponse struct {
	Total    int                       `json:"total"`
	PorState map[string]int            `json:"porEstado"`
	PorTipo  map[string]map[string]int `json:"porTipo"`
}
