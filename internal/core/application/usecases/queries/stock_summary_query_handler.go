package queries

import (
	"context"

	"gorm.io/gorm"
)

// StockSummaryQueryHandler aggregates the machine inventory into counts per
// state and per type within each state.
type StockSummaryQueryHandler struct {
	db *gorm.DB
}

// NewStockSummaryQueryHandler creates a handler for stock summary queries.
func NewStockSummaryQueryHandler(db *gorm.DB) StockSummaryQueryHandler {
	return StockSummaryQueryHandler{db: db}
}

// Handle executes the aggregation in a single grouped scan.
func (h StockSummaryQueryHandler) Handle(
	ctx context.Context,
	query StockSummaryQuery,
) (StockSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return StockSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			type,
			state,
			COUNT(*)
		FROM machines
		GROUP BY type, state
		ORDER BY type, state
	`).Rows()
	if err != nil {
		return StockSummaryQueryResponse{}, err
	}
	defer rows.Close()

	resp := StockSummaryQueryResponse{
		PorState: make(map[string]int),
		PorTipo:  make(map[string]map[string]int),
	}

	for rows.Next() {
		var machineType, state string
		var count int

		if err = rows.Scan(&machineType, &state, &count); err != nil {
			return StockSummaryQueryResponse{}, err
		}

		resp.Total += count
		resp.PorState[state] += count

		if resp.PorTipo[machineType] == nil {
			resp.PorTipo[machineType] = make(map[string]int)
		}
		resp.PorTipo[machineType][state] += count
	}

	if err = rows.Err(); err != nil {
		return StockSummaryQueryResponse{}, err
	}

	return resp, nil
}
