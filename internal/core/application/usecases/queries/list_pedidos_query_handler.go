package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListPedidosQueryHandler reads the pedido overview. The hasMissing flag is
// derived per row from the latest RETURN_CONFIRMED history entry via a
// lateral join, mirroring the aggregate's derivation.
type ListPedidosQueryHandler struct {
	db *gorm.DB
}

// NewListPedidosQueryHandler creates a handler for pedido list queries.
func NewListPedidosQueryHandler(db *gorm.DB) ListPedidosQueryHandler {
	return ListPedidosQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by pedido id, which for the
// P-%04d scheme is also chronological order.
func (h ListPedidosQueryHandler) Handle(
	ctx context.Context,
	query ListPedidosQuery,
) ([]ListPedidosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			p.id,
			p.requester,
			p.service,
			p.status,
			COALESCE(jsonb_array_length(h.detail -> 'faltantesConfirmados') > 0, FALSE)
		FROM pedidos p
		LEFT JOIN LATERAL (
			SELECT detail
			FROM pedido_history
			WHERE pedido_id = p.id AND action = 'RETURN_CONFIRMED'
			ORDER BY seq DESC
			LIMIT 1
		) h ON TRUE
	`

	var rows *gorm.DB
	if query.HasStatus() {
		rows = h.db.WithContext(ctx).Raw(baseSQL+` WHERE p.status = ? ORDER BY p.id`, query.Status().String())
	} else {
		rows = h.db.WithContext(ctx).Raw(baseSQL + ` ORDER BY p.id`)
	}

	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	pedidos := make([]ListPedidosQueryResponse, 0)
	for sqlRows.Next() {
		var resp ListPedidosQueryResponse
		if err = sqlRows.Scan(
			&resp.ID,
			&resp.Requester,
			&resp.Service,
			&resp.Status,
			&resp.HasMissing,
		); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, resp)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return pedidos, nil
}
