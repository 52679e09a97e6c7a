package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPedidoQueryHandler reads one pedido with its history straight from the
// database. The hasMissing flag is derived from the most recent
// RETURN_CONFIRMED history entry, never stored.
type GetPedidoQueryHandler struct {
	db *gorm.DB
}

// NewGetPedidoQueryHandler creates a handler for single-pedido queries.
func NewGetPedidoQueryHandler(db *gorm.DB) GetPedidoQueryHandler {
	return GetPedidoQueryHandler{db: db}
}

// Handle executes the query. History entries come back in insertion order.
func (h GetPedidoQueryHandler) Handle(
	ctx context.Context,
	query GetPedidoQuery,
) (GetPedidoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPedidoQueryResponse{}, err
	}

	var resp GetPedidoQueryResponse
	var requestedJSON, assignedJSON, returnedJSON []byte

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester,
			service,
			status,
			requested_items,
			assigned_items,
			returned_items,
			note
		FROM pedidos
		WHERE id = ?
	`, query.PedidoID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Requester,
		&resp.Service,
		&resp.Status,
		&requestedJSON,
		&assignedJSON,
		&returnedJSON,
		&resp.Note,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPedidoQueryResponse{}, errs.NewObjectNotFoundError("pedido", query.PedidoID().String())
	}
	if err != nil {
		return GetPedidoQueryResponse{}, err
	}

	if err = json.Unmarshal(requestedJSON, &resp.RequestedItems); err != nil {
		return GetPedidoQueryResponse{}, err
	}
	if len(assignedJSON) > 0 {
		if err = json.Unmarshal(assignedJSON, &resp.AssignedItems); err != nil {
			return GetPedidoQueryResponse{}, err
		}
	}
	if len(returnedJSON) > 0 {
		if err = json.Unmarshal(returnedJSON, &resp.ReturnedItems); err != nil {
			return GetPedidoQueryResponse{}, err
		}
	}

	resp.History, resp.HasMissing, err = h.loadHistory(ctx, resp.ID)
	if err != nil {
		return GetPedidoQueryResponse{}, err
	}

	return resp, nil
}

func (h GetPedidoQueryHandler) loadHistory(
	ctx context.Context,
	pedidoID string,
) ([]HistoryEntryResponse, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			actor,
			occurred_at,
			detail
		FROM pedido_history
		WHERE pedido_id = ?
		ORDER BY seq
	`, pedidoID).Rows()
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	hasMissing := false

	for rows.Next() {
		var entry HistoryEntryResponse
		var occurredAt time.Time
		var detailJSON []byte

		if err = rows.Scan(&entry.Action, &entry.Actor, &occurredAt, &detailJSON); err != nil {
			return nil, false, err
		}
		entry.Timestamp = occurredAt

		if len(detailJSON) > 0 {
			if err = json.Unmarshal(detailJSON, &entry.Detail); err != nil {
				return nil, false, err
			}
		}

		// The last RETURN_CONFIRMED entry wins; later full confirmations
		// clear the flag.
		if entry.Action == pedido.ActionReturnConfirmed.String() {
			missing, _ := entry.Detail["faltantesConfirmados"].([]any)
			hasMissing = len(missing) > 0
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, false, err
	}

	return entries, hasMissing, nil
}
