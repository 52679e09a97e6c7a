// Package pedidorepo implements the pedido repository over GORM/Postgres.
// A pedido spans two tables: the pedidos row holds the current state with
// the requested/assigned/returned sets as jsonb, and pedido_history holds
// the append-only audit trail, one row per entry.
package pedidorepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"

	"github.com/google/uuid"
)

// jsonColumn maps a raw JSON document onto a jsonb column.
type jsonColumn []byte

// GormDataType tells GORM to create the column as jsonb.
func (jsonColumn) GormDataType() string {
	return "jsonb"
}

func (j jsonColumn) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *jsonColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into jsonColumn", src)
	}
	return nil
}

// PedidoDTO is the database row for a pedido's current state.
type PedidoDTO struct {
	ID             string `gorm:"primaryKey"`
	Requester      string
	Service        string
	Status         string     `gorm:"index"`
	RequestedItems jsonColumn `gorm:"type:jsonb"`
	AssignedItems  jsonColumn `gorm:"type:jsonb"`
	ReturnedItems  jsonColumn `gorm:"type:jsonb"`
	Note           string
}

// TableName overrides GORM's default naming to use "pedidos".
func (PedidoDTO) TableName() string {
	return "pedidos"
}

// HistoryDTO is one append-only audit row. Rows are never updated or
// deleted except when the whole pedido is removed. Seq is the entry's
// position within its pedido's history, so reads come back in exactly the
// order the aggregate appended, independent of timestamp resolution.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PedidoID   string    `gorm:"index;uniqueIndex:idx_pedido_history_seq"`
	Seq        int       `gorm:"uniqueIndex:idx_pedido_history_seq"`
	Action     string
	Actor      string
	OccurredAt time.Time
	Detail     jsonColumn `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "pedido_history".
func (HistoryDTO) TableName() string {
	return "pedido_history"
}

func fromDomain(p *pedido.Pedido) (PedidoDTO, error) {
	requested, err := json.Marshal(p.RequestedItems())
	if err != nil {
		return PedidoDTO{}, err
	}
	assigned, err := json.Marshal(p.AssignedItems())
	if err != nil {
		return PedidoDTO{}, err
	}
	returned, err := json.Marshal(p.ReturnedItems())
	if err != nil {
		return PedidoDTO{}, err
	}

	return PedidoDTO{
		ID:             p.ID().String(),
		Requester:      p.Requester(),
		Service:        p.Service(),
		Status:         p.Status().String(),
		RequestedItems: requested,
		AssignedItems:  assigned,
		ReturnedItems:  returned,
		Note:           p.Note(),
	}, nil
}

func historyFromDomain(pedidoID string, seq int, entry pedido.HistoryEntry) (HistoryDTO, error) {
	detail, err := json.Marshal(entry.Detail())
	if err != nil {
		return HistoryDTO{}, err
	}

	return HistoryDTO{
		ID:         uuid.New(),
		PedidoID:   pedidoID,
		Seq:        seq,
		Action:     entry.Action().String(),
		Actor:      entry.Actor(),
		OccurredAt: entry.Timestamp(),
		Detail:     detail,
	}, nil
}

func toDomain(dto PedidoDTO, historyDTOs []HistoryDTO) (*pedido.Pedido, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := pedido.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var requested map[string]int
	if err = json.Unmarshal(dto.RequestedItems, &requested); err != nil {
		return nil, err
	}

	var assigned []machine.Snapshot
	if len(dto.AssignedItems) > 0 {
		if err = json.Unmarshal(dto.AssignedItems, &assigned); err != nil {
			return nil, err
		}
	}

	var returned []string
	if len(dto.ReturnedItems) > 0 {
		if err = json.Unmarshal(dto.ReturnedItems, &returned); err != nil {
			return nil, err
		}
	}

	history := make([]pedido.HistoryEntry, 0, len(historyDTOs))
	for _, h := range historyDTOs {
		action, parseErr := pedido.ParseAction(h.Action)
		if parseErr != nil {
			return nil, parseErr
		}

		var detail pedido.Detail
		if len(h.Detail) > 0 {
			if err = json.Unmarshal(h.Detail, &detail); err != nil {
				return nil, err
			}
		}

		history = append(history, pedido.RestoreHistoryEntry(action, h.Actor, h.OccurredAt, detail))
	}

	return pedido.RestorePedido(
		id,
		dto.Requester,
		dto.Service,
		status,
		requested,
		assigned,
		returned,
		dto.Note,
		history,
	)
}
