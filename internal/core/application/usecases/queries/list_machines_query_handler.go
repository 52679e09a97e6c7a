package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMachinesQueryHandler reads the machine inventory.
type ListMachinesQueryHandler struct {
	db *gorm.DB
}

// NewListMachinesQueryHandler creates a handler for inventory list queries.
func NewListMachinesQueryHandler(db *gorm.DB) ListMachinesQueryHandler {
	return ListMachinesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by machine id.
func (h ListMachinesQueryHandler) Handle(
	ctx context.Context,
	query ListMachinesQuery,
) ([]ListMachinesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			id,
			type,
			model,
			serial,
			service,
			state
		FROM machines
	`

	var tx *gorm.DB
	if query.MachineType() != "" {
		tx = h.db.WithContext(ctx).Raw(baseSQL+` WHERE type = ? ORDER BY id`, query.MachineType())
	} else {
		tx = h.db.WithContext(ctx).Raw(baseSQL + ` ORDER BY id`)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	machines := make([]ListMachinesQueryResponse, 0)
	for rows.Next() {
		var resp ListMachinesQueryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Type,
			&resp.Model,
			&resp.Serial,
			&resp.Service,
			&resp.State,
		); err != nil {
			return nil, err
		}
		machines = append(machines, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return machines, nil
}
