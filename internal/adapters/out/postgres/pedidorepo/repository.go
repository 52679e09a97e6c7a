package pedidorepo

import (
	"context"
	"errors"

	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPedidoRepository implements PedidoRepository using GORM.
type GormPedidoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormPedidoRepository creates a new GORM pedido repository.
func NewGormPedidoRepository(db *gorm.DB, tracker aggregateTracker) *GormPedidoRepository {
	return &GormPedidoRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID allocates the next sequential pedido code by scanning the highest
// existing numeric suffix. Two transactions racing for the same code cannot
// both commit: the second insert fails on the primary key.
func (r *GormPedidoRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	var maxSeq int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 3) AS INTEGER)), 0)
		FROM pedidos
	`).Scan(&maxSeq).Error
	if err != nil {
		return kernel.OrderID{}, err
	}

	return kernel.NewOrderID(maxSeq + 1)
}

// Add saves a new pedido and its history rows.
func (r *GormPedidoRepository) Add(ctx context.Context, aggregate *pedido.Pedido) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("pedido", dto.ID+" already exists", err)
		}
		return err
	}

	if err = r.appendHistory(ctx, dto.ID, aggregate.History(), 0); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update saves an existing pedido. History rows already persisted are left
// untouched; only the new tail of the aggregate's history is inserted.
func (r *GormPedidoRepository) Update(ctx context.Context, aggregate *pedido.Pedido) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PedidoDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var persisted int64
	if err = r.db.WithContext(ctx).
		Model(&HistoryDTO{}).
		Where("pedido_id = ?", dto.ID).
		Count(&persisted).Error; err != nil {
		return err
	}

	if err = r.appendHistory(ctx, dto.ID, aggregate.History(), int(persisted)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves a pedido with its complete history.
func (r *GormPedidoRepository) Get(ctx context.Context, id kernel.OrderID) (*pedido.Pedido, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PedidoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pedido", id.String())
		}
		return nil, err
	}

	history, err := r.loadHistory(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history)
}

// GetAllInStatus retrieves every pedido currently in the given status.
func (r *GormPedidoRepository) GetAllInStatus(
	ctx context.Context,
	status pedido.Status,
) ([]*pedido.Pedido, error) {
	var dtos []PedidoDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pedidos := make([]*pedido.Pedido, 0, len(dtos))
	for _, dto := range dtos {
		history, histErr := r.loadHistory(ctx, dto.ID)
		if histErr != nil {
			return nil, histErr
		}

		p, convErr := toDomain(dto, history)
		if convErr != nil {
			return nil, convErr
		}
		pedidos = append(pedidos, p)
	}

	return pedidos, nil
}

// Delete removes the pedido and its history rows.
func (r *GormPedidoRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("pedido_id = ?", id.String()).
		Delete(&HistoryDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&PedidoDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pedido", id.String())
	}

	return nil
}

func (r *GormPedidoRepository) loadHistory(ctx context.Context, pedidoID string) ([]HistoryDTO, error) {
	var history []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("seq").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *GormPedidoRepository) appendHistory(
	ctx context.Context,
	pedidoID string,
	entries []pedido.HistoryEntry,
	skip int,
) error {
	for i, entry := range entries[skip:] {
		dto, err := historyFromDomain(pedidoID, skip+i, entry)
		if err != nil {
			return err
		}
		if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}
