package machinerepo

import (
	"context"
	"errors"

	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMachineRepository implements MachineRepository using GORM.
type GormMachineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormMachineRepository creates a new GORM machine repository.
func NewGormMachineRepository(db *gorm.DB, tracker aggregateTracker) *GormMachineRepository {
	return &GormMachineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new machine to the database.
func (r *GormMachineRepository) Add(ctx context.Context, aggregate *machine.Machine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("maquina", aggregate.ID()+" already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing machine to the database.
func (r *GormMachineRepository) Update(ctx context.Context, aggregate *machine.Machine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MachineDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a machine by its external id.
func (r *GormMachineRepository) Get(ctx context.Context, id string) (*machine.Machine, error) {
	var dto MachineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("maquina", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the named machines with their rows locked for the
// duration of the surrounding transaction. Two concurrent assignments of
// the same machine serialize here; the second one sees the flipped state
// and fails availability.
func (r *GormMachineRepository) GetByIDs(
	ctx context.Context,
	ids []string,
) ([]*machine.Machine, []string, error) {
	var dtos []MachineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*machine.Machine, len(dtos))
	for _, dto := range dtos {
		m, convErr := toDomain(dto)
		if convErr != nil {
			return nil, nil, convErr
		}
		byID[m.ID()] = m
	}

	// Preserve request order and collect unknown ids.
	found := make([]*machine.Machine, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			found = append(found, m)
		} else {
			missing = append(missing, id)
		}
	}

	return found, missing, nil
}
