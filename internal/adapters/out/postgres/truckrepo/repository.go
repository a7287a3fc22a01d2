package truckrepo

import (
	"context"
	"errors"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing truck to the database. Updates write the full
// row so cleared optional fields (an unassigned ramp, for example) are
// persisted as NULL.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
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

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// rampAssignmentLockClass namespaces the ramp advisory locks so they never
// collide with other advisory locks on the same database.
const rampAssignmentLockClass = 1

// LockRampForAssignment takes a transaction-scoped advisory lock keyed by
// the ramp number. A plain snapshot read cannot serialize two assignments
// that write different truck rows; the advisory lock gives them a common
// point of contention. The lock releases when the transaction ends.
func (r *GormTruckRepository) LockRampForAssignment(ctx context.Context, ramp truck.RampNumber) error {
	if err := ramp.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", rampAssignmentLockClass, int(ramp)).Error
}

// GetActiveOnRamp retrieves every non-completed truck holding the given
// ramp. The allocator runs its slot check against exactly this set, inside
// the same transaction that writes the new assignment.
func (r *GormTruckRepository) GetActiveOnRamp(
	ctx context.Context,
	ramp truck.RampNumber,
) ([]*truck.Truck, error) {
	if err := ramp.Validate(); err != nil {
		return nil, err
	}

	var dtos []TruckDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "ramp_number = ? AND status != ?", int(ramp), truck.Done).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetScheduledBetween retrieves trucks whose scheduled arrival falls in
// [from, to), ordered by arrival time.
func (r *GormTruckRepository) GetScheduledBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*truck.Truck, error) {
	var dtos []TruckDTO
	err := r.db.WithContext(ctx).
		Where("scheduled_arrival >= ? AND scheduled_arrival < ?", from, to).
		Order("scheduled_arrival").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a truck row permanently.
func (r *GormTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", id.String())
	}

	return nil
}

func toDomainSlice(dtos []TruckDTO) ([]*truck.Truck, error) {
	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, nil
}
