package exceptionrepo

import (
	"context"
	"errors"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new exception to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
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

// Update saves an existing exception to the database. The full row is
// written so resolution fields set during the transition are persisted.
func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ExceptionDTO{}).
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

// Get retrieves an exception by ID.
func (r *GormExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExceptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTruck retrieves all exceptions reported against a truck.
func (r *GormExceptionRepository) GetByTruck(
	ctx context.Context,
	truckID kernel.UUID,
) ([]*exception.Exception, error) {
	if err := truckID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExceptionDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "truck_id = ?", truckID.Bytes()).Error; err != nil {
		return nil, err
	}

	exceptions := make([]*exception.Exception, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, e)
	}

	return exceptions, nil
}
