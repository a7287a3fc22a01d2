package handlerrepo

import (
	"context"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/ports"

	"gorm.io/gorm"
)

// GormHandlerRecordRepository implements HandlerRecordRepository using GORM.
// Credit rows are written inside the completion transaction so the KPI
// refresh that follows always sees them.
type GormHandlerRecordRepository struct {
	db *gorm.DB
}

// NewGormHandlerRecordRepository creates a new GORM handler record
// repository.
func NewGormHandlerRecordRepository(db *gorm.DB) *GormHandlerRecordRepository {
	return &GormHandlerRecordRepository{db: db}
}

// Add inserts one handler credit row.
func (r *GormHandlerRecordRepository) Add(ctx context.Context, record ports.HandlerRecord) error {
	dto := fromPort(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByTruck retrieves all handler credits for a truck.
func (r *GormHandlerRecordRepository) GetByTruck(
	ctx context.Context,
	truckID kernel.UUID,
) ([]ports.HandlerRecord, error) {
	if err := truckID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HandlerRecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "truck_id = ?", truckID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]ports.HandlerRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toPort(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
