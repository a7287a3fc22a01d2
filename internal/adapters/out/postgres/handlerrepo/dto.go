// Package handlerrepo persists handler credit rows for completed trucks.
package handlerrepo

import (
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/ports"

	"github.com/google/uuid"
)

// HandlerRecordDTO represents one handler credit row. A truck completed by
// two people carries two rows, one per contributor.
type HandlerRecordDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TruckID     uuid.UUID `gorm:"type:uuid;index"`
	HandlerID   uuid.UUID `gorm:"type:uuid;index"`
	HandlerName string
}

// TableName specifies the database table name for handler credits.
func (HandlerRecordDTO) TableName() string {
	return "truck_handlers"
}

func fromPort(record ports.HandlerRecord) HandlerRecordDTO {
	return HandlerRecordDTO{
		TruckID:     record.TruckID.Bytes(),
		HandlerID:   record.HandlerID.Bytes(),
		HandlerName: record.HandlerName,
	}
}

func toPort(dto HandlerRecordDTO) (ports.HandlerRecord, error) {
	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return ports.HandlerRecord{}, err
	}

	handlerID, err := kernel.UUIDFromBytes(dto.HandlerID[:])
	if err != nil {
		return ports.HandlerRecord{}, err
	}

	return ports.HandlerRecord{
		TruckID:     truckID,
		HandlerID:   handlerID,
		HandlerName: dto.HandlerName,
	}, nil
}
