// Package truckrepo provides data transfer objects and mapping functions for
// truck persistence. It implements the repository pattern for the truck
// aggregate, converting between domain entities and database rows.
package truckrepo

import (
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck
// aggregates. The ramp column is indexed because the allocator queries
// active trucks per ramp on every assignment.
type TruckDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LicensePlate     string     `gorm:"column:license_plate"`
	ScheduledArrival time.Time  `gorm:"index"`
	ActualArrival    *time.Time
	RampNumber       *int       `gorm:"type:smallint;index"`
	AssignedStaffID  *uuid.UUID `gorm:"type:uuid"`
	Priority         int
	Status           int `gorm:"index"`
	HandlerID        *uuid.UUID `gorm:"type:uuid"`
	HandlerName      string
	StartedAt        *time.Time
	CompletedAt      *time.Time
	OriginalArrival  *time.Time
	RescheduleCount  int
	IsOverdue        bool
	PalletCount      int
	CargoDescription string
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database
// representation.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	var rampNumber *int
	if ramp := aggregate.Ramp(); ramp != nil {
		value := int(*ramp)
		rampNumber = &value
	}

	var assignedStaffID *uuid.UUID
	if id := aggregate.AssignedStaff(); id != nil {
		raw := id.Bytes()
		assignedStaffID = &raw
	}

	var handlerID *uuid.UUID
	if id := aggregate.Handler(); id != nil {
		raw := id.Bytes()
		handlerID = &raw
	}

	return TruckDTO{
		ID:               aggregate.ID().Bytes(),
		LicensePlate:     aggregate.Plate().String(),
		ScheduledArrival: aggregate.ScheduledArrival(),
		ActualArrival:    aggregate.ActualArrival(),
		RampNumber:       rampNumber,
		AssignedStaffID:  assignedStaffID,
		Priority:         int(aggregate.Priority()),
		Status:           int(aggregate.Status()),
		HandlerID:        handlerID,
		HandlerName:      aggregate.HandlerName(),
		StartedAt:        aggregate.StartedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		OriginalArrival:  aggregate.OriginalArrival(),
		RescheduleCount:  aggregate.RescheduleCount(),
		IsOverdue:        aggregate.IsOverdue(),
		PalletCount:      aggregate.PalletCount(),
		CargoDescription: aggregate.CargoDescription(),
	}
}

// toDomain converts a database DTO back to a truck aggregate using
// RestoreTruck.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	plate, err := truck.NewLicensePlate(dto.LicensePlate)
	if err != nil {
		return nil, err
	}

	var ramp *truck.RampNumber
	if dto.RampNumber != nil {
		r, rampErr := truck.NewRampNumber(*dto.RampNumber)
		if rampErr != nil {
			return nil, rampErr
		}
		ramp = &r
	}

	var assignedStaffID *kernel.UUID
	if dto.AssignedStaffID != nil {
		staffID, staffErr := kernel.UUIDFromBytes((*dto.AssignedStaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		assignedStaffID = &staffID
	}

	var handlerID *kernel.UUID
	if dto.HandlerID != nil {
		hID, handlerErr := kernel.UUIDFromBytes((*dto.HandlerID)[:])
		if handlerErr != nil {
			return nil, handlerErr
		}
		handlerID = &hID
	}

	return truck.RestoreTruck(
		id,
		plate,
		dto.ScheduledArrival,
		dto.ActualArrival,
		ramp,
		assignedStaffID,
		truck.Priority(dto.Priority),
		truck.Status(dto.Status),
		handlerID,
		dto.HandlerName,
		dto.StartedAt,
		dto.CompletedAt,
		dto.OriginalArrival,
		dto.RescheduleCount,
		dto.IsOverdue,
		dto.PalletCount,
		dto.CargoDescription,
	)
}
