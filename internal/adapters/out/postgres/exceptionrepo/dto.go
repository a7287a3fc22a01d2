// Package exceptionrepo provides data transfer objects and mapping
// functions for exception persistence.
package exceptionrepo

import (
	"time"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure for persisting exception
// aggregates.
type ExceptionDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID             uuid.UUID `gorm:"type:uuid;index"`
	ExceptionType       int
	Reason              string
	Priority            int
	Status              int `gorm:"index"`
	EstimatedResolution *time.Time
	ReportedBy          uuid.UUID  `gorm:"type:uuid"`
	ResolvedBy          *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt          *time.Time
}

// TableName specifies the database table name for exception entities.
func (ExceptionDTO) TableName() string {
	return "truck_exceptions"
}

// fromDomain converts an exception aggregate to its database
// representation.
func fromDomain(aggregate *exception.Exception) ExceptionDTO {
	var resolvedBy *uuid.UUID
	if id := aggregate.ResolvedBy(); id != nil {
		raw := id.Bytes()
		resolvedBy = &raw
	}

	return ExceptionDTO{
		ID:                  aggregate.ID().Bytes(),
		TruckID:             aggregate.TruckID().Bytes(),
		ExceptionType:       int(aggregate.Type()),
		Reason:              aggregate.Reason(),
		Priority:            int(aggregate.Priority()),
		Status:              int(aggregate.Status()),
		EstimatedResolution: aggregate.EstimatedResolution(),
		ReportedBy:          aggregate.ReportedBy().Bytes(),
		ResolvedBy:          resolvedBy,
		ResolvedAt:          aggregate.ResolvedAt(),
	}
}

// toDomain converts a database DTO back to an exception aggregate.
func toDomain(dto ExceptionDTO) (*exception.Exception, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	reportedBy, err := kernel.UUIDFromBytes(dto.ReportedBy[:])
	if err != nil {
		return nil, err
	}

	var resolvedBy *kernel.UUID
	if dto.ResolvedBy != nil {
		resolverID, resolverErr := kernel.UUIDFromBytes((*dto.ResolvedBy)[:])
		if resolverErr != nil {
			return nil, resolverErr
		}
		resolvedBy = &resolverID
	}

	return exception.RestoreException(
		id,
		truckID,
		exception.Type(dto.ExceptionType),
		dto.Reason,
		truck.Priority(dto.Priority),
		exception.Status(dto.Status),
		dto.EstimatedResolution,
		reportedBy,
		resolvedBy,
		dto.ResolvedAt,
	)
}
