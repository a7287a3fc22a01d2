package queries

import (
	"errors"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/guard"
)

var ErrGetTruckPhotoComplianceQueryIsNotConstructed = errors.New(
	"GetTruckPhotoComplianceQuery must be created via NewGetTruckPhotoComplianceQuery constructor",
)

// GetTruckPhotoComplianceQuery retrieves the photo documentation score for
// a truck. The score is informational and never blocks completing the
// truck's handling.
type GetTruckPhotoComplianceQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTruckPhotoComplianceQuery creates a compliance query for a truck.
func NewGetTruckPhotoComplianceQuery(truckID kernel.UUID) (GetTruckPhotoComplianceQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetTruckPhotoComplianceQuery{}, err
	}

	return GetTruckPhotoComplianceQuery{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckPhotoComplianceQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckPhotoComplianceQueryIsNotConstructed)
}

// TruckID returns the truck whose score is requested.
func (q GetTruckPhotoComplianceQuery) TruckID() kernel.UUID {
	return q.truckID
}
