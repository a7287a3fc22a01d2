package queries

import (
	"context"
	"time"

	"dockyard/internal/core/ports"
)

const photoComplianceTimeout = 5 * time.Second

// GetTruckPhotoComplianceQueryHandler reads a truck's photo documentation
// score through the store's check_truck_photo_compliance procedure.
type GetTruckPhotoComplianceQueryHandler struct {
	procedures ports.StoreProcedures
}

// NewGetTruckPhotoComplianceQueryHandler creates a handler for compliance
// queries.
func NewGetTruckPhotoComplianceQueryHandler(procedures ports.StoreProcedures) GetTruckPhotoComplianceQueryHandler {
	return GetTruckPhotoComplianceQueryHandler{procedures: procedures}
}

// Handle executes the query. The procedure call is bounded so a slow store
// cannot stall the reporting surface.
func (h GetTruckPhotoComplianceQueryHandler) Handle(
	ctx context.Context,
	query GetTruckPhotoComplianceQuery,
) (ports.PhotoCompliance, error) {
	if err := query.Validate(); err != nil {
		return ports.PhotoCompliance{}, err
	}

	procCtx, cancel := context.WithTimeout(ctx, photoComplianceTimeout)
	defer cancel()

	return h.procedures.CheckTruckPhotoCompliance(procCtx, query.TruckID())
}
