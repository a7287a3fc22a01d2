package postgres

import (
	"context"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/core/ports"

	"gorm.io/gorm"
)

// GormStoreProcedures invokes the store's server-side procedures through
// the GORM connection. The procedures own their write logic; this adapter
// only marshals arguments and surfaces errors. Deadlines come from the
// caller's context.
type GormStoreProcedures struct {
	db *gorm.DB
}

// NewGormStoreProcedures creates a procedure gateway over the given
// connection.
func NewGormStoreProcedures(db *gorm.DB) *GormStoreProcedures {
	return &GormStoreProcedures{db: db}
}

// HandleTruckArrival records the truck's actual arrival server-side.
func (p *GormStoreProcedures) HandleTruckArrival(
	ctx context.Context,
	truckID kernel.UUID,
	userID kernel.UUID,
) error {
	return p.db.WithContext(ctx).
		Exec("SELECT handle_truck_arrival(?, ?)", truckID.Bytes(), userID.Bytes()).Error
}

// HandleTruckStatusChange applies a status change server-side.
func (p *GormStoreProcedures) HandleTruckStatusChange(
	ctx context.Context,
	truckID kernel.UUID,
	newStatus truck.Status,
	userID kernel.UUID,
) error {
	return p.db.WithContext(ctx).
		Exec(
			"SELECT handle_truck_status_change(?, ?, ?)",
			truckID.Bytes(), int(newStatus), userID.Bytes(),
		).Error
}

// RescheduleOverdueTruck moves a booking server-side, carrying the reason
// for the audit trail.
func (p *GormStoreProcedures) RescheduleOverdueTruck(
	ctx context.Context,
	truckID kernel.UUID,
	newArrival time.Time,
	reason string,
	userID kernel.UUID,
) error {
	return p.db.WithContext(ctx).
		Exec(
			"SELECT reschedule_overdue_truck(?, ?, ?, ?)",
			truckID.Bytes(), newArrival, reason, userID.Bytes(),
		).Error
}

// RefreshUserKPIMetrics recomputes daily aggregate metrics for the date.
func (p *GormStoreProcedures) RefreshUserKPIMetrics(ctx context.Context, targetDate time.Time) error {
	return p.db.WithContext(ctx).
		Exec("SELECT refresh_user_kpi_metrics(?)", targetDate.Format("2006-01-02")).Error
}

// CheckTruckPhotoCompliance returns the compliance summary for a truck.
func (p *GormStoreProcedures) CheckTruckPhotoCompliance(
	ctx context.Context,
	truckID kernel.UUID,
) (ports.PhotoCompliance, error) {
	row := p.db.WithContext(ctx).Raw(
		"SELECT required_covered, required_total, score FROM check_truck_photo_compliance(?)",
		truckID.Bytes(),
	).Row()

	compliance := ports.PhotoCompliance{TruckID: truckID}
	if err := row.Scan(&compliance.RequiredCovered, &compliance.RequiredTotal, &compliance.Score); err != nil {
		return ports.PhotoCompliance{}, err
	}

	return compliance, nil
}
