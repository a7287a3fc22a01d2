package queries

import (
	"context"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrucksForDateQueryHandler lists every booking whose scheduled arrival
// falls on a calendar day, ordered by arrival time. Backs the daily
// schedule view.
type GetTrucksForDateQueryHandler struct {
	db    *gorm.DB
	cache *cache.QueryCache
}

// NewGetTrucksForDateQueryHandler creates a handler for day listings.
func NewGetTrucksForDateQueryHandler(db *gorm.DB, queryCache *cache.QueryCache) GetTrucksForDateQueryHandler {
	return GetTrucksForDateQueryHandler{db: db, cache: queryCache}
}

// Handle executes the query.
func (h GetTrucksForDateQueryHandler) Handle(
	ctx context.Context,
	query GetTrucksForDateQuery,
) ([]GetTrucksForDateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	day := query.Date()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	cacheKey := "trucks:for_date:" + dayStart.Format("2006-01-02")
	if cached, ok := h.cache.Get(cacheKey); ok {
		if trucks, castOK := cached.([]GetTrucksForDateQueryResponse); castOK {
			return trucks, nil
		}
	}

	trucks := make([]GetTrucksForDateQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			license_plate,
			scheduled_arrival,
			actual_arrival,
			ramp_number,
			status,
			priority,
			reschedule_count,
			is_overdue
		FROM trucks
		WHERE scheduled_arrival >= ?
		  AND scheduled_arrival < ?
		ORDER BY scheduled_arrival, id
	`, dayStart, dayEnd).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			rampValue *int
			resp      GetTrucksForDateQueryResponse
		)

		err = rows.Scan(
			&id,
			&resp.Plate,
			&resp.ScheduledArrival,
			&resp.ActualArrival,
			&rampValue,
			&resp.Status,
			&resp.Priority,
			&resp.RescheduleCount,
			&resp.IsOverdue,
		)
		if err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = truckID

		if rampValue != nil {
			ramp, rampErr := truck.NewRampNumber(*rampValue)
			if rampErr != nil {
				return nil, rampErr
			}
			resp.Ramp = &ramp
		}

		trucks = append(trucks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	h.cache.Set(cacheKey, trucks)

	return trucks, nil
}
