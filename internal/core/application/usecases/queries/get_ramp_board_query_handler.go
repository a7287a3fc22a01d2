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

// GetRampBoardQueryHandler builds the per-ramp occupancy board from the
// trucks table, evaluated at the query's moment. An arrived or in-progress
// truck marks its ramp OCCUPIED; otherwise the earliest booking whose slot
// window is still open at that moment marks it SCHEDULED; ramps with no
// active booking are AVAILABLE. Completed trucks never hold a ramp.
//
// Results are cached per evaluation minute and invalidated by the store
// change listener whenever a truck row changes.
type GetRampBoardQueryHandler struct {
	db    *gorm.DB
	cache *cache.QueryCache
}

// NewGetRampBoardQueryHandler creates a handler for ramp board queries.
func NewGetRampBoardQueryHandler(db *gorm.DB, queryCache *cache.QueryCache) GetRampBoardQueryHandler {
	return GetRampBoardQueryHandler{db: db, cache: queryCache}
}

// Handle executes the query and returns one entry per assignable ramp,
// ordered by ramp number. The service bay never appears on the board.
func (h GetRampBoardQueryHandler) Handle(
	ctx context.Context,
	query GetRampBoardQuery,
) ([]GetRampBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := "trucks:ramp_board:" + query.At().Truncate(time.Minute).Format(time.RFC3339)
	if cached, ok := h.cache.Get(cacheKey); ok {
		if board, castOK := cached.([]GetRampBoardQueryResponse); castOK {
			return board, nil
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			license_plate,
			ramp_number,
			status,
			scheduled_arrival,
			actual_arrival
		FROM trucks
		WHERE ramp_number IS NOT NULL
		  AND status != ?
		ORDER BY ramp_number, scheduled_arrival
	`, truck.Done).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type occupancy struct {
		truckID kernel.UUID
		plate   string
		state   RampState
	}
	held := make(map[truck.RampNumber]occupancy)

	for rows.Next() {
		var (
			id               uuid.UUID
			plate            string
			rampValue        int
			statusValue      int
			scheduledArrival time.Time
			actualArrival    *time.Time
		)

		if err = rows.Scan(&id, &plate, &rampValue, &statusValue, &scheduledArrival, &actualArrival); err != nil {
			return nil, err
		}

		ramp, rampErr := truck.NewRampNumber(rampValue)
		if rampErr != nil {
			return nil, rampErr
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		status := truck.Status(statusValue)
		state := RampScheduled
		if status == truck.Arrived || status == truck.InProgress {
			state = RampOccupied
		}

		// A booking whose slot window closed before the evaluation moment
		// no longer claims the ramp. Trucks physically at the dock hold it
		// regardless of their booked window.
		if state == RampScheduled && !scheduledArrival.Add(kernel.SlotDuration).After(query.At()) {
			continue
		}

		// An occupying truck always wins over a pending booking; among
		// bookings the earliest row (query order) wins.
		if current, exists := held[ramp]; exists && !(state == RampOccupied && current.state == RampScheduled) {
			continue
		}
		held[ramp] = occupancy{truckID: truckID, plate: plate, state: state}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	board := make([]GetRampBoardQueryResponse, 0, len(truck.AssignableRamps()))
	for _, ramp := range truck.AssignableRamps() {
		entry := GetRampBoardQueryResponse{Ramp: ramp, State: RampAvailable}
		if occ, exists := held[ramp]; exists {
			id := occ.truckID
			entry.State = occ.state
			entry.TruckID = &id
			entry.Plate = occ.plate
		}
		board = append(board, entry)
	}

	h.cache.Set(cacheKey, board)

	return board, nil
}
