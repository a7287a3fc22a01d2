package services_test

import (
	"math/rand"
	"testing"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTruckAt(t *testing.T, plate string, arrival time.Time) *truck.Truck {
	t.Helper()
	licensePlate, err := truck.NewLicensePlate(plate)
	require.NoError(t, err)
	aggregate, err := truck.NewTruck(
		kernel.NewUUID(), licensePlate, arrival, truck.PriorityNormal, 10, "")
	require.NoError(t, err)
	return aggregate
}

func onRamp(t *testing.T, aggregate *truck.Truck, ramp truck.RampNumber) *truck.Truck {
	t.Helper()
	require.NoError(t, aggregate.AssignRamp(ramp, nil))
	return aggregate
}

func TestRampAllocator_IsRampAvailable(t *testing.T) {
	allocator := services.NewRampAllocator()
	ramp, _ := truck.NewRampNumber(3)
	nineOClock := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	t.Run("should be free with no occupants", func(t *testing.T) {
		free, err := allocator.IsRampAvailable(ramp, nineOClock, nil)

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should conflict when windows overlap", func(t *testing.T) {
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)

		free, err := allocator.IsRampAvailable(
			ramp, nineOClock.Add(30*time.Minute), []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("should be free when slot starts exactly at occupant's end", func(t *testing.T) {
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)

		free, err := allocator.IsRampAvailable(
			ramp, nineOClock.Add(kernel.SlotDuration), []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should be free one minute after occupant's end", func(t *testing.T) {
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)

		free, err := allocator.IsRampAvailable(
			ramp, nineOClock.Add(51*time.Minute), []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should ignore occupants of other ramps", func(t *testing.T) {
		otherRamp, _ := truck.NewRampNumber(7)
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), otherRamp)

		free, err := allocator.IsRampAvailable(ramp, nineOClock, []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should ignore completed trucks", func(t *testing.T) {
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)
		require.NoError(t, occupant.MarkArrived(nineOClock))
		require.NoError(t, occupant.StartWork(kernel.NewUUID(), "Maria", nineOClock))
		require.NoError(t, occupant.MarkDone(nineOClock.Add(20*time.Minute)))

		free, err := allocator.IsRampAvailable(ramp, nineOClock, []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should use occupant's actual arrival when checked in", func(t *testing.T) {
		// Booked 09:00 but physically arrived 09:40, so the window runs
		// until 10:30 and a 10:00 candidate conflicts.
		occupant := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)
		require.NoError(t, occupant.MarkArrived(nineOClock.Add(40*time.Minute)))

		free, err := allocator.IsRampAvailable(
			ramp, nineOClock.Add(time.Hour), []*truck.Truck{occupant})

		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("should fail for zero candidate time", func(t *testing.T) {
		_, err := allocator.IsRampAvailable(ramp, time.Time{}, nil)

		require.Error(t, err)
	})
}

// TestRampAllocator_IsRampAvailable_RandomizedPairs cross-checks the
// allocator against the interval arithmetic over generated (ramp, time)
// pairs: a ramp is unavailable exactly when the occupant shares it and the
// half-open windows intersect. Fixed seed keeps failures reproducible.
func TestRampAllocator_IsRampAvailable_RandomizedPairs(t *testing.T) {
	allocator := services.NewRampAllocator()
	ramps := truck.AssignableRamps()
	day := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1738))

	for i := 0; i < 1000; i++ {
		candidateRamp := ramps[rng.Intn(len(ramps))]
		occupantRamp := ramps[rng.Intn(len(ramps))]
		candidateAt := day.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		occupantAt := day.Add(time.Duration(rng.Intn(24*60)) * time.Minute)

		occupant := onRamp(t, newTruckAt(t, "AAA-111", occupantAt), occupantRamp)

		free, err := allocator.IsRampAvailable(candidateRamp, candidateAt, []*truck.Truck{occupant})
		require.NoError(t, err)

		windowsOverlap := candidateAt.Before(occupantAt.Add(kernel.SlotDuration)) &&
			occupantAt.Before(candidateAt.Add(kernel.SlotDuration))
		wantFree := candidateRamp != occupantRamp || !windowsOverlap

		assert.Equalf(t, wantFree, free,
			"candidate ramp %d at %s vs occupant ramp %d at %s",
			candidateRamp, candidateAt.Format("15:04"),
			occupantRamp, occupantAt.Format("15:04"))
	}
}

func TestRampAllocator_IsRampAvailableFor(t *testing.T) {
	allocator := services.NewRampAllocator()
	ramp, _ := truck.NewRampNumber(3)
	nineOClock := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	t.Run("should exclude the candidate from the occupant set", func(t *testing.T) {
		candidate := onRamp(t, newTruckAt(t, "AAA-111", nineOClock), ramp)

		free, err := allocator.IsRampAvailableFor(ramp, candidate, []*truck.Truck{candidate})

		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("should still conflict with other trucks", func(t *testing.T) {
		candidate := newTruckAt(t, "AAA-111", nineOClock.Add(30*time.Minute))
		occupant := onRamp(t, newTruckAt(t, "BBB-222", nineOClock), ramp)

		free, err := allocator.IsRampAvailableFor(
			ramp, candidate, []*truck.Truck{occupant, candidate})

		require.NoError(t, err)
		assert.False(t, free)
	})
}
