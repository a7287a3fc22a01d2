package kernel_test

import (
	"testing"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("should create slot with valid start time", func(t *testing.T) {
		start := day.Add(9 * time.Hour)

		slot, err := kernel.NewSlot(start)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.Equal(t, start, slot.Start())
		assert.Equal(t, start.Add(50*time.Minute), slot.End())
	})

	t.Run("should fail with zero start time", func(t *testing.T) {
		_, err := kernel.NewSlot(time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value slot", func(t *testing.T) {
		var slot kernel.Slot

		require.Error(t, slot.Validate())
	})
}

func TestSlot_Overlaps(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) kernel.Slot {
		slot, err := kernel.NewSlot(day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute))
		require.NoError(t, err)
		return slot
	}

	t.Run("should overlap when windows intersect", func(t *testing.T) {
		// 09:00-09:50 vs 09:30-10:20
		assert.True(t, at(9, 0).Overlaps(at(9, 30)))
		assert.True(t, at(9, 30).Overlaps(at(9, 0)))
	})

	t.Run("should overlap identical windows", func(t *testing.T) {
		assert.True(t, at(9, 0).Overlaps(at(9, 0)))
	})

	t.Run("should not overlap adjacent windows", func(t *testing.T) {
		// 09:00-09:50 vs 09:50-10:40: half-open windows touch but do not intersect
		assert.False(t, at(9, 0).Overlaps(at(9, 50)))
		assert.False(t, at(9, 50).Overlaps(at(9, 0)))
	})

	t.Run("should not overlap when one minute past the window end", func(t *testing.T) {
		// 09:00-09:50 vs 09:51-10:41
		assert.False(t, at(9, 0).Overlaps(at(9, 51)))
	})

	t.Run("should not overlap disjoint windows", func(t *testing.T) {
		assert.False(t, at(8, 0).Overlaps(at(14, 0)))
	})
}

func TestSlot_String(t *testing.T) {
	t.Run("should format window bounds", func(t *testing.T) {
		slot, _ := kernel.NewSlot(time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))

		assert.Equal(t, "Slot(09:00 - 09:50)", slot.String())
	})
}
