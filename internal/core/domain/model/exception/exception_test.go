package exception_test

import (
	"strings"
	"testing"
	"time"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingException(t *testing.T) *exception.Exception {
	t.Helper()
	record, err := exception.NewException(
		kernel.NewUUID(), kernel.NewUUID(), exception.TypeDamage,
		"pallet crushed during unloading", truck.PriorityHigh, nil, kernel.NewUUID())
	require.NoError(t, err)
	return record
}

func TestNewException(t *testing.T) {
	t.Run("should create exception in Pending status", func(t *testing.T) {
		truckID := kernel.NewUUID()
		reporter := kernel.NewUUID()
		estimate := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

		record, err := exception.NewException(
			kernel.NewUUID(), truckID, exception.TypeDelay,
			"driver stuck in customs", truck.PriorityNormal, &estimate, reporter)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, exception.StatusPending, record.Status())
		assert.True(t, record.TruckID().IsEqual(truckID))
		assert.True(t, record.ReportedBy().IsEqual(reporter))
		assert.Equal(t, estimate, *record.EstimatedResolution())
		assert.Nil(t, record.ResolvedBy())
		assert.Nil(t, record.ResolvedAt())
	})

	t.Run("should require reason", func(t *testing.T) {
		_, err := exception.NewException(
			kernel.NewUUID(), kernel.NewUUID(), exception.TypeOther,
			"", truck.PriorityNormal, nil, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should reject reason over 500 characters", func(t *testing.T) {
		_, err := exception.NewException(
			kernel.NewUUID(), kernel.NewUUID(), exception.TypeOther,
			strings.Repeat("x", 501), truck.PriorityNormal, nil, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := exception.NewException(
			kernel.NewUUID(), kernel.NewUUID(), exception.TypeUnknown,
			"something", truck.PriorityNormal, nil, kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestException_TransitionTo(t *testing.T) {
	now := time.Date(2026, 1, 30, 14, 0, 0, 0, time.UTC)

	t.Run("should move Pending to InProgress", func(t *testing.T) {
		record := pendingException(t)

		err := record.TransitionTo(exception.StatusInProgress, nil, now)

		require.NoError(t, err)
		assert.Equal(t, exception.StatusInProgress, record.Status())
	})

	t.Run("should move Pending to Escalated", func(t *testing.T) {
		record := pendingException(t)

		err := record.TransitionTo(exception.StatusEscalated, nil, now)

		require.NoError(t, err)
		assert.Equal(t, exception.StatusEscalated, record.Status())
	})

	t.Run("should move InProgress to Escalated", func(t *testing.T) {
		record := pendingException(t)
		require.NoError(t, record.TransitionTo(exception.StatusInProgress, nil, now))

		err := record.TransitionTo(exception.StatusEscalated, nil, now)

		require.NoError(t, err)
	})

	t.Run("should not move Escalated back to InProgress", func(t *testing.T) {
		record := pendingException(t)
		require.NoError(t, record.TransitionTo(exception.StatusEscalated, nil, now))

		err := record.TransitionTo(exception.StatusInProgress, nil, now)

		require.ErrorIs(t, err, exception.ErrInvalidStatusTransition)
	})

	t.Run("should resolve from any non-terminal status", func(t *testing.T) {
		for _, intermediate := range []exception.Status{
			exception.StatusPending, exception.StatusInProgress, exception.StatusEscalated,
		} {
			record := pendingException(t)
			if intermediate != exception.StatusPending {
				require.NoError(t, record.TransitionTo(intermediate, nil, now))
			}

			resolver := kernel.NewUUID()
			err := record.TransitionTo(exception.StatusResolved, &resolver, now)

			require.NoError(t, err, "from %s", intermediate)
			assert.Equal(t, exception.StatusResolved, record.Status())
			require.NotNil(t, record.ResolvedBy())
			assert.True(t, record.ResolvedBy().IsEqual(resolver))
			require.NotNil(t, record.ResolvedAt())
			assert.Equal(t, now, *record.ResolvedAt())
		}
	})

	t.Run("should require resolver identity on resolve", func(t *testing.T) {
		record := pendingException(t)

		err := record.TransitionTo(exception.StatusResolved, nil, now)

		require.Error(t, err)
	})

	t.Run("should reject any transition on resolved exception", func(t *testing.T) {
		record := pendingException(t)
		resolver := kernel.NewUUID()
		require.NoError(t, record.TransitionTo(exception.StatusResolved, &resolver, now))
		stampedAt := *record.ResolvedAt()

		later := kernel.NewUUID()
		err := record.TransitionTo(exception.StatusResolved, &later, now.Add(time.Hour))

		require.ErrorIs(t, err, exception.ErrExceptionAlreadyResolved)
		// Resolution metadata is stamped exactly once.
		assert.True(t, record.ResolvedBy().IsEqual(resolver))
		assert.Equal(t, stampedAt, *record.ResolvedAt())

		require.ErrorIs(t,
			record.TransitionTo(exception.StatusInProgress, nil, now.Add(time.Hour)),
			exception.ErrExceptionAlreadyResolved)
	})
}

func TestRestoreException(t *testing.T) {
	t.Run("should restore resolved exception", func(t *testing.T) {
		resolver := kernel.NewUUID()
		resolvedAt := time.Date(2026, 1, 30, 15, 0, 0, 0, time.UTC)

		record, err := exception.RestoreException(
			kernel.NewUUID(), kernel.NewUUID(), exception.TypeDocumentation,
			"missing CMR", truck.PriorityLow, exception.StatusResolved,
			nil, kernel.NewUUID(), &resolver, &resolvedAt)

		require.NoError(t, err)
		assert.Equal(t, exception.StatusResolved, record.Status())
		assert.Equal(t, resolvedAt, *record.ResolvedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := exception.RestoreException(
			kernel.NewUUID(), kernel.NewUUID(), exception.TypeOther,
			"reason", truck.PriorityNormal, exception.StatusUnknown,
			nil, kernel.NewUUID(), nil, nil)

		require.Error(t, err)
	})
}
