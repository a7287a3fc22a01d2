package commands_test

import (
	"context"
	"testing"
	"time"

	"dockyard/internal/core/application/usecases/commands"
	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) LockRampForAssignment(ctx context.Context, ramp truck.RampNumber) error {
	args := m.Called(ctx, ramp)
	return args.Error(0)
}

func (m *MockTruckRepository) GetActiveOnRamp(ctx context.Context, ramp truck.RampNumber) ([]*truck.Truck, error) {
	args := m.Called(ctx, ramp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetScheduledBetween(ctx context.Context, from, to time.Time) ([]*truck.Truck, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Exception), args.Error(1)
}

func (m *MockExceptionRepository) GetByTruck(ctx context.Context, truckID kernel.UUID) ([]*exception.Exception, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exception.Exception), args.Error(1)
}

type MockHandlerRecordRepository struct{ mock.Mock }

func (m *MockHandlerRecordRepository) Add(ctx context.Context, record ports.HandlerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHandlerRecordRepository) GetByTruck(ctx context.Context, truckID kernel.UUID) ([]ports.HandlerRecord, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.HandlerRecord), args.Error(1)
}

type MockStoreProcedures struct{ mock.Mock }

func (m *MockStoreProcedures) HandleTruckArrival(ctx context.Context, truckID, userID kernel.UUID) error {
	args := m.Called(ctx, truckID, userID)
	return args.Error(0)
}

func (m *MockStoreProcedures) HandleTruckStatusChange(
	ctx context.Context, truckID kernel.UUID, newStatus truck.Status, userID kernel.UUID,
) error {
	args := m.Called(ctx, truckID, newStatus, userID)
	return args.Error(0)
}

func (m *MockStoreProcedures) RescheduleOverdueTruck(
	ctx context.Context, truckID kernel.UUID, newArrival time.Time, reason string, userID kernel.UUID,
) error {
	args := m.Called(ctx, truckID, newArrival, reason, userID)
	return args.Error(0)
}

func (m *MockStoreProcedures) RefreshUserKPIMetrics(ctx context.Context, targetDate time.Time) error {
	args := m.Called(ctx, targetDate)
	return args.Error(0)
}

func (m *MockStoreProcedures) CheckTruckPhotoCompliance(
	ctx context.Context, truckID kernel.UUID,
) (ports.PhotoCompliance, error) {
	args := m.Called(ctx, truckID)
	return args.Get(0).(ports.PhotoCompliance), args.Error(1)
}

type MockTruckUoW struct{ mock.Mock }

func (m *MockTruckUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockExceptionUoW struct{ mock.Mock }

func (m *MockExceptionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExceptionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExceptionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExceptionUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

type MockExceptionUoWFactory struct{ mock.Mock }

func (m *MockExceptionUoWFactory) Create() commands.ExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExceptionUoW)
}

type MockCompletionUoW struct{ mock.Mock }

func (m *MockCompletionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompletionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompletionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompletionUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockCompletionUoW) HandlerRecordRepository() ports.HandlerRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlerRecordRepository)
}

type MockCompletionUoWFactory struct{ mock.Mock }

func (m *MockCompletionUoWFactory) Create() commands.CompletionUoW {
	args := m.Called()
	return args.Get(0).(commands.CompletionUoW)
}

// Aggregate builders shared by the handler tests.

func testScheduledTruck(t *testing.T, arrival time.Time) *truck.Truck {
	t.Helper()
	plate, err := truck.NewLicensePlate("ABC-123")
	require.NoError(t, err)
	aggregate, err := truck.NewTruck(kernel.NewUUID(), plate, arrival, truck.PriorityNormal, 10, "pallets")
	require.NoError(t, err)
	return aggregate
}

func testArrivedTruck(t *testing.T, arrival time.Time) *truck.Truck {
	t.Helper()
	aggregate := testScheduledTruck(t, arrival)
	require.NoError(t, aggregate.MarkArrived(arrival))
	return aggregate
}

func testInProgressTruck(t *testing.T, arrival time.Time) *truck.Truck {
	t.Helper()
	aggregate := testArrivedTruck(t, arrival)
	require.NoError(t, aggregate.StartWork(kernel.NewUUID(), "Maria", arrival.Add(5*time.Minute)))
	return aggregate
}

func testDoneTruck(t *testing.T, arrival time.Time) *truck.Truck {
	t.Helper()
	aggregate := testInProgressTruck(t, arrival)
	require.NoError(t, aggregate.MarkDone(arrival.Add(30*time.Minute)))
	return aggregate
}
