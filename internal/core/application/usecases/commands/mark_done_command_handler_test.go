package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/application/usecases/commands"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/core/ports"
	"dockyard/internal/pkg/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMarkDoneHandler(
	factory *MockCompletionUoWFactory,
	procedures *MockStoreProcedures,
) commands.MarkDoneCommandHandler {
	return commands.NewMarkDoneCommandHandler(
		factory, procedures, inflight.NewTracker(), policy.NewPolicy(), slog.New(slog.DiscardHandler))
}

func waitForRefresh(t *testing.T, refreshDone <-chan struct{}) {
	t.Helper()
	select {
	case <-refreshDone:
	case <-time.After(time.Second):
		t.Fatal("KPI refresh did not run")
	}
}

func TestMarkDoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testInProgressTruck(t, arrival)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewMarkDoneCommand(
		current.ID(), actorID, "Maria Svensson", nil, "", policy.RoleStaff)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	handlerRepo := new(MockHandlerRecordRepository)
	uow := new(MockCompletionUoW)
	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	// The status-change procedure and the background KPI refresh both run on
	// derived contexts, so the ctx argument is matched loosely.
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("HandlerRecordRepository").Return(handlerRepo).Once(),
		handlerRepo.On("Add", ctx, ports.HandlerRecord{
			TruckID:     current.ID(),
			HandlerID:   actorID,
			HandlerName: "Maria Svensson",
		}).Return(nil).Once(),
		procedures.On("HandleTruckStatusChange", mock.Anything, current.ID(), truck.Done, actorID).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	procedures.On("RefreshUserKPIMetrics", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	refreshDone := make(chan struct{})
	handler := newMarkDoneHandler(factory, procedures).WithRefreshNotifier(refreshDone)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	waitForRefresh(t, refreshDone)

	assert.Equal(t, truck.Done, current.Status())
	truckRepo.AssertExpectations(t)
	handlerRepo.AssertExpectations(t)
	procedures.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkDoneCommandHandler_Handle_HelperCredited(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testInProgressTruck(t, arrival)
	actorID := kernel.NewUUID()
	helperID := kernel.NewUUID()
	cmd, err := commands.NewMarkDoneCommand(
		current.ID(), actorID, "Maria", &helperID, "Jonas", policy.RoleStaff)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	handlerRepo := new(MockHandlerRecordRepository)
	uow := new(MockCompletionUoW)
	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("HandlerRecordRepository").Return(handlerRepo).Once(),
		handlerRepo.On("Add", ctx, ports.HandlerRecord{
			TruckID: current.ID(), HandlerID: actorID, HandlerName: "Maria",
		}).Return(nil).Once(),
		handlerRepo.On("Add", ctx, ports.HandlerRecord{
			TruckID: current.ID(), HandlerID: helperID, HandlerName: "Jonas",
		}).Return(nil).Once(),
		procedures.On("HandleTruckStatusChange", mock.Anything, current.ID(), truck.Done, actorID).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	procedures.On("RefreshUserKPIMetrics", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	refreshDone := make(chan struct{})
	handler := newMarkDoneHandler(factory, procedures).WithRefreshNotifier(refreshDone)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	waitForRefresh(t, refreshDone)
	handlerRepo.AssertNumberOfCalls(t, "Add", 2)
	handlerRepo.AssertExpectations(t)
	procedures.AssertExpectations(t)
}

func TestMarkDoneCommandHandler_Handle_AlreadyDone(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testDoneTruck(t, arrival)
	cmd, err := commands.NewMarkDoneCommand(
		current.ID(), kernel.NewUUID(), "Maria", nil, "", policy.RoleStaff)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	uow := new(MockCompletionUoW)
	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newMarkDoneHandler(factory, procedures)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, truck.ErrTruckAlreadyCompleted)
	procedures.AssertNotCalled(t, "HandleTruckStatusChange",
		mock.Anything, current.ID(), truck.Done, mock.Anything)
	procedures.AssertNotCalled(t, "RefreshUserKPIMetrics", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkDoneCommandHandler_Handle_RefreshFailureDoesNotFailCompletion(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testInProgressTruck(t, arrival)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewMarkDoneCommand(current.ID(), actorID, "Maria", nil, "", policy.RoleStaff)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	handlerRepo := new(MockHandlerRecordRepository)
	uow := new(MockCompletionUoW)
	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("HandlerRecordRepository").Return(handlerRepo).Once(),
		handlerRepo.On("Add", ctx, mock.AnythingOfType("ports.HandlerRecord")).Return(nil).Once(),
		procedures.On("HandleTruckStatusChange", mock.Anything, current.ID(), truck.Done, actorID).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	procedures.On("RefreshUserKPIMetrics", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(assert.AnError).Once()

	refreshDone := make(chan struct{})
	handler := newMarkDoneHandler(factory, procedures).WithRefreshNotifier(refreshDone)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	waitForRefresh(t, refreshDone)
	procedures.AssertExpectations(t)
}

func TestMarkDoneCommandHandler_Handle_CreditWriteFailureSkipsStatusChange(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testInProgressTruck(t, arrival)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewMarkDoneCommand(current.ID(), actorID, "Maria", nil, "", policy.RoleStaff)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	handlerRepo := new(MockHandlerRecordRepository)
	uow := new(MockCompletionUoW)
	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("HandlerRecordRepository").Return(handlerRepo).Once(),
		handlerRepo.On("Add", ctx, mock.AnythingOfType("ports.HandlerRecord")).
			Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newMarkDoneHandler(factory, procedures)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
	procedures.AssertNotCalled(t, "HandleTruckStatusChange",
		mock.Anything, current.ID(), truck.Done, actorID)
	procedures.AssertNotCalled(t, "RefreshUserKPIMetrics", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkDoneCommandHandler_Handle_DuplicateSubmit(t *testing.T) {
	ctx := t.Context()
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)

	current := testInProgressTruck(t, arrival)
	cmd, err := commands.NewMarkDoneCommand(
		current.ID(), kernel.NewUUID(), "Maria", nil, "", policy.RoleStaff)
	require.NoError(t, err)

	tracker := inflight.NewTracker()
	require.True(t, tracker.TryAcquire(current.ID().String(), "mark_done"))

	factory := new(MockCompletionUoWFactory)
	procedures := new(MockStoreProcedures)

	handler := commands.NewMarkDoneCommandHandler(
		factory, procedures, tracker, policy.NewPolicy(), slog.New(slog.DiscardHandler))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOperationInFlight)
	factory.AssertNotCalled(t, "Create")
}

func TestMarkDoneCommandHandler_Handle_HelperNameRequired(t *testing.T) {
	arrival := time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC)
	current := testInProgressTruck(t, arrival)
	helperID := kernel.NewUUID()

	_, err := commands.NewMarkDoneCommand(
		current.ID(), kernel.NewUUID(), "Maria", &helperID, "", policy.RoleStaff)

	require.Error(t, err)
}
