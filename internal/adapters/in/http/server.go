// Package http exposes the dock yard core over a REST API built on Echo.
// The acting user's identity and role arrive in the X-User-Id and
// X-User-Role headers, set by the gateway in front of this service.
package http

import (
	"errors"
	"net/http"
	"time"

	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/application/usecases/commands"
	"dockyard/internal/core/application/usecases/queries"
	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	scheduleTruckHandler         commands.ScheduleTruckCommandHandler
	assignRampHandler            commands.AssignRampCommandHandler
	markArrivedHandler           commands.MarkArrivedCommandHandler
	startWorkHandler             commands.StartWorkCommandHandler
	markDoneHandler              commands.MarkDoneCommandHandler
	rescheduleTruckHandler       commands.RescheduleTruckCommandHandler
	deleteTruckHandler           commands.DeleteTruckCommandHandler
	reportExceptionHandler       commands.ReportExceptionCommandHandler
	updateExceptionStatusHandler commands.UpdateExceptionStatusCommandHandler

	// Query handlers
	getRampBoardHandler       queries.GetRampBoardQueryHandler
	getTrucksForDateHandler   queries.GetTrucksForDateQueryHandler
	getExceptionSummary       queries.GetExceptionSummaryQueryHandler
	getPhotoComplianceHandler queries.GetTruckPhotoComplianceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	scheduleTruckHandler commands.ScheduleTruckCommandHandler,
	assignRampHandler commands.AssignRampCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	startWorkHandler commands.StartWorkCommandHandler,
	markDoneHandler commands.MarkDoneCommandHandler,
	rescheduleTruckHandler commands.RescheduleTruckCommandHandler,
	deleteTruckHandler commands.DeleteTruckCommandHandler,
	reportExceptionHandler commands.ReportExceptionCommandHandler,
	updateExceptionStatusHandler commands.UpdateExceptionStatusCommandHandler,
	getRampBoardHandler queries.GetRampBoardQueryHandler,
	getTrucksForDateHandler queries.GetTrucksForDateQueryHandler,
	getExceptionSummary queries.GetExceptionSummaryQueryHandler,
	getPhotoComplianceHandler queries.GetTruckPhotoComplianceQueryHandler,
) *Server {
	return &Server{
		scheduleTruckHandler:         scheduleTruckHandler,
		assignRampHandler:            assignRampHandler,
		markArrivedHandler:           markArrivedHandler,
		startWorkHandler:             startWorkHandler,
		markDoneHandler:              markDoneHandler,
		rescheduleTruckHandler:       rescheduleTruckHandler,
		deleteTruckHandler:           deleteTruckHandler,
		reportExceptionHandler:       reportExceptionHandler,
		updateExceptionStatusHandler: updateExceptionStatusHandler,
		getRampBoardHandler:          getRampBoardHandler,
		getTrucksForDateHandler:      getTrucksForDateHandler,
		getExceptionSummary:          getExceptionSummary,
		getPhotoComplianceHandler:    getPhotoComplianceHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/trucks", s.ScheduleTruck)
	api.GET("/trucks", s.GetTrucksForDate)
	api.DELETE("/trucks/:id", s.DeleteTruck)
	api.POST("/trucks/:id/ramp", s.AssignRamp)
	api.POST("/trucks/:id/arrive", s.MarkArrived)
	api.POST("/trucks/:id/start", s.StartWork)
	api.POST("/trucks/:id/done", s.MarkDone)
	api.POST("/trucks/:id/reschedule", s.RescheduleTruck)
	api.GET("/trucks/:id/photo-compliance", s.GetPhotoCompliance)
	api.GET("/ramps/board", s.GetRampBoard)
	api.POST("/exceptions", s.ReportException)
	api.PATCH("/exceptions/:id/status", s.UpdateExceptionStatus)
	api.GET("/exceptions/summary", s.GetExceptionSummary)
}

// ScheduleTruck handles POST /api/v1/trucks - books a new truck visit.
func (s *Server) ScheduleTruck(ctx echo.Context) error {
	var request ScheduleTruckRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	plate, err := truck.NewLicensePlate(request.LicensePlate)
	if err != nil {
		return domainError(ctx, err)
	}

	priority, err := parsePriority(request.Priority)
	if err != nil {
		return domainError(ctx, err)
	}

	truckID := kernel.NewUUID()
	cmd, err := commands.NewScheduleTruckCommand(
		truckID, plate, request.ScheduledArrival, priority,
		request.PalletCount, request.CargoDescription,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.scheduleTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ScheduleTruckResponse{ID: truckID.String()})
}

// GetTrucksForDate handles GET /api/v1/trucks?date=2026-01-30.
func (s *Server) GetTrucksForDate(ctx echo.Context) error {
	date, err := time.Parse("2006-01-02", ctx.QueryParam("date"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing date parameter")
	}

	query, err := queries.NewGetTrucksForDateQuery(date)
	if err != nil {
		return domainError(ctx, err)
	}

	trucks, err := s.getTrucksForDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve trucks")
	}

	response := make([]Truck, len(trucks))
	for i, t := range trucks {
		var rampNumber *int
		if t.Ramp != nil {
			value := int(*t.Ramp)
			rampNumber = &value
		}

		response[i] = Truck{
			ID:               t.ID.String(),
			LicensePlate:     t.Plate,
			ScheduledArrival: t.ScheduledArrival,
			ActualArrival:    t.ActualArrival,
			RampNumber:       rampNumber,
			Status:           t.Status.String(),
			Priority:         t.Priority.String(),
			RescheduleCount:  t.RescheduleCount,
			IsOverdue:        t.IsOverdue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteTruck handles DELETE /api/v1/trucks/:id.
func (s *Server) DeleteTruck(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	cmd, err := commands.NewDeleteTruckCommand(truckID, role(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.deleteTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRamp handles POST /api/v1/trucks/:id/ramp.
func (s *Server) AssignRamp(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	var request AssignRampRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var staffID *kernel.UUID
	if request.StaffID != nil {
		id, staffErr := kernel.UUIDFromString(*request.StaffID)
		if staffErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid staff id")
		}
		staffID = &id
	}

	cmd, err := commands.NewAssignRampCommand(truckID, request.RampNumber, staffID, role(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.assignRampHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrived handles POST /api/v1/trucks/:id/arrive.
func (s *Server) MarkArrived(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	actorID, err := actor(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
	}

	cmd, err := commands.NewMarkArrivedCommand(truckID, actorID, role(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.markArrivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWork handles POST /api/v1/trucks/:id/start.
func (s *Server) StartWork(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	actorID, err := actor(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
	}

	var request StartWorkRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewStartWorkCommand(truckID, actorID, request.HandlerName, role(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.startWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDone handles POST /api/v1/trucks/:id/done.
func (s *Server) MarkDone(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	actorID, err := actor(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
	}

	var request MarkDoneRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var helperID *kernel.UUID
	if request.HelperID != nil {
		id, helperErr := kernel.UUIDFromString(*request.HelperID)
		if helperErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid helper id")
		}
		helperID = &id
	}

	cmd, err := commands.NewMarkDoneCommand(
		truckID, actorID, request.HandlerName, helperID, request.HelperName, role(ctx),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.markDoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RescheduleTruck handles POST /api/v1/trucks/:id/reschedule.
func (s *Server) RescheduleTruck(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	actorID, err := actor(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
	}

	var request RescheduleTruckRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRescheduleTruckCommand(
		truckID, request.NewArrival, request.Reason, actorID, role(ctx),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.rescheduleTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPhotoCompliance handles GET /api/v1/trucks/:id/photo-compliance.
func (s *Server) GetPhotoCompliance(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	query, err := queries.NewGetTruckPhotoComplianceQuery(truckID)
	if err != nil {
		return domainError(ctx, err)
	}

	compliance, err := s.getPhotoComplianceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to check photo compliance")
	}

	return ctx.JSON(http.StatusOK, PhotoComplianceResponse{
		TruckID:         compliance.TruckID.String(),
		RequiredCovered: compliance.RequiredCovered,
		RequiredTotal:   compliance.RequiredTotal,
		Score:           compliance.Score,
	})
}

// GetRampBoard handles GET /api/v1/ramps/board.
func (s *Server) GetRampBoard(ctx echo.Context) error {
	at := time.Now()
	if raw := ctx.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid at parameter")
		}
		at = parsed
	}

	query, err := queries.NewGetRampBoardQuery(at)
	if err != nil {
		return domainError(ctx, err)
	}

	board, err := s.getRampBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to build ramp board")
	}

	response := make([]RampBoardEntry, len(board))
	for i, entry := range board {
		var truckID *string
		if entry.TruckID != nil {
			id := entry.TruckID.String()
			truckID = &id
		}

		response[i] = RampBoardEntry{
			RampNumber: int(entry.Ramp),
			State:      string(entry.State),
			TruckID:    truckID,
			Plate:      entry.Plate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReportException handles POST /api/v1/exceptions.
func (s *Server) ReportException(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
	}

	var request ReportExceptionRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	truckID, err := kernel.UUIDFromString(request.TruckID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid truck id")
	}

	exceptionType, err := parseExceptionType(request.Type)
	if err != nil {
		return domainError(ctx, err)
	}

	priority, err := parsePriority(request.Priority)
	if err != nil {
		return domainError(ctx, err)
	}

	exceptionID := kernel.NewUUID()
	cmd, err := commands.NewReportExceptionCommand(
		exceptionID, truckID, exceptionType, request.Reason,
		priority, request.EstimatedResolution, actorID, role(ctx),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.reportExceptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportExceptionResponse{ID: exceptionID.String()})
}

// UpdateExceptionStatus handles PATCH /api/v1/exceptions/:id/status.
func (s *Server) UpdateExceptionStatus(ctx echo.Context) error {
	exceptionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid exception id")
	}

	var request UpdateExceptionStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := parseExceptionStatus(request.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	var resolvedBy *kernel.UUID
	if newStatus == exception.StatusResolved {
		actorID, actorErr := actor(ctx)
		if actorErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid or missing user id")
		}
		resolvedBy = &actorID
	}

	cmd, err := commands.NewUpdateExceptionStatusCommand(exceptionID, newStatus, resolvedBy, role(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateExceptionStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetExceptionSummary handles GET /api/v1/exceptions/summary.
func (s *Server) GetExceptionSummary(ctx echo.Context) error {
	query := queries.NewGetExceptionSummaryQuery()

	summary, err := s.getExceptionSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to summarize exceptions")
	}

	return ctx.JSON(http.StatusOK, ExceptionSummary{
		Pending:    summary.Pending,
		InProgress: summary.InProgress,
		Escalated:  summary.Escalated,
		Resolved:   summary.Resolved,
		Open:       summary.Open,
	})
}

func role(ctx echo.Context) policy.Role {
	return policy.Role(ctx.Request().Header.Get(headerUserRole))
}

func actor(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// domainError maps core errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, policy.ErrCapabilityDenied):
		return errorJSON(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, commands.ErrRampIsOccupied),
		errors.Is(err, commands.ErrOperationInFlight),
		errors.Is(err, truck.ErrTruckAlreadyCompleted),
		errors.Is(err, exception.ErrExceptionAlreadyResolved),
		errors.Is(err, exception.ErrInvalidStatusTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, truck.ErrRescheduleNotInFuture),
		errors.Is(err, truck.ErrRampNotAssignable):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())

	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}
