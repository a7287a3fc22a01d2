package http

import (
	"strings"
	"time"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"
)

// Error is the uniform error body for every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScheduleTruckRequest is the body of POST /api/v1/trucks.
type ScheduleTruckRequest struct {
	LicensePlate     string    `json:"licensePlate"`
	ScheduledArrival time.Time `json:"scheduledArrival"`
	Priority         string    `json:"priority"`
	PalletCount      int       `json:"palletCount"`
	CargoDescription string    `json:"cargoDescription"`
}

// ScheduleTruckResponse returns the identifier of the created booking.
type ScheduleTruckResponse struct {
	ID string `json:"id"`
}

// AssignRampRequest is the body of POST /api/v1/trucks/:id/ramp.
type AssignRampRequest struct {
	RampNumber int     `json:"rampNumber"`
	StaffID    *string `json:"staffId,omitempty"`
}

// StartWorkRequest is the body of POST /api/v1/trucks/:id/start.
type StartWorkRequest struct {
	HandlerName string `json:"handlerName"`
}

// MarkDoneRequest is the body of POST /api/v1/trucks/:id/done.
type MarkDoneRequest struct {
	HandlerName string  `json:"handlerName"`
	HelperID    *string `json:"helperId,omitempty"`
	HelperName  string  `json:"helperName,omitempty"`
}

// RescheduleTruckRequest is the body of POST /api/v1/trucks/:id/reschedule.
type RescheduleTruckRequest struct {
	NewArrival time.Time `json:"newArrival"`
	Reason     string    `json:"reason"`
}

// ReportExceptionRequest is the body of POST /api/v1/exceptions.
type ReportExceptionRequest struct {
	TruckID             string     `json:"truckId"`
	Type                string     `json:"type"`
	Reason              string     `json:"reason"`
	Priority            string     `json:"priority"`
	EstimatedResolution *time.Time `json:"estimatedResolution,omitempty"`
}

// ReportExceptionResponse returns the identifier of the created exception.
type ReportExceptionResponse struct {
	ID string `json:"id"`
}

// UpdateExceptionStatusRequest is the body of
// PATCH /api/v1/exceptions/:id/status.
type UpdateExceptionStatusRequest struct {
	Status string `json:"status"`
}

// Truck is the read model returned by the day listing.
type Truck struct {
	ID               string     `json:"id"`
	LicensePlate     string     `json:"licensePlate"`
	ScheduledArrival time.Time  `json:"scheduledArrival"`
	ActualArrival    *time.Time `json:"actualArrival,omitempty"`
	RampNumber       *int       `json:"rampNumber,omitempty"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	RescheduleCount  int        `json:"rescheduleCount"`
	IsOverdue        bool       `json:"isOverdue"`
}

// RampBoardEntry is one ramp on the occupancy board.
type RampBoardEntry struct {
	RampNumber int     `json:"rampNumber"`
	State      string  `json:"state"`
	TruckID    *string `json:"truckId,omitempty"`
	Plate      string  `json:"plate,omitempty"`
}

// ExceptionSummary holds per-status issue counters.
type ExceptionSummary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Escalated  int `json:"escalated"`
	Resolved   int `json:"resolved"`
	Open       int `json:"open"`
}

// PhotoComplianceResponse reports the photo documentation score for a
// truck.
type PhotoComplianceResponse struct {
	TruckID         string  `json:"truckId"`
	RequiredCovered int     `json:"requiredCovered"`
	RequiredTotal   int     `json:"requiredTotal"`
	Score           float64 `json:"score"`
}

func parsePriority(value string) (truck.Priority, error) {
	switch strings.ToLower(value) {
	case "", "normal":
		return truck.PriorityNormal, nil
	case "low":
		return truck.PriorityLow, nil
	case "high":
		return truck.PriorityHigh, nil
	case "urgent":
		return truck.PriorityUrgent, nil
	default:
		return truck.PriorityUnknown, errs.NewValueIsInvalidError("priority")
	}
}

func parseExceptionType(value string) (exception.Type, error) {
	switch strings.ToLower(value) {
	case "damage":
		return exception.TypeDamage, nil
	case "delay":
		return exception.TypeDelay, nil
	case "documentation":
		return exception.TypeDocumentation, nil
	case "other":
		return exception.TypeOther, nil
	default:
		return exception.TypeUnknown, errs.NewValueIsInvalidError("type")
	}
}

func parseExceptionStatus(value string) (exception.Status, error) {
	switch strings.ToLower(value) {
	case "pending":
		return exception.StatusPending, nil
	case "inprogress", "in_progress":
		return exception.StatusInProgress, nil
	case "escalated":
		return exception.StatusEscalated, nil
	case "resolved":
		return exception.StatusResolved, nil
	default:
		return exception.StatusUnknown, errs.NewValueIsInvalidError("status")
	}
}
