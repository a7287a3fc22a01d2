package exception

import (
	"errors"
	"time"

	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"

	"dockyard/internal/core/domain/model/kernel"
)

const reasonMaxLength = 500

// Domain errors for exception operations.
var (
	// ErrExceptionIsNotConstructed is returned when an Exception was not
	// created through NewException or RestoreException.
	ErrExceptionIsNotConstructed = errors.New(
		"Exception must be created via NewException or RestoreException constructor")
	// ErrExceptionAlreadyResolved is returned when transitioning an already
	// resolved exception. Resolution metadata is never re-stamped.
	ErrExceptionAlreadyResolved = errors.New("exception is already resolved")
	// ErrInvalidStatusTransition is returned for backward or undefined moves.
	ErrInvalidStatusTransition = errors.New("exception status transition is not allowed")
	// ErrReasonIsRequired is returned when reporting an exception without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// Exception records one operational issue (damage, delay, documentation
// problem) tied to a specific truck. It is an aggregate root with a
// forward-biased status lifecycle; resolution stamps the resolver identity
// and time exactly once.
type Exception struct {
	id      kernel.UUID
	truckID kernel.UUID

	exceptionType Type
	reason        string
	priority      truck.Priority
	status        Status

	reportedBy kernel.UUID

	// estimatedResolution is the reporter's optional estimate of when the
	// issue will be cleared
	estimatedResolution *time.Time

	// resolvedBy/resolvedAt are stamped exactly once, on the transition to
	// Resolved
	resolvedBy *kernel.UUID
	resolvedAt *time.Time

	guard guard.ConstructorGuard
}

// NewException creates a freshly reported Exception in Pending status.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - truckID: The truck the issue is tied to
//   - exceptionType: Category of the issue
//   - reason: Free text up to 500 characters, required
//   - priority: Triage priority
//   - estimatedResolution: Optional estimate of when the issue clears
//   - reportedBy: Identity of the reporting user
func NewException(
	id kernel.UUID,
	truckID kernel.UUID,
	exceptionType Type,
	reason string,
	priority truck.Priority,
	estimatedResolution *time.Time,
	reportedBy kernel.UUID,
) (*Exception, error) {
	e := &Exception{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setTruckID(truckID),
		e.setType(exceptionType),
		e.setReason(reason),
		e.setPriority(priority),
		e.setReportedBy(reportedBy),
	); err != nil {
		return nil, err
	}

	e.estimatedResolution = estimatedResolution
	return e, nil
}

// RestoreException reconstructs an Exception from persistent storage.
func RestoreException(
	id kernel.UUID,
	truckID kernel.UUID,
	exceptionType Type,
	reason string,
	priority truck.Priority,
	status Status,
	estimatedResolution *time.Time,
	reportedBy kernel.UUID,
	resolvedBy *kernel.UUID,
	resolvedAt *time.Time,
) (*Exception, error) {
	e := &Exception{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setTruckID(truckID),
		e.setType(exceptionType),
		e.setReason(reason),
		e.setPriority(priority),
		e.setReportedBy(reportedBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	e.status = status
	e.estimatedResolution = estimatedResolution
	e.resolvedBy = resolvedBy
	e.resolvedAt = resolvedAt
	return e, nil
}

// Validate ensures the Exception was constructed through a constructor.
func (e *Exception) Validate() error {
	if e == nil || e.guard.Validate(ErrExceptionIsNotConstructed) != nil {
		return ErrExceptionIsNotConstructed
	}
	return nil
}

// ID returns the exception's unique identifier.
func (e *Exception) ID() kernel.UUID {
	return e.id
}

// TruckID returns the identifier of the truck the issue is tied to.
func (e *Exception) TruckID() kernel.UUID {
	return e.truckID
}

// Type returns the issue category.
func (e *Exception) Type() Type {
	return e.exceptionType
}

// Reason returns the free-text description of the issue.
func (e *Exception) Reason() string {
	return e.reason
}

// Priority returns the triage priority.
func (e *Exception) Priority() truck.Priority {
	return e.priority
}

// Status returns the current handling status.
func (e *Exception) Status() Status {
	return e.status
}

// ReportedBy returns the identity of the reporting user.
func (e *Exception) ReportedBy() kernel.UUID {
	return e.reportedBy
}

// EstimatedResolution returns the reporter's estimate, or nil.
func (e *Exception) EstimatedResolution() *time.Time {
	return e.estimatedResolution
}

// ResolvedBy returns who resolved the issue, or nil while unresolved.
func (e *Exception) ResolvedBy() *kernel.UUID {
	return e.resolvedBy
}

// ResolvedAt returns when the issue was resolved, or nil while unresolved.
func (e *Exception) ResolvedAt() *time.Time {
	return e.resolvedAt
}

// TransitionTo moves the exception to a new handling status.
//
// Moving to Resolved requires the resolver identity and stamps resolvedBy
// and resolvedAt exactly once; attempting any transition on an already
// resolved exception returns ErrExceptionAlreadyResolved without touching
// the stamped fields. Backward moves return ErrInvalidStatusTransition.
func (e *Exception) TransitionTo(newStatus Status, resolvedBy *kernel.UUID, at time.Time) error {
	if e.status.IsTerminal() {
		return ErrExceptionAlreadyResolved
	}
	if !e.status.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}

	if newStatus == StatusResolved {
		if resolvedBy == nil {
			return errs.NewValueIsRequiredError("resolved by")
		}
		if err := resolvedBy.Validate(); err != nil {
			return err
		}
		e.resolvedBy = resolvedBy
		e.resolvedAt = &at
	}

	e.status = newStatus
	return nil
}

func (e *Exception) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Exception) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	e.truckID = truckID
	return nil
}

func (e *Exception) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.exceptionType = t
	return nil
}

func (e *Exception) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	if len([]rune(reason)) > reasonMaxLength {
		return errs.NewValueIsOutOfRangeError("reason length", len([]rune(reason)), 1, reasonMaxLength)
	}
	e.reason = reason
	return nil
}

func (e *Exception) setPriority(priority truck.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	e.priority = priority
	return nil
}

func (e *Exception) setReportedBy(reportedBy kernel.UUID) error {
	if err := reportedBy.Validate(); err != nil {
		return err
	}
	e.reportedBy = reportedBy
	return nil
}
