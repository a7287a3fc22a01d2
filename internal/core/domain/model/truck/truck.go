package truck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/pkg/errs"
	"dockyard/internal/pkg/guard"
)

const (
	palletCountMin = 1
	palletCountMax = 100

	cargoDescriptionMaxLength = 500
)

// Domain errors for truck operations.
var (
	// ErrTruckIsNotConstructed is returned when a Truck instance was not
	// created through NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck or RestoreTruck constructor")
	// ErrTruckAlreadyCompleted is returned when mutating a Done truck.
	ErrTruckAlreadyCompleted = errors.New("truck is already completed")
	// ErrRescheduleNotInFuture is returned when a reschedule targets a moment
	// that is not strictly in the future.
	ErrRescheduleNotInFuture = errors.New("rescheduled arrival must be in the future")
	// ErrHandlerNameIsRequired is returned when starting work without a handler name.
	ErrHandlerNameIsRequired = errs.NewValueIsRequiredError("handler name")
)

// Truck is the aggregate root of the dock yard core. It tracks one physical
// truck visit from scheduling through ramp assignment and handling to
// completion, along with the reschedule audit trail.
//
// Truck follows these invariants:
//   - Must have a valid unique identifier and license plate
//   - Status only moves forward: Scheduled -> Arrived -> InProgress -> Done
//   - Actual arrival is recorded exactly once, on the Arrived transition
//   - originalArrival is captured on the first reschedule and never overwritten
//   - rescheduleCount increases by exactly one per reschedule
//   - Pallet count stays within [1, 100]; cargo description carries no markup
//   - Can only be created through NewTruck or RestoreTruck
//
// The ramp-exclusivity invariant (no two non-Done trucks with overlapping
// slots on one ramp) spans multiple trucks and is enforced by the
// RampAllocator domain service, not by a single aggregate.
type Truck struct {
	id kernel.UUID

	// plate is the truck's registration identifier
	plate LicensePlate

	// scheduledArrival is when the truck is booked to arrive; replaced on reschedule
	scheduledArrival time.Time

	// actualArrival is set once on the Arrived transition (nil before)
	actualArrival *time.Time

	// ramp is nil until a dock is assigned
	ramp *RampNumber

	// assignedStaffID optionally records the staff member attached during
	// ramp assignment
	assignedStaffID *kernel.UUID

	priority Priority
	status   Status

	// handlerID/handlerName identify who started handling the truck
	handlerID   *kernel.UUID
	handlerName string

	startedAt   *time.Time
	completedAt *time.Time

	// originalArrival preserves the pre-reschedule booking; set on the first
	// reschedule only
	originalArrival *time.Time

	// rescheduleCount counts how many times the booking moved
	rescheduleCount int

	// isOverdue is an externally computed signal: scheduled time passed
	// without the truck arriving. The core consumes and clears it.
	isOverdue bool

	palletCount      int
	cargoDescription string

	guard guard.ConstructorGuard
}

// NewTruck creates a freshly scheduled Truck. The truck starts in Scheduled
// status with no ramp, no arrival and an empty reschedule history.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - plate: Validated license plate
//   - scheduledArrival: Booked arrival moment (must not be zero)
//   - priority: Handling priority
//   - palletCount: Number of pallets, within [1, 100]
//   - cargoDescription: Free text up to 500 characters, no markup
//
// Returns:
//   - *Truck: The created truck if all validations pass
//   - error: Aggregated validation errors otherwise
func NewTruck(
	id kernel.UUID,
	plate LicensePlate,
	scheduledArrival time.Time,
	priority Priority,
	palletCount int,
	cargoDescription string,
) (*Truck, error) {
	t := &Truck{
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setScheduledArrival(scheduledArrival),
		t.setPriority(priority),
		t.setPalletCount(palletCount),
		t.setCargoDescription(cargoDescription),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck from persistent storage. Unlike NewTruck
// it accepts the full lifecycle state; the status itself is validated but
// historical fields are taken as stored.
func RestoreTruck(
	id kernel.UUID,
	plate LicensePlate,
	scheduledArrival time.Time,
	actualArrival *time.Time,
	ramp *RampNumber,
	assignedStaffID *kernel.UUID,
	priority Priority,
	status Status,
	handlerID *kernel.UUID,
	handlerName string,
	startedAt *time.Time,
	completedAt *time.Time,
	originalArrival *time.Time,
	rescheduleCount int,
	isOverdue bool,
	palletCount int,
	cargoDescription string,
) (*Truck, error) {
	t := &Truck{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setScheduledArrival(scheduledArrival),
		t.setPriority(priority),
		t.setPalletCount(palletCount),
		t.setCargoDescription(cargoDescription),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if rescheduleCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"reschedule count", fmt.Errorf("%d is negative", rescheduleCount))
	}

	t.status = status
	t.actualArrival = actualArrival
	t.ramp = ramp
	t.assignedStaffID = assignedStaffID
	t.handlerID = handlerID
	t.handlerName = handlerName
	t.startedAt = startedAt
	t.completedAt = completedAt
	t.originalArrival = originalArrival
	t.rescheduleCount = rescheduleCount
	t.isOverdue = isOverdue

	return t, nil
}

// Validate ensures the Truck was constructed through NewTruck or RestoreTruck.
func (t *Truck) Validate() error {
	if t == nil || t.guard.Validate(ErrTruckIsNotConstructed) != nil {
		return ErrTruckIsNotConstructed
	}
	return nil
}

// IsEqual compares two trucks by their unique identifiers.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the truck's license plate.
func (t *Truck) Plate() LicensePlate {
	return t.plate
}

// ScheduledArrival returns the currently booked arrival moment.
func (t *Truck) ScheduledArrival() time.Time {
	return t.scheduledArrival
}

// ActualArrival returns when the truck checked in, or nil before arrival.
func (t *Truck) ActualArrival() *time.Time {
	return t.actualArrival
}

// Ramp returns the assigned ramp, or nil when none is assigned.
func (t *Truck) Ramp() *RampNumber {
	return t.ramp
}

// AssignedStaff returns the staff member attached at ramp assignment, if any.
func (t *Truck) AssignedStaff() *kernel.UUID {
	return t.assignedStaffID
}

// Priority returns the truck's handling priority.
func (t *Truck) Priority() Priority {
	return t.priority
}

// Status returns the current lifecycle status.
func (t *Truck) Status() Status {
	return t.status
}

// Handler returns the identity of the staff member who started handling,
// or nil before work begins.
func (t *Truck) Handler() *kernel.UUID {
	return t.handlerID
}

// HandlerName returns the display name recorded when work started.
func (t *Truck) HandlerName() string {
	return t.handlerName
}

// StartedAt returns when handling began, or nil before work starts.
func (t *Truck) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when handling finished, or nil before completion.
func (t *Truck) CompletedAt() *time.Time {
	return t.completedAt
}

// OriginalArrival returns the arrival booked before the first reschedule,
// or nil when the truck was never rescheduled.
func (t *Truck) OriginalArrival() *time.Time {
	return t.originalArrival
}

// RescheduleCount returns how many times the booking was moved.
func (t *Truck) RescheduleCount() int {
	return t.rescheduleCount
}

// IsOverdue reports the externally supplied overdue flag.
func (t *Truck) IsOverdue() bool {
	return t.isOverdue
}

// PalletCount returns the declared number of pallets.
func (t *Truck) PalletCount() int {
	return t.palletCount
}

// CargoDescription returns the free-text cargo description.
func (t *Truck) CargoDescription() string {
	return t.cargoDescription
}

// Slot returns the 50-minute window during which this truck occupies its
// ramp. The window starts at the actual arrival when the truck has checked
// in, and at the scheduled arrival otherwise.
func (t *Truck) Slot() (kernel.Slot, error) {
	start := t.scheduledArrival
	if t.actualArrival != nil {
		start = *t.actualArrival
	}
	return kernel.NewSlot(start)
}

// AssignRamp attaches the truck to a dock, optionally recording the staff
// member responsible for it. Availability against other trucks on the ramp
// is checked by the RampAllocator service before this method is called;
// the aggregate itself only rejects assignment to a completed truck.
func (t *Truck) AssignRamp(ramp RampNumber, staffID *kernel.UUID) error {
	if err := ramp.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return ErrTruckAlreadyCompleted
	}
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	t.ramp = &ramp
	t.assignedStaffID = staffID
	return nil
}

// MarkArrived records the truck's physical check-in. Permitted only from
// Scheduled. The actual arrival time is recorded exactly once and is kept
// distinct from the scheduled arrival for actual-vs-scheduled reporting.
// Arrival does not require a ramp to be pre-assigned.
func (t *Truck) MarkArrived(at time.Time) error {
	newStatus, err := t.status.Arrive()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("arrival time")
	}

	t.status = newStatus
	t.actualArrival = &at
	return nil
}

// StartWork records the handler taking over the truck. Permitted only from
// Arrived. The handler identity, name and start timestamp are recorded as
// side effects of the transition.
func (t *Truck) StartWork(handlerID kernel.UUID, handlerName string, at time.Time) error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}
	if err = handlerID.Validate(); err != nil {
		return err
	}
	if handlerName == "" {
		return ErrHandlerNameIsRequired
	}

	t.status = newStatus
	t.handlerID = &handlerID
	t.handlerName = handlerName
	t.startedAt = &at
	return nil
}

// MarkDone finishes handling. Permitted only from InProgress. Records the
// completion timestamp; handler credit rows and the metrics recompute are
// persisted by the command handler around this transition.
func (t *Truck) MarkDone(at time.Time) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.completedAt = &at
	return nil
}

// Reschedule moves the booked arrival to a new moment strictly in the
// future relative to now.
//
// On the first reschedule the then-current scheduled arrival is copied into
// the original-arrival audit field; later reschedules never overwrite it.
// Each call increments the reschedule count by exactly one and clears the
// overdue flag.
func (t *Truck) Reschedule(newArrival time.Time, now time.Time) error {
	if t.status.IsTerminal() {
		return ErrTruckAlreadyCompleted
	}
	if newArrival.IsZero() {
		return errs.NewValueIsRequiredError("rescheduled arrival")
	}
	if !newArrival.After(now) {
		return ErrRescheduleNotInFuture
	}

	if t.originalArrival == nil {
		original := t.scheduledArrival
		t.originalArrival = &original
	}

	t.scheduledArrival = newArrival
	t.rescheduleCount++
	t.isOverdue = false
	return nil
}

// SetOverdue applies the externally computed overdue signal. The core never
// derives this flag itself; the surrounding system pushes it in.
func (t *Truck) SetOverdue(overdue bool) {
	t.isOverdue = overdue
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setPlate(plate LicensePlate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	t.plate = plate
	return nil
}

func (t *Truck) setScheduledArrival(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduled arrival")
	}
	t.scheduledArrival = at
	return nil
}

func (t *Truck) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Truck) setPalletCount(count int) error {
	if count < palletCountMin || count > palletCountMax {
		return errs.NewValueIsOutOfRangeError("pallet count", count, palletCountMin, palletCountMax)
	}
	t.palletCount = count
	return nil
}

func (t *Truck) setCargoDescription(description string) error {
	if len([]rune(description)) > cargoDescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"cargo description length", len([]rune(description)), 0, cargoDescriptionMaxLength)
	}
	if strings.ContainsAny(description, "<>") {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargo description", errors.New("markup is not allowed"))
	}
	t.cargoDescription = description
	return nil
}
