// Package policy maps user roles to the capabilities the application's
// commands require. Each command declares the capability it needs; the
// handler checks it once at the boundary instead of scattering role string
// comparisons through the call sites.
package policy

import (
	"fmt"

	"dockyard/internal/pkg/errs"
)

// Role is the coarse access level a session operates under.
type Role string

const (
	// RoleStaff is the operational warehouse role. Staff advance the truck
	// pipeline and report exceptions.
	RoleStaff Role = "staff"
	// RoleAdmin is the office role. Admins read, assign ramps, reschedule
	// and manage exceptions, but do not advance the forward pipeline.
	RoleAdmin Role = "admin"
	// RoleSuperadmin holds every capability, including truck deletion.
	RoleSuperadmin Role = "superadmin"
)

// Capability names one guarded operation.
type Capability string

const (
	// CapAdvanceStatus guards the forward pipeline transitions
	// (mark arrived, start work, mark done).
	CapAdvanceStatus Capability = "advance_status"
	// CapAssignRamp guards ramp assignment.
	CapAssignRamp Capability = "assign_ramp"
	// CapReschedule guards moving a truck's booking.
	CapReschedule Capability = "reschedule"
	// CapDeleteTruck guards permanent truck deletion.
	CapDeleteTruck Capability = "delete_truck"
	// CapReportException guards creating exception records.
	CapReportException Capability = "report_exception"
	// CapResolveException guards exception status updates.
	CapResolveException Capability = "resolve_exception"
)

// ErrCapabilityDenied is returned when a role lacks the capability a
// command requires.
var ErrCapabilityDenied = errs.NewValueIsInvalidError("role does not hold the required capability")

// Policy resolves which capabilities each role holds.
type Policy struct {
	grants map[Role]map[Capability]bool
}

// NewPolicy creates the default dock yard policy:
//
//   - staff: advance status, assign ramps, report exceptions
//   - admin: assign ramps, reschedule, report and resolve exceptions
//   - superadmin: everything, including deletion
func NewPolicy() Policy {
	return Policy{
		grants: map[Role]map[Capability]bool{
			RoleStaff: {
				CapAdvanceStatus:   true,
				CapAssignRamp:      true,
				CapReportException: true,
			},
			RoleAdmin: {
				CapAssignRamp:       true,
				CapReschedule:       true,
				CapReportException:  true,
				CapResolveException: true,
			},
			RoleSuperadmin: {
				CapAdvanceStatus:    true,
				CapAssignRamp:       true,
				CapReschedule:       true,
				CapDeleteTruck:      true,
				CapReportException:  true,
				CapResolveException: true,
			},
		},
	}
}

// Validate checks that the role is one of the declared roles.
func (r Role) Validate() error {
	switch r {
	case RoleStaff, RoleAdmin, RoleSuperadmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// Allows reports whether the role holds the capability.
func (p Policy) Allows(role Role, capability Capability) bool {
	caps, ok := p.grants[role]
	if !ok {
		return false
	}
	return caps[capability]
}

// Check returns ErrCapabilityDenied when the role lacks the capability.
func (p Policy) Check(role Role, capability Capability) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !p.Allows(role, capability) {
		return ErrCapabilityDenied
	}
	return nil
}

// CheckReschedule applies the reschedule rule: admins (and superadmins) may
// always reschedule, and any role may reschedule a truck the surrounding
// system has flagged overdue.
func (p Policy) CheckReschedule(role Role, truckIsOverdue bool) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if truckIsOverdue {
		return nil
	}
	return p.Check(role, CapReschedule)
}
