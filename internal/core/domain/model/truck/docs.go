// Package truck contains the Truck aggregate and its value objects.
//
// A Truck models one physical visit to the yard: the booking (scheduled
// arrival, pallet count, cargo description, priority), the assigned dock
// (RampNumber), the forward-only lifecycle (Status), the handler credited
// with the work, and the reschedule audit trail (original arrival and
// reschedule count).
//
// Value objects in this package validate themselves on construction:
// LicensePlate enforces the accepted plate pattern, RampNumber restricts
// assignment to the declared loading/unloading pools (the service bay,
// ramp 5, is never assignable), Priority and Status are closed enums.
//
// The cross-truck ramp-exclusivity rule lives in the services package,
// because no single aggregate can see every truck on a ramp.
package truck
