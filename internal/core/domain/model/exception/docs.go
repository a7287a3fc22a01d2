// Package exception contains the Exception aggregate: operational issues
// (damage, delay, documentation problems) reported against a truck visit.
// Exceptions move through a forward-biased lifecycle and stamp their
// resolution metadata exactly once.
package exception
