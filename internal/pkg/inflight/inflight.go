// Package inflight tracks operations that are currently outstanding for a
// given entity. It protects against duplicate submits of the same operation
// on the same truck (double-click, retried form post) within one process.
// It is not a cross-client lock: two sessions on different machines can
// still race; that conflict is resolved by the store, not here.
package inflight

import (
	"fmt"
	"sync"
)

// Tracker records (entity id, operation) pairs that are in flight.
// The zero value is not usable; create instances with NewTracker.
type Tracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewTracker creates an empty in-flight tracker.
func NewTracker() *Tracker {
	return &Tracker{pending: make(map[string]struct{})}
}

// TryAcquire marks the operation as in flight for the entity.
// Returns false when the same operation on the same entity is already
// outstanding, in which case the caller must reject the duplicate.
func (t *Tracker) TryAcquire(entityID, operation string) bool {
	key := fmt.Sprintf("%s:%s", entityID, operation)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.pending[key]; exists {
		return false
	}
	t.pending[key] = struct{}{}
	return true
}

// Release clears the in-flight marker. Must be called when the operation
// completes, whether it succeeded or failed.
func (t *Tracker) Release(entityID, operation string) {
	key := fmt.Sprintf("%s:%s", entityID, operation)

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, key)
}
