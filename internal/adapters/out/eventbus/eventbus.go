// Package eventbus provides the in-process implementation of the core's
// change event bus.
package eventbus

import (
	"sync"

	"dockyard/internal/core/ports"
)

// InMemoryEventBus fans change events out to subscribers within the
// process. Publish blocks until every subscriber for the event's kind has
// run; handlers are expected to be quick (cache invalidation, counters).
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[ports.EntityKind][]func(ports.ChangeEvent)
}

// NewInMemoryEventBus creates an empty bus.
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[ports.EntityKind][]func(ports.ChangeEvent)),
	}
}

// Subscribe registers a handler for change events of one entity kind.
func (b *InMemoryEventBus) Subscribe(kind ports.EntityKind, handler func(ports.ChangeEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish delivers an event to every subscriber of its kind.
func (b *InMemoryEventBus) Publish(event ports.ChangeEvent) {
	b.mu.RLock()
	handlers := b.handlers[event.Kind]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
