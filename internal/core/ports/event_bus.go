package ports

// EntityKind names a collection the remote store pushes change
// notifications for.
type EntityKind string

const (
	// EntityKindTruck covers the trucks collection.
	EntityKindTruck EntityKind = "trucks"
	// EntityKindException covers the truck_exceptions collection.
	EntityKindException EntityKind = "truck_exceptions"
)

// ChangeEvent describes one change notification from the remote store.
type ChangeEvent struct {
	Kind EntityKind
	// Payload carries the store's notification body, typically the changed
	// record's identifier. Subscribers must not assume more structure.
	Payload string
}

// EventBus decouples the core's cache-invalidation logic from the transport
// carrying change notifications. The postgres adapter publishes NOTIFY
// payloads onto the bus; the core subscribes per entity kind and drops its
// cached views.
type EventBus interface {
	// Subscribe registers a handler for change events of one entity kind.
	// Handlers may be invoked concurrently and must be safe for that.
	Subscribe(kind EntityKind, handler func(ChangeEvent))

	// Publish delivers an event to every subscriber of its kind.
	Publish(event ChangeEvent)
}
