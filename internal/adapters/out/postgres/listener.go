package postgres

import (
	"log/slog"
	"time"

	"dockyard/internal/core/ports"

	"github.com/lib/pq"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// ChangeListener bridges Postgres NOTIFY messages onto the core's event
// bus. The store raises a notification on the channel named after the
// changed collection; subscribers on the bus invalidate their cached views.
//
// Delivery is best effort: notifications can be dropped across reconnects,
// which is why a periodic cache flush job runs as a fallback.
type ChangeListener struct {
	listener *pq.Listener
	bus      ports.EventBus
	logger   *slog.Logger
	done     chan struct{}
}

// NewChangeListener creates a listener over the given connection string.
// Start must be called before notifications flow.
func NewChangeListener(dsn string, bus ports.EventBus, logger *slog.Logger) *ChangeListener {
	l := &ChangeListener{
		bus:    bus,
		logger: logger.With("component", "change_listener"),
		done:   make(chan struct{}),
	}

	l.listener = pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				l.logger.Error("listener connection event", "event", int(event), "error", err)
			}
		})

	return l
}

// Start subscribes to the per-collection notification channels and begins
// forwarding events. It returns after the subscriptions are registered;
// forwarding runs on a background goroutine until Stop.
func (l *ChangeListener) Start() error {
	for _, kind := range []ports.EntityKind{ports.EntityKindTruck, ports.EntityKindException} {
		if err := l.listener.Listen(string(kind)); err != nil {
			return err
		}
	}

	go l.forward()
	return nil
}

// Stop closes the underlying connection and ends forwarding.
func (l *ChangeListener) Stop() error {
	close(l.done)
	return l.listener.Close()
}

func (l *ChangeListener) forward() {
	ping := time.NewTicker(listenerPingInterval)
	defer ping.Stop()

	for {
		select {
		case notification := <-l.listener.Notify:
			// A nil notification signals a reconnect; events may have been
			// missed while the connection was down.
			if notification == nil {
				l.logger.Warn("listener reconnected, notifications may have been missed")
				continue
			}

			l.bus.Publish(ports.ChangeEvent{
				Kind:    ports.EntityKind(notification.Channel),
				Payload: notification.Extra,
			})

		case <-ping.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.Error("listener ping failed", "error", err)
			}

		case <-l.done:
			return
		}
	}
}
