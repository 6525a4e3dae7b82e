// Package events provides the in-memory observer bus for collection change
// notifications.
package events

import (
	"sync"

	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// Bus is a synchronous in-memory implementation of svm.Notifier. Handlers run
// on the publishing goroutine in registration order: type-specific handlers
// first, then catch-all handlers. Suitable for a single-process tool where
// every mutation must be observed before the operation returns.
type Bus struct {
	mu          sync.RWMutex
	handlers    map[svm.EventType][]svm.Handler
	allHandlers []svm.Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[svm.EventType][]svm.Handler),
	}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(t svm.EventType, h svm.Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h svm.Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allHandlers = append(b.allHandlers, h)
}

// Publish delivers the event to all matching handlers before returning.
func (b *Bus) Publish(e svm.Event) {
	b.mu.RLock()
	specific := make([]svm.Handler, len(b.handlers[e.Type]))
	copy(specific, b.handlers[e.Type])
	all := make([]svm.Handler, len(b.allHandlers))
	copy(all, b.allHandlers)
	b.mu.RUnlock()

	for _, h := range specific {
		h(e)
	}
	for _, h := range all {
		h(e)
	}
}

// Compile-time check that Bus implements svm.Notifier
var _ svm.Notifier = (*Bus)(nil)
