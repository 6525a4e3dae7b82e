package testutil

import (
	"sync"

	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// RecordingNotifier captures published events in publication order. It
// satisfies svm.Notifier; subscriptions are accepted but handlers are never
// invoked.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []svm.Event
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Subscribe(svm.EventType, svm.Handler) {}

func (n *RecordingNotifier) SubscribeAll(svm.Handler) {}

func (n *RecordingNotifier) Publish(e svm.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

// Events returns a copy of everything published so far.
func (n *RecordingNotifier) Events() []svm.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]svm.Event, len(n.events))
	copy(out, n.events)
	return out
}

// Types returns just the event types, in publication order.
func (n *RecordingNotifier) Types() []svm.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]svm.EventType, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

// Reset discards everything recorded so far.
func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

var _ svm.Notifier = (*RecordingNotifier)(nil)
