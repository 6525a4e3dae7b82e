package svm

import "time"

// EventType identifies a collection change notification.
type EventType string

const (
	// EventStudentAdded fires after a record is appended and persisted.
	EventStudentAdded EventType = "student.added"
	// EventStudentUpdated fires after a record is replaced and persisted.
	EventStudentUpdated EventType = "student.updated"
	// EventStudentDeleted fires after a record is removed and persisted.
	EventStudentDeleted EventType = "student.deleted"
	// EventStudentsChanged fires after every successful mutation, always
	// following the specific event for that mutation. A subscriber listening
	// only to this event still observes each mutation exactly once.
	EventStudentsChanged EventType = "students.changed"
)

// Event is a collection change notification delivered to observers.
// StudentID carries the affected record's id and is empty for
// EventStudentsChanged.
type Event struct {
	Type      EventType
	StudentID string
	At        time.Time
}

// Handler processes a single event. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(Event)

// Notifier lets observers register for collection change events.
// Registration order is delivery order.
type Notifier interface {
	// Subscribe registers a handler for one event type.
	Subscribe(t EventType, h Handler)

	// SubscribeAll registers a handler for every event type.
	SubscribeAll(h Handler)

	// Publish delivers an event to all matching handlers before returning.
	Publish(e Event)
}
