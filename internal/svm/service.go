package svm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RecordService owns the authoritative in-memory student collection and keeps
// it mirrored 1:1 to a Store document on every mutation. All operations run
// to completion on the calling goroutine; the service assumes a single
// logical caller issuing one operation at a time.
type RecordService struct {
	store    Store
	notifier Notifier
	logger   Logger
	clock    Clock
	students []Student
}

// NewRecordService creates the service and populates the collection from the
// store. A missing, unreadable, or invalid document falls back to the seed
// set, so the returned service is always usable.
func NewRecordService(store Store, notifier Notifier, logger Logger, clock Clock) *RecordService {
	s := &RecordService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		clock:    clock,
	}
	s.load()
	return s
}

// load populates the collection from the store, seeding the sample data when
// the document is missing, unreadable, or holds a record that fails
// validation. The collection is never left unset.
func (s *RecordService) load() {
	doc, err := s.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			s.logger.Info("no stored document, seeding sample data")
		} else {
			s.logger.Warn("loading document failed, seeding sample data", "error", err)
		}
		s.seed()
		return
	}

	students := make([]Student, 0, len(doc.Students))
	for _, st := range doc.Students {
		if err := st.Validate(); err != nil {
			s.logger.Warn("stored record failed validation, seeding sample data",
				"id", st.ID, "error", err)
			s.seed()
			return
		}
		students = append(students, st)
	}

	s.students = students
	s.logger.Info("students loaded", "count", len(s.students))
}

// seed replaces the collection with the sample data and persists it. A
// failed persist is logged and the in-memory seed set stays in effect.
func (s *RecordService) seed() {
	s.students = SeedStudents()
	if err := s.save("seed"); err != nil {
		s.logger.Error("persisting seed data failed", "error", err)
		return
	}
	s.logger.Info("sample data seeded", "count", len(s.students))
}

// save mirrors the in-memory collection to the store as a full document
// rewrite. op names the calling operation for error reporting.
func (s *RecordService) save(op string) error {
	if err := s.store.Save(s.Snapshot()); err != nil {
		return &Error{Op: op, Kind: ErrPersistence, Err: err}
	}
	return nil
}

// Snapshot returns the document that a save would write: a copy of the
// collection plus the current timestamp and count.
func (s *RecordService) Snapshot() *Document {
	return &Document{
		Students:    s.Students(),
		LastUpdated: s.clock.Now(),
		TotalCount:  len(s.students),
	}
}

// Students returns a snapshot copy of the collection in insertion order.
func (s *RecordService) Students() []Student {
	out := make([]Student, len(s.students))
	copy(out, s.students)
	return out
}

// Count returns the number of records in the collection.
func (s *RecordService) Count() int { return len(s.students) }

// Get returns the record whose id matches exactly.
func (s *RecordService) Get(id string) (Student, error) {
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return Student{}, &Error{Op: "get", ID: id, Kind: ErrNotFound}
}

// Add validates the record, appends it to the collection, and returns the
// stored (normalized) record. Validation runs strictly before the duplicate
// guard, so a record that is both malformed and duplicate reports the
// validation failure.
func (s *RecordService) Add(st Student) (Student, error) {
	if err := st.Validate(); err != nil {
		return Student{}, err
	}
	if s.contains(st.ID) {
		return Student{}, &Error{Op: "add", ID: st.ID, Kind: ErrDuplicateID}
	}

	s.students = append(s.students, st)
	if err := s.save("add"); err != nil {
		s.logger.Error("saving after add failed", "id", st.ID, "error", err)
		return Student{}, err
	}

	s.publish(EventStudentAdded, st.ID)
	s.logger.Info("student added", "id", st.ID, "name", st.Name)
	return st, nil
}

// Update validates the replacement, swaps it in at the existing record's
// position, and returns the stored (normalized) record. Renaming a record
// onto another id that is already present is rejected: id uniqueness is a
// collection invariant.
func (s *RecordService) Update(id string, st Student) (Student, error) {
	if err := st.Validate(); err != nil {
		return Student{}, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Student{}, &Error{Op: "update", ID: id, Kind: ErrNotFound}
	}
	if st.ID != id && s.contains(st.ID) {
		return Student{}, &Error{Op: "update", ID: st.ID, Kind: ErrDuplicateID}
	}

	s.students[idx] = st
	if err := s.save("update"); err != nil {
		s.logger.Error("saving after update failed", "id", id, "error", err)
		return Student{}, err
	}

	s.publish(EventStudentUpdated, id)
	s.logger.Info("student updated", "id", id, "name", st.Name)
	return st, nil
}

// Delete removes the record with the given id.
func (s *RecordService) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &Error{Op: "delete", ID: id, Kind: ErrNotFound}
	}

	removed := s.students[idx]
	s.students = append(s.students[:idx], s.students[idx+1:]...)
	if err := s.save("delete"); err != nil {
		s.logger.Error("saving after delete failed", "id", id, "error", err)
		return err
	}

	s.publish(EventStudentDeleted, id)
	s.logger.Info("student deleted", "id", id, "name", removed.Name)
	return nil
}

// NextID returns the next free id in the SV numbering scheme: the highest
// numeric suffix plus one, zero-padded to three digits. Ids whose suffix is
// not all digits are ignored. Returns SV001 for an empty collection or when
// no id conforms.
func (s *RecordService) NextID() string {
	highest := 0
	for _, st := range s.students {
		if n, ok := numericSuffix(st.ID); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("SV%03d", highest+1)
}

// Reload discards the in-memory collection, re-runs the load sequence with
// the same seed fallback, and notifies subscribers that the collection
// changed. Used by the refresh operation and after a backup restore.
func (s *RecordService) Reload() {
	s.load()
	s.notifier.Publish(Event{Type: EventStudentsChanged, At: s.clock.Now()})
}

// publish emits the specific event for a mutation followed by the generic
// collection-changed event, in that order.
func (s *RecordService) publish(t EventType, id string) {
	now := s.clock.Now()
	s.notifier.Publish(Event{Type: t, StudentID: id, At: now})
	s.notifier.Publish(Event{Type: EventStudentsChanged, At: now})
}

func (s *RecordService) contains(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *RecordService) indexOf(id string) int {
	for i, st := range s.students {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// numericSuffix extracts the number following the SV prefix. ok is false when
// the id does not start with SV or the suffix is empty or not all digits.
func numericSuffix(id string) (n int, ok bool) {
	rest, found := strings.CutPrefix(id, "SV")
	if !found || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
