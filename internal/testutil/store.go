package testutil

import (
	"errors"

	"github.com/nguyendan07/seminary-management-system/internal/store"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// NewTestStore creates an empty in-memory store.
func NewTestStore() svm.Store {
	return store.NewMemoryStore()
}

// ErrInduced is the error FailingStore returns from operations set to fail.
var ErrInduced = errors.New("induced store failure")

// FailingStore wraps a Store and fails operations on demand. Flip FailLoad
// or FailSave between calls to drive persistence-failure paths.
type FailingStore struct {
	Inner    svm.Store
	FailLoad bool
	FailSave bool
}

// NewFailingStore wraps inner. Both failure flags start off.
func NewFailingStore(inner svm.Store) *FailingStore {
	return &FailingStore{Inner: inner}
}

func (s *FailingStore) Load() (*svm.Document, error) {
	if s.FailLoad {
		return nil, ErrInduced
	}
	return s.Inner.Load()
}

func (s *FailingStore) Save(doc *svm.Document) error {
	if s.FailSave {
		return ErrInduced
	}
	return s.Inner.Save(doc)
}

func (s *FailingStore) Close() error { return s.Inner.Close() }

var _ svm.Store = (*FailingStore)(nil)
