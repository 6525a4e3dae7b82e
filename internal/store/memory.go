package store

import (
	"sync"

	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// MemoryStore keeps the document in process memory. It exists for tests and
// throwaway sessions; nothing survives a restart.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *svm.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the last saved document, or svm.ErrNoDocument when
// nothing has been saved yet.
func (m *MemoryStore) Load() (*svm.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.doc == nil {
		return nil, svm.ErrNoDocument
	}
	return copyDocument(m.doc), nil
}

// Save stores a copy of the document.
func (m *MemoryStore) Save(doc *svm.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = copyDocument(doc)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// copyDocument clones doc so callers cannot alias the stored slice.
func copyDocument(doc *svm.Document) *svm.Document {
	out := *doc
	out.Students = make([]svm.Student, len(doc.Students))
	copy(out.Students, doc.Students)
	return &out
}

// Compile-time check that MemoryStore implements svm.Store interface
var _ svm.Store = (*MemoryStore)(nil)
