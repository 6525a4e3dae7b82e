package svm

import "time"

// Document is the persistent form of the collection: the full record list
// plus bookkeeping fields that are derivable from it and not independently
// trustworthy.
type Document struct {
	Students    []Student `json:"students"`
	LastUpdated time.Time `json:"last_updated"`
	TotalCount  int       `json:"total_count"`
}

// Store provides an interface for document persistence backends. The service
// mirrors its in-memory collection 1:1 through Save on every mutation; there
// is no partial write.
type Store interface {
	// Load reads the whole document. Returns ErrNoDocument if nothing has
	// ever been saved; any other error means the backing data exists but
	// could not be read or parsed.
	Load() (*Document, error)

	// Save atomically replaces the stored document with doc. A failed save
	// leaves the previously stored content intact.
	Save(doc *Document) error

	// Close releases backend resources.
	Close() error
}
