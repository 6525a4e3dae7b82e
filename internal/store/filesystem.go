package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// FileStore persists the document as a single pretty-printed JSON file.
// Writes go through a temp file + rename in the target directory, so a
// failed save leaves the previous on-disk content intact.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the JSON document at path.
// The file is not touched until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the document. Returns svm.ErrNoDocument when the
// file does not exist.
func (f *FileStore) Load() (*svm.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, svm.ErrNoDocument
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return DecodeDocument(data)
}

// Save writes the document atomically.
func (f *FileStore) Save(doc *svm.Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return writeFileAtomic(f.path, data)
}

// EncodeDocument renders the document as pretty-printed JSON, the same form
// FileStore writes. Backups reuse it so a sealed snapshot and a data file
// carry identical payloads.
func EncodeDocument(doc *svm.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Close is a no-op; the file is not held open between operations.
func (f *FileStore) Close() error { return nil }

// envelope mirrors svm.Document with raw student records so each one can be
// decoded strictly on its own.
type envelope struct {
	Students    []json.RawMessage `json:"students"`
	LastUpdated time.Time         `json:"last_updated"`
	TotalCount  int               `json:"total_count"`
}

// DecodeDocument parses a JSON document. Unknown fields inside a student
// record are rejected rather than silently dropped; unknown keys at the
// document level are ignored. Records are not validated here — that is the
// service's job on load.
func DecodeDocument(data []byte) (*svm.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}

	doc := &svm.Document{
		Students:    make([]svm.Student, 0, len(env.Students)),
		LastUpdated: env.LastUpdated,
		TotalCount:  env.TotalCount,
	}
	for _, raw := range env.Students {
		var st svm.Student
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&st); err != nil {
			return nil, fmt.Errorf("parsing student record: %w", err)
		}
		doc.Students = append(doc.Students, st)
	}
	return doc, nil
}

// writeFileAtomic writes data to destPath using a temp file in the same
// directory followed by an atomic rename.
func writeFileAtomic(destPath string, data []byte) error {
	dir := filepath.Dir(destPath)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing data: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// Compile-time check that FileStore implements svm.Store interface
var _ svm.Store = (*FileStore)(nil)
