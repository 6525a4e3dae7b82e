package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nguyendan07/seminary-management-system/internal/store/migrations"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// SQLiteStore mirrors the document into an embedded relational database.
// The students table keeps an explicit position column so Load returns
// records in the same order they were saved, and Save is a transactional
// full rewrite: either the new collection is visible or the previous one is.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and brings
// the schema up to the latest version.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := migrations.MigrateUp(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// studentRow maps one students table row.
type studentRow struct {
	Position  int    `db:"position"`
	ID        string `db:"id"`
	Name      string `db:"name"`
	BirthDate string `db:"birth_date"`
	Hometown  string `db:"hometown"`
	Parish    string `db:"parish"`
	Diocese   string `db:"diocese"`
}

// metaRow maps the single collection_meta row.
type metaRow struct {
	LastUpdated time.Time `db:"last_updated"`
	TotalCount  int       `db:"total_count"`
}

// Load reads the full document. Returns svm.ErrNoDocument when nothing has
// been saved yet (no collection_meta row).
func (s *SQLiteStore) Load() (*svm.Document, error) {
	var meta metaRow
	err := s.db.Get(&meta, `SELECT last_updated, total_count FROM collection_meta WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, svm.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection meta: %w", err)
	}

	var rows []studentRow
	err = s.db.Select(&rows, `
		SELECT position, id, name, birth_date, hometown, parish, diocese
		FROM students
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("reading students: %w", err)
	}

	doc := &svm.Document{
		Students:    make([]svm.Student, 0, len(rows)),
		LastUpdated: meta.LastUpdated,
		TotalCount:  meta.TotalCount,
	}
	for _, r := range rows {
		doc.Students = append(doc.Students, svm.Student{
			ID:        r.ID,
			Name:      r.Name,
			BirthDate: r.BirthDate,
			Hometown:  r.Hometown,
			Parish:    r.Parish,
			Diocese:   r.Diocese,
		})
	}
	return doc, nil
}

// Save replaces the stored collection with doc inside one transaction.
func (s *SQLiteStore) Save(doc *svm.Document) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM students`); err != nil {
		return fmt.Errorf("clearing students: %w", err)
	}

	for i, st := range doc.Students {
		_, err := tx.Exec(`
			INSERT INTO students (position, id, name, birth_date, hometown, parish, diocese)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, st.ID, st.Name, st.BirthDate, st.Hometown, st.Parish, st.Diocese)
		if err != nil {
			return fmt.Errorf("inserting student %s: %w", st.ID, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO collection_meta (id, last_updated, total_count)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_updated = excluded.last_updated,
			total_count  = excluded.total_count`,
		doc.LastUpdated, doc.TotalCount)
	if err != nil {
		return fmt.Errorf("updating collection meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteStore implements svm.Store interface
var _ svm.Store = (*SQLiteStore)(nil)
