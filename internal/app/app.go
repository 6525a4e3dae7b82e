package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nguyendan07/seminary-management-system/internal/backup"
	"github.com/nguyendan07/seminary-management-system/internal/config"
	"github.com/nguyendan07/seminary-management-system/internal/events"
	"github.com/nguyendan07/seminary-management-system/internal/session"
	"github.com/nguyendan07/seminary-management-system/internal/store"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// App is the application layer between the CLI and RecordService.
// It constructs all dependencies from config, exposes high-level operations,
// and manages store and log-file lifecycle on Close.
type App struct {
	cfg     *config.Config
	store   svm.Store
	bus     *events.Bus
	service *svm.RecordService
	session *session.Manager
	logFile *os.File
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "add", "export").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	logger, logFile, err := newLogger(cfg.LogDir, operation)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	lg := &slogAdapter{l: logger}

	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating store: %w", err)
	}

	bus := events.NewBus()
	bus.SubscribeAll(func(e svm.Event) {
		lg.Info("event published", "type", string(e.Type), "student_id", e.StudentID)
	})

	svc := svm.NewRecordService(st, bus, lg, svm.RealClock{})
	sess := session.NewManager(cfg.Session.Path, svm.RealClock{}, svm.UUIDGenerator{}, lg)

	return &App{
		cfg:     cfg,
		store:   st,
		bus:     bus,
		service: svc,
		session: sess,
		logFile: logFile,
	}, nil
}

// Students returns every record in insertion order.
func (a *App) Students() []svm.Student { return a.service.Students() }

// Count returns the number of records.
func (a *App) Count() int { return a.service.Count() }

// Get returns the record whose id matches exactly.
func (a *App) Get(id string) (svm.Student, error) { return a.service.Get(id) }

// Add inserts a new student record and returns the stored form. An empty id
// is filled in with the next free id in the SV numbering scheme.
func (a *App) Add(st svm.Student) (svm.Student, error) {
	if st.ID == "" {
		st.ID = a.service.NextID()
	}
	return a.service.Add(st)
}

// Update replaces the record with the given id and returns the stored form.
func (a *App) Update(id string, st svm.Student) (svm.Student, error) {
	return a.service.Update(id, st)
}

// Delete removes the record with the given id.
func (a *App) Delete(id string) error { return a.service.Delete(id) }

// Search returns records matching the query. An empty query matches all.
func (a *App) Search(query string) []svm.Student { return a.service.Search(query) }

// FilterByDiocese returns records from the given diocese.
func (a *App) FilterByDiocese(diocese string) []svm.Student {
	return a.service.FilterByDiocese(diocese)
}

// FilterByParish returns records from the given parish.
func (a *App) FilterByParish(parish string) []svm.Student {
	return a.service.FilterByParish(parish)
}

// FilterByHometown returns records from the given hometown.
func (a *App) FilterByHometown(hometown string) []svm.Student {
	return a.service.FilterByHometown(hometown)
}

// Statistics returns distribution counts over the collection.
func (a *App) Statistics() svm.Statistics { return a.service.Statistics() }

// NextID returns the next free id in the SV numbering scheme.
func (a *App) NextID() string { return a.service.NextID() }

// Reload re-reads the collection from the store.
func (a *App) Reload() { a.service.Reload() }

// ExportCSV writes the collection to a CSV file at path.
func (a *App) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := a.service.ExportCSV(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// Login starts a session for email, replacing any existing one.
func (a *App) Login(email string) (*session.Session, error) {
	return a.session.Create(email)
}

// Logout clears the current session.
func (a *App) Logout() error { return a.session.Clear() }

// CurrentSession returns the active session, or nil when nobody is logged in.
func (a *App) CurrentSession() (*session.Session, error) {
	return a.session.Current()
}

// BackupCreate writes a passphrase-encrypted snapshot of the collection to
// path.
func (a *App) BackupCreate(path, passphrase string) error {
	data, err := store.EncodeDocument(a.service.Snapshot())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}

	if err := backup.Seal(f, bytes.NewReader(data), passphrase); err != nil {
		f.Close()
		return fmt.Errorf("sealing backup: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing backup file: %w", err)
	}
	return nil
}

// BackupRestore decrypts the snapshot at path, validates it, and replaces
// the stored collection with it. The in-memory collection is reloaded
// afterwards. Returns the number of restored records.
func (a *App) BackupRestore(path, passphrase string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening backup file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := backup.Open(&buf, f, passphrase); err != nil {
		return 0, fmt.Errorf("opening backup: %w", err)
	}

	doc, err := store.DecodeDocument(buf.Bytes())
	if err != nil {
		return 0, fmt.Errorf("parsing backup: %w", err)
	}

	seen := make(map[string]bool, len(doc.Students))
	for i := range doc.Students {
		if err := doc.Students[i].Validate(); err != nil {
			return 0, fmt.Errorf("backup record %q: %w", doc.Students[i].ID, err)
		}
		if seen[doc.Students[i].ID] {
			return 0, fmt.Errorf("backup contains duplicate id %s", doc.Students[i].ID)
		}
		seen[doc.Students[i].ID] = true
	}

	if err := a.store.Save(doc); err != nil {
		return 0, fmt.Errorf("restoring document: %w", err)
	}

	a.service.Reload()
	return len(doc.Students), nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
