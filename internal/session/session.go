// Package session tracks the logged-in user across command invocations.
// A session is a small JSON file on disk; it expires 24 hours after login
// and an expired file is removed the next time it is read.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// Duration is how long a session stays valid after login.
const Duration = 24 * time.Hour

// Session records who logged in and until when.
type Session struct {
	ID        string    `json:"session_id"`
	UserEmail string    `json:"user_email"`
	LoginTime time.Time `json:"login_time"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `json:"is_active"`
}

// Manager reads and writes the session file.
type Manager struct {
	path   string
	clock  svm.Clock
	ids    svm.IDGenerator
	logger svm.Logger
}

// NewManager creates a session manager storing its state at path.
func NewManager(path string, clock svm.Clock, ids svm.IDGenerator, logger svm.Logger) *Manager {
	return &Manager{
		path:   path,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// Create starts a new session for email, replacing any existing one.
// The email is validated before anything is written.
func (m *Manager) Create(email string) (*Session, error) {
	if err := svm.ValidateEmail(email); err != nil {
		return nil, err
	}

	now := m.clock.Now()
	s := &Session{
		ID:        m.ids.New(),
		UserEmail: email,
		LoginTime: now,
		ExpiresAt: now.Add(Duration),
		IsActive:  true,
	}

	if err := m.write(s); err != nil {
		return nil, err
	}

	m.logger.Info("session created", "email", email, "expires_at", s.ExpiresAt)
	return s, nil
}

// Current returns the active session, or nil when nobody is logged in.
// An expired, deactivated, or unreadable session file is removed and
// treated as logged out.
func (m *Manager) Current() (*Session, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		m.logger.Warn("discarding unreadable session file", "error", err)
		return nil, m.Clear()
	}

	if !s.IsActive || !m.clock.Now().Before(s.ExpiresAt) {
		m.logger.Info("session expired", "email", s.UserEmail)
		return nil, m.Clear()
	}

	return &s, nil
}

// Clear removes the session file. Clearing when no session exists is not an
// error.
func (m *Manager) Clear() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// write persists the session as JSON.
func (m *Manager) write(s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
