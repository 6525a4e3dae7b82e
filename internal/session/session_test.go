package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyendan07/seminary-management-system/internal/session"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
	"github.com/nguyendan07/seminary-management-system/internal/testutil"
)

// newManager creates a session manager over a temp file with a controllable
// clock.
func newManager(t *testing.T) (*session.Manager, *testutil.StubClock, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	clock := testutil.FixedClock()
	m := session.NewManager(path, clock, testutil.NewStubIDGenerator(), svm.NewNopLogger())
	return m, clock, path
}

func TestManager_Create(t *testing.T) {
	t.Run("starts a session valid for 24 hours", func(t *testing.T) {
		m, clock, path := newManager(t)

		s, err := m.Create("rector@seminary.vn")
		require.NoError(t, err)

		assert.Equal(t, "id-1", s.ID)
		assert.Equal(t, "rector@seminary.vn", s.UserEmail)
		assert.True(t, s.LoginTime.Equal(clock.Now()))
		assert.True(t, s.ExpiresAt.Equal(clock.Now().Add(24*time.Hour)))
		assert.True(t, s.IsActive)

		_, err = os.Stat(path)
		assert.NoError(t, err, "session file should exist")
	})

	t.Run("rejects a malformed email before writing anything", func(t *testing.T) {
		m, _, path := newManager(t)

		_, err := m.Create("not-an-email")
		require.ErrorIs(t, err, svm.ErrValidation)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no session file should be written")
	})

	t.Run("replaces an existing session", func(t *testing.T) {
		m, _, _ := newManager(t)

		_, err := m.Create("first@seminary.vn")
		require.NoError(t, err)
		_, err = m.Create("second@seminary.vn")
		require.NoError(t, err)

		current, err := m.Current()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "second@seminary.vn", current.UserEmail)
	})
}

func TestManager_Current(t *testing.T) {
	t.Run("reports nil when never logged in", func(t *testing.T) {
		m, _, _ := newManager(t)

		s, err := m.Current()
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("returns the active session", func(t *testing.T) {
		m, clock, _ := newManager(t)
		_, err := m.Create("rector@seminary.vn")
		require.NoError(t, err)

		clock.Advance(23 * time.Hour)

		s, err := m.Current()
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "rector@seminary.vn", s.UserEmail)
	})

	t.Run("expires and removes the session after 24 hours", func(t *testing.T) {
		m, clock, path := newManager(t)
		_, err := m.Create("rector@seminary.vn")
		require.NoError(t, err)

		clock.Advance(24 * time.Hour)

		s, err := m.Current()
		require.NoError(t, err)
		assert.Nil(t, s, "session at the expiry instant is no longer valid")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "expired session file should be removed")
	})

	t.Run("discards an unreadable session file", func(t *testing.T) {
		m, _, path := newManager(t)
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

		s, err := m.Current()
		require.NoError(t, err)
		assert.Nil(t, s)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "corrupt session file should be removed")
	})
}

func TestManager_Clear(t *testing.T) {
	t.Run("removes the session file", func(t *testing.T) {
		m, _, path := newManager(t)
		_, err := m.Create("rector@seminary.vn")
		require.NoError(t, err)

		require.NoError(t, m.Clear())

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))

		s, err := m.Current()
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("clearing twice is fine", func(t *testing.T) {
		m, _, _ := newManager(t)
		require.NoError(t, m.Clear())
		require.NoError(t, m.Clear())
	})
}
