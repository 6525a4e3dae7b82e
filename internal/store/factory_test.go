package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyendan07/seminary-management-system/internal/config"
	"github.com/nguyendan07/seminary-management-system/internal/store"
)

func TestNewStoreFromConfig(t *testing.T) {
	t.Run("memory store", func(t *testing.T) {
		got, err := store.NewStoreFromConfig(config.StoreConfig{Type: "memory"})
		require.NoError(t, err)
		require.NotNil(t, got)
		defer got.Close()

		assert.IsType(t, &store.MemoryStore{}, got)
	})

	t.Run("json store", func(t *testing.T) {
		cfg := config.StoreConfig{
			Type: "json",
			Path: filepath.Join(t.TempDir(), "students_data.json"),
		}
		got, err := store.NewStoreFromConfig(cfg)
		require.NoError(t, err)
		defer got.Close()

		assert.IsType(t, &store.FileStore{}, got)
	})

	t.Run("json store without path", func(t *testing.T) {
		_, err := store.NewStoreFromConfig(config.StoreConfig{Type: "json"})
		assert.Error(t, err)
	})

	t.Run("sqlite store", func(t *testing.T) {
		cfg := config.StoreConfig{
			Type: "sqlite",
			Path: filepath.Join(t.TempDir(), "svm.db"),
		}
		got, err := store.NewStoreFromConfig(cfg)
		require.NoError(t, err)
		defer got.Close()

		assert.IsType(t, &store.SQLiteStore{}, got)
	})

	t.Run("sqlite store without path", func(t *testing.T) {
		_, err := store.NewStoreFromConfig(config.StoreConfig{Type: "sqlite"})
		assert.Error(t, err)
	})

	t.Run("unknown store type", func(t *testing.T) {
		_, err := store.NewStoreFromConfig(config.StoreConfig{Type: "csv"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown store type")
	})
}
