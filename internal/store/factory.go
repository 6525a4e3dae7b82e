package store

import (
	"fmt"

	"github.com/nguyendan07/seminary-management-system/internal/config"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

// NewStoreFromConfig creates a Store implementation based on the store config type.
func NewStoreFromConfig(cfg config.StoreConfig) (svm.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "json":
		if cfg.Path == "" {
			return nil, fmt.Errorf("json store requires path to be set")
		}
		return NewFileStore(cfg.Path), nil
	case "sqlite":
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store requires path to be set")
		}
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
