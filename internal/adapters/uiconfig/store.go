package uiconfig

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// FileStore persists the UI configuration document as indented JSON
type FileStore struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.UIConfigStore = (*FileStore)(nil)

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Load implements UIConfigStore.Load
func (s *FileStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read ui config: %v", domain.ErrStorage, err)
	}
	return data, nil
}

// Save implements UIConfigStore.Save
func (s *FileStore) Save(ctx context.Context, cfg domain.HookConfig) error {
	data, err := hookconfig.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal ui config: %w", err)
	}

	if err := config.WriteFileAtomic(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	logging.Logger.Debug("UI config saved", "path", s.path, "hook_types", len(cfg))
	return nil
}
