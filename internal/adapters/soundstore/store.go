package soundstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// FileStore keeps sound assets as plain files in one directory
type FileStore struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.SoundStore = (*FileStore)(nil)

// NewFileStore creates a store rooted at dir, creating it when missing
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sounds directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the sound files
func (s *FileStore) Dir() string {
	return s.dir
}

// List implements SoundStore.List
func (s *FileStore) List(ctx context.Context) ([]domain.SoundAsset, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.SoundAsset{}, nil
		}
		return nil, fmt.Errorf("%w: list sounds: %v", domain.ErrStorage, err)
	}

	assets := make([]domain.SoundAsset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsSoundFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logging.Logger.Warn("Failed to stat sound", "name", entry.Name(), "error", err)
			continue
		}
		assets = append(assets, assetFromInfo(info))
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Filename < assets[j].Filename
	})
	return assets, nil
}

// Save implements SoundStore.Save
func (s *FileStore) Save(ctx context.Context, filename string, r io.Reader) (domain.SoundAsset, error) {
	path, err := s.path(filename)
	if err != nil {
		return domain.SoundAsset{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return domain.SoundAsset{}, fmt.Errorf("failed to read upload: %w", err)
	}

	if err := config.WriteFileAtomic(path, data, 0644); err != nil {
		return domain.SoundAsset{}, fmt.Errorf("%w: save sound: %v", domain.ErrStorage, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.SoundAsset{}, fmt.Errorf("%w: stat sound: %v", domain.ErrStorage, err)
	}

	logging.Logger.Info("Sound saved", "name", filename, "size", info.Size())
	return assetFromInfo(info), nil
}

// Delete implements SoundStore.Delete
func (s *FileStore) Delete(ctx context.Context, filename string) error {
	path, err := s.existingPath(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("sound %s: %w", filename, domain.ErrNotFound)
		}
		return fmt.Errorf("%w: delete sound: %v", domain.ErrStorage, err)
	}

	logging.Logger.Info("Sound deleted", "name", filename)
	return nil
}

// Open implements SoundStore.Open
func (s *FileStore) Open(ctx context.Context, filename string) (io.ReadSeekCloser, domain.SoundAsset, error) {
	path, err := s.existingPath(filename)
	if err != nil {
		return nil, domain.SoundAsset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.SoundAsset{}, fmt.Errorf("sound %s: %w", filename, domain.ErrNotFound)
		}
		return nil, domain.SoundAsset{}, fmt.Errorf("%w: open sound: %v", domain.ErrStorage, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, domain.SoundAsset{}, fmt.Errorf("%w: stat sound: %v", domain.ErrStorage, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, domain.SoundAsset{}, fmt.Errorf("sound %s: %w", filename, domain.ErrNotFound)
	}

	return f, assetFromInfo(info), nil
}

// path resolves filename inside the store; anything that is not already a
// clean base name with a sound extension is rejected
func (s *FileStore) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("%w: sound filename %q", domain.ErrInvalidField, filename)
	}
	if !domain.IsSoundFile(filename) {
		return "", fmt.Errorf("%w: sound filename %q", domain.ErrInvalidField, filename)
	}
	return filepath.Join(s.dir, filename), nil
}

// existingPath is path for lookups: a name Save would refuse cannot be
// stored, so it is reported as not found
func (s *FileStore) existingPath(filename string) (string, error) {
	path, err := s.path(filename)
	if err != nil {
		return "", fmt.Errorf("sound %s: %w", filename, domain.ErrNotFound)
	}
	return path, nil
}

func assetFromInfo(info os.FileInfo) domain.SoundAsset {
	return domain.SoundAsset{
		Filename:   info.Name(),
		ModifiedAt: info.ModTime().UTC(),
		SizeBytes:  info.Size(),
	}
}
