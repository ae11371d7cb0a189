package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
	"github.com/renato0307/hotline/internal/services"
)

// FilePlayer plays an audio file from local disk
type FilePlayer interface {
	PlayFile(ctx context.Context, path string) error
}

// SoundCache implements ports.SoundPlayer for a listener that may run on a
// different machine than the server. Files are mirrored into a local
// directory and revalidated with a conditional GET before each play.
type SoundCache struct {
	client *Client
	dir    string
	mu     sync.Mutex
	player FilePlayer
}

var _ ports.SoundPlayer = (*SoundCache)(nil)

// NewSoundCache mirrors sounds into dir and plays them with player
func NewSoundCache(client *Client, dir string, player FilePlayer) *SoundCache {
	return &SoundCache{
		client: client,
		dir:    dir,
		player: player,
	}
}

// Play implements SoundPlayer.Play
func (c *SoundCache) Play(ctx context.Context, filename string) error {
	name := domain.SanitizeSoundFilename(filename)
	if name == "" || name != filename || !domain.IsSoundFile(name) {
		return fmt.Errorf("%w: sound %q", domain.ErrInvalidField, filename)
	}

	path, err := c.fetch(ctx, name)
	if err != nil {
		return err
	}
	return c.player.PlayFile(ctx, path)
}

// fetch refreshes the cached copy of name and returns its path. A stale copy
// is still played when the server cannot be reached.
func (c *SoundCache) fetch(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := filepath.Join(c.dir, name)
	var since time.Time
	if info, err := os.Stat(path); err == nil {
		since = info.ModTime()
	}

	dl, err := c.client.DownloadSound(ctx, name, since)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = os.Remove(path)
			return "", fmt.Errorf("sound %s: %w", name, domain.ErrNotFound)
		}
		if !since.IsZero() {
			logging.Logger.Warn("Sound refresh failed, playing cached copy", "sound", name, "error", err)
			return path, nil
		}
		return "", err
	}
	if dl.NotModified {
		return path, nil
	}
	defer dl.Body.Close()

	data, err := io.ReadAll(io.LimitReader(dl.Body, services.MaxSoundSize+1))
	if err != nil {
		return "", fmt.Errorf("download %s: %w", name, err)
	}
	if err := config.WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: cache %s: %v", domain.ErrStorage, name, err)
	}
	if err := os.Chtimes(path, dl.ModifiedAt, dl.ModifiedAt); err != nil {
		logging.Logger.Debug("Failed to stamp cached sound", "sound", name, "error", err)
	}
	logging.Logger.Debug("Sound cached", "sound", name, "bytes", len(data))
	return path, nil
}
