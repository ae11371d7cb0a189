package sound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// command is one way of playing a file on the current platform
type command struct {
	cmd  string
	args []string
}

// Player implements ports.SoundPlayer for audio files stored in a directory.
// Playback is started in the background so several sounds can overlap.
type Player struct {
	dir  string
	bell io.Writer
}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player for files in dir
func NewPlayer(dir string) *Player {
	return &Player{
		dir:  dir,
		bell: os.Stdout,
	}
}

// Play implements SoundPlayer.Play
func (p *Player) Play(ctx context.Context, filename string) error {
	name := domain.SanitizeSoundFilename(filename)
	if name == "" || name != filename {
		return fmt.Errorf("%w: sound %q", domain.ErrInvalidField, filename)
	}
	return p.PlayFile(ctx, filepath.Join(p.dir, name))
}

// PlayFile plays an audio file with the first available OS player.
// Platform-specific candidates are in player_*.go files with build tags.
func (p *Player) PlayFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("sound %s: %w", filepath.Base(path), domain.ErrNotFound)
		}
		return err
	}

	for _, candidate := range playCommands(path) {
		if _, err := exec.LookPath(candidate.cmd); err != nil {
			continue
		}

		// Playback outlives the request; the context only guards the start
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := exec.Command(candidate.cmd, candidate.args...)
		if err := cmd.Start(); err != nil {
			logging.Logger.Debug("Sound player failed to start", "player", candidate.cmd, "error", err)
			continue
		}

		logging.Logger.Debug("Playing sound", "player", candidate.cmd, "path", path)
		go func() {
			if err := cmd.Wait(); err != nil {
				logging.Logger.Warn("Sound player exited with error", "player", candidate.cmd, "path", path, "error", err)
			}
		}()
		return nil
	}

	logging.Logger.Warn("No audio player available, using terminal bell", "path", path)
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
