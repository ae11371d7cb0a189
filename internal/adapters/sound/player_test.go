package sound

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
)

func TestPlay_RejectsUnsafeNames(t *testing.T) {
	player := NewPlayer(t.TempDir())

	for _, name := range []string{"", "..", "../secret.mp3", "a/b.mp3"} {
		err := player.Play(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidField, name)
	}
}

func TestPlay_MissingFile(t *testing.T) {
	player := NewPlayer(t.TempDir())

	err := player.Play(context.Background(), "missing.mp3")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlayFile_FallsBackToBell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))

	// An empty PATH leaves no player to find
	t.Setenv("PATH", "")

	var out bytes.Buffer
	player := NewPlayer(dir)
	player.bell = &out

	require.NoError(t, player.PlayFile(context.Background(), path))
	assert.Equal(t, "\a", out.String())
}
