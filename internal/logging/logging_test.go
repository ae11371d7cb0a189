package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	t.Setenv("HOTLINE_DEBUG", "")
	t.Setenv("HOTLINE_DEBUG_FILE", "")

	path, err := Initialize(Options{MaxLogFiles: 1000})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("HOTLINE_DEBUG", "")
	t.Setenv("HOTLINE_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{DebugFile: file})
	require.NoError(t, err)
	assert.Equal(t, file, path)

	Logger.Info("hello from test")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRotateLogs_KeepsNewestRunLogs(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		p := filepath.Join(dir, uuid.New().String()+".log")
		require.NoError(t, os.WriteFile(p, nil, 0644))
		mod := time.Now().Add(time.Duration(i-10) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
		paths = append(paths, p)
	}
	service := filepath.Join(dir, "serve.log")
	require.NoError(t, os.WriteFile(service, nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	assert.NoFileExists(t, paths[0])
	assert.NoFileExists(t, paths[1])
	assert.FileExists(t, paths[2])
	assert.FileExists(t, paths[3])
	assert.FileExists(t, service, "size-rotated service logs are not pruned")
}
