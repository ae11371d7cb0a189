package uiconfig

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
)

func TestLoad_MissingFileReturnsNil(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "hook-ui-config.json"))

	data, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSaveThenLoad(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "hook-ui-config.json"))
	cfg := hookconfig.Defaults(nil)
	cfg[domain.HookStop][0].Enabled = true
	cfg[domain.HookStop][0].Sounds = []string{"a.mp3", "", ""}

	require.NoError(t, store.Save(context.Background(), cfg))

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg, hookconfig.Normalize(data, nil))
}
