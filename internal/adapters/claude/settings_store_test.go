package claude

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/renato0307/hotline/internal/domain"
)

func TestReadHooks_MissingFileIsEmpty(t *testing.T) {
	store := NewSettingsStore(t.TempDir(), t.TempDir())

	doc, err := store.ReadHooks(context.Background(), domain.TargetGlobal)

	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestReadHooks_ParsesHooksKey(t *testing.T) {
	claudeDir := t.TempDir()
	content := `{
  "model": "opus",
  "hooks": {
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "echo hi", "timeout": 5}]}
    ]
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "settings.json"), []byte(content), 0644))

	store := NewSettingsStore(claudeDir, t.TempDir())
	doc, err := store.ReadHooks(context.Background(), domain.TargetGlobal)

	require.NoError(t, err)
	require.Len(t, doc[domain.HookPreToolUse], 1)
	rule := doc[domain.HookPreToolUse][0]
	assert.Equal(t, "Bash", rule.Matcher)
	require.Len(t, rule.Hooks, 1)
	assert.Equal(t, "echo hi", rule.Hooks[0].Command)
	assert.Equal(t, 5, rule.Hooks[0].Timeout)
}

func TestReadHooks_InvalidJSON(t *testing.T) {
	claudeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "settings.json"), []byte("{not json"), 0644))

	store := NewSettingsStore(claudeDir, t.TempDir())
	_, err := store.ReadHooks(context.Background(), domain.TargetGlobal)

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestWriteHooks_PreservesOtherKeys(t *testing.T) {
	claudeDir := t.TempDir()
	path := filepath.Join(claudeDir, "settings.json")
	content := `{"model":"opus","permissions":{"allow":["Bash(ls)"]},"hooks":{"Stop":[]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store := NewSettingsStore(claudeDir, t.TempDir())
	doc := domain.ConsumerDocument{
		domain.HookNotification: {
			{Hooks: []domain.CommandHook{{Type: "command", Command: "hotline log --hook-type Notification", Timeout: 60}}},
		},
	}

	written, err := store.WriteHooks(context.Background(), domain.TargetGlobal, doc)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "opus", gjson.GetBytes(data, "model").String())
	assert.Equal(t, "Bash(ls)", gjson.GetBytes(data, "permissions.allow.0").String())
	assert.False(t, gjson.GetBytes(data, "hooks.Stop").Exists())
	assert.Equal(t, int64(60), gjson.GetBytes(data, "hooks.Notification.0.hooks.0.timeout").Int())

	// Key order is kept: model still comes first
	keys := []string{}
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"model", "permissions", "hooks"}, keys)
}

func TestWriteHooks_ProjectTargetCreatesFile(t *testing.T) {
	projectDir := t.TempDir()
	store := NewSettingsStore(t.TempDir(), projectDir)

	written, err := store.WriteHooks(context.Background(), domain.TargetProject, domain.ConsumerDocument{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(projectDir, ".claude", "settings.json"), written)

	doc, err := store.ReadHooks(context.Background(), domain.TargetProject)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestWriteHooks_RoundTrip(t *testing.T) {
	store := NewSettingsStore(t.TempDir(), t.TempDir())
	doc := domain.ConsumerDocument{
		domain.HookPreToolUse: {
			{Matcher: "Edit", Hooks: []domain.CommandHook{{Type: "command", Command: "a", Timeout: 10}}},
			{Hooks: []domain.CommandHook{{Type: "command", Command: "b", Timeout: 20}}},
		},
	}

	_, err := store.WriteHooks(context.Background(), domain.TargetGlobal, doc)
	require.NoError(t, err)

	got, err := store.ReadHooks(context.Background(), domain.TargetGlobal)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
