package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/test/integration/harness"
)

func TestHooks_DefaultConfig(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	result := harness.RunCommand(t, env, "hooks", "config", "--format", "json")
	harness.AssertSuccess(t, result)

	cfg := harness.StdoutJSON(t, result)
	for _, hookType := range domain.AllHookTypes() {
		entries := cfg.Get(string(hookType)).Array()
		require.Len(t, entries, 1, "hook type %s", hookType)
		assert.False(t, entries[0].Get("enabled").Bool())
		assert.Len(t, entries[0].Get("sounds").Array(), 3)
	}
}

func TestHooks_EditAndApply(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	server := harness.StartServer(t, env)

	// Unrelated agent settings survive apply
	require.NoError(t, os.WriteFile(env.GlobalSettingsPath(), []byte(`{"model":"opus","hooks":{"Foo":[]}}`), 0644))

	steps := [][]string{
		{"hooks", "set", "PreToolUse", "0", "enabled", "true"},
		{"hooks", "set", "PreToolUse", "0", "matcher", "Bash"},
		{"hooks", "set", "PreToolUse", "0", "timeoutSeconds", "999"},
		{"hooks", "add", "Stop"},
		{"hooks", "set", "Stop", "1", "enabled", "true"},
		{"hooks", "set", "Stop", "1", "sounds", "done.mp3,,"},
	}
	for _, args := range steps {
		harness.AssertSuccess(t, harness.RunCommand(t, env, args...))
	}

	result := harness.RunCommand(t, env, "hooks", "config", "--format", "json")
	harness.AssertSuccess(t, result)
	cfg := harness.StdoutJSON(t, result)
	assert.Equal(t, int64(domain.MaxTimeoutSeconds), cfg.Get("PreToolUse.0.timeoutSeconds").Int())
	assert.Len(t, cfg.Get("Stop").Array(), 2)
	assert.Equal(t, "done.mp3", cfg.Get("Stop.1.sounds.0").String())

	result = harness.RunCommand(t, env, "hooks", "apply")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.GlobalSettingsPath())

	settings := harness.ReadJSONFile(t, env.GlobalSettingsPath())
	assert.Equal(t, "opus", settings.Get("model").String())
	assert.False(t, settings.Get("hooks.Foo").Exists())
	assert.False(t, settings.Get("hooks.Notification").Exists())

	assert.Equal(t, "Bash", settings.Get("hooks.PreToolUse.0.matcher").String())
	assert.Equal(t, int64(domain.MaxTimeoutSeconds), settings.Get("hooks.PreToolUse.0.hooks.0.timeout").Int())
	command := settings.Get("hooks.PreToolUse.0.hooks.0.command").String()
	assert.Contains(t, command, "log --server http://127.0.0.1:"+strconv.Itoa(server.Port))
	assert.Contains(t, command, "--hook-type PreToolUse")

	// Stop takes no matcher; only the enabled entry is compiled
	stop := settings.Get("hooks.Stop").Array()
	require.Len(t, stop, 1)
	assert.False(t, stop[0].Get("matcher").Exists())
}

func TestHooks_ApplyProjectTarget(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "hooks", "set", "Notification", "0", "enabled", "true"))
	result := harness.RunCommand(t, env, "hooks", "apply", "--target", "project")
	harness.AssertSuccess(t, result)

	settings := harness.ReadJSONFile(t, filepath.Join(env.ProjectDir, ".claude", "settings.json"))
	assert.True(t, settings.Get("hooks.Notification").Exists())
	assert.NoFileExists(t, env.GlobalSettingsPath())

	result = harness.RunCommand(t, env, "hooks", "show", "--target", "project", "--format", "json")
	harness.AssertSuccess(t, result)
	assert.True(t, harness.StdoutJSON(t, result).Get("Notification").Exists())
}

func TestHooks_RemoveAndErrors(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "hooks", "add", "Stop"))
	result := harness.RunCommand(t, env, "hooks", "remove", "Stop", "0")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Stop now has 1 rules")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown hook type", []string{"hooks", "add", "SessionStart"}},
		{"unknown field", []string{"hooks", "set", "Stop", "0", "color", "red"}},
		{"bad boolean", []string{"hooks", "set", "Stop", "0", "enabled", "yes"}},
		{"bad target", []string{"hooks", "apply", "--target", "local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			harness.AssertFailure(t, harness.RunCommand(t, env, tt.args...))
		})
	}
}

func TestHooks_ServerUnavailable(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "hooks", "config")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "failed to load hook config")
}
