package integration_test

import (
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/test/integration/harness"
)

func TestLog_RecordsPayloadThroughServer(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	payload := `{"session_id":"abc123","tool_name":"Bash","tool_input":{"command":"npm test"}}`
	result := harness.RunCommandWithStdin(t, env, payload, "log", "--hook-type", "PreToolUse")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutEmpty(t, result)

	result = harness.RunCommand(t, env, "logs", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	logs := harness.StdoutJSON(t, result)
	require.Len(t, logs.Array(), 1)
	assert.Equal(t, "PreToolUse", logs.Get("0.hookType").String())
	assert.Equal(t, "abc123", logs.Get("0.sessionId").String())
	assert.Equal(t, "Bash", logs.Get("0.toolName").String())
	assert.Equal(t, "Hook triggered", logs.Get("0.message").String())
}

func TestLog_FlagsOverridePayload(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	payload := `{"session_id":"abc123","message":"Claude needs your permission"}`
	result := harness.RunCommandWithStdin(t, env, payload,
		"log", "--hook-type", "Notification", "--session-id", "override", "--message", "custom")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "logs", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	logs := harness.StdoutJSON(t, result)
	assert.Equal(t, "override", logs.Get("0.sessionId").String())
	assert.Equal(t, "custom", logs.Get("0.message").String())
	assert.Equal(t, "null", logs.Get("0.toolName").Raw)
}

func TestLog_InvalidHookType(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "log", "--hook-type", "SessionStart")
	harness.AssertFailure(t, result)
}

func TestLog_FallsBackToLocalLedgerWhenOffline(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	// No server yet: the event lands in the local ledger
	result := harness.RunCommandWithStdin(t, env, `{"session_id":"offline"}`, "log", "--hook-type", "Stop")
	harness.AssertSuccess(t, result)
	assert.FileExists(t, env.DBPath())

	harness.StartServer(t, env)
	result = harness.RunCommand(t, env, "logs", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	logs := harness.StdoutJSON(t, result)
	require.Len(t, logs.Array(), 1)
	assert.Equal(t, "Stop", logs.Get("0.hookType").String())
	assert.Equal(t, "offline", logs.Get("0.sessionId").String())
}

func TestLog_CompiledHookCommandRuns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("compiled hooks run through sh")
	}
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "hooks", "set", "Stop", "0", "enabled", "true"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "hooks", "apply"))

	settings := harness.ReadJSONFile(t, env.GlobalSettingsPath())
	command := settings.Get("hooks.Stop.0.hooks.0.command").String()
	require.NotEmpty(t, command)

	// Run it the way the agent does: through the shell, payload on stdin
	cmd := exec.Command("sh", "-c", command)
	cmd.Env = env.Environ()
	cmd.Dir = env.ProjectDir
	cmd.Stdin = strings.NewReader(`{"session_id":"from-agent"}`)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	result := harness.RunCommand(t, env, "logs", "list", "--format", "json", "--session-id", "from-agent")
	harness.AssertSuccess(t, result)
	logs := harness.StdoutJSON(t, result)
	require.Len(t, logs.Array(), 1)
	assert.Equal(t, "Stop", logs.Get("0.hookType").String())
}
