package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// unreachableServer refuses connections so client commands take their
// offline paths until a test starts a server
const unreachableServer = "http://127.0.0.1:1"

// TestEnvironment provides an isolated test environment with its own
// HOTLINE_HOME and agent configuration directory.
type TestEnvironment struct {
	ClaudeDir   string
	HotlineHome string
	ProjectDir  string
	ServerURL   string
}

// NewTestEnvironment creates an isolated test environment.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		ClaudeDir:   filepath.Join(root, "claude"),
		HotlineHome: filepath.Join(root, "hotline"),
		ProjectDir:  filepath.Join(root, "project"),
		ServerURL:   unreachableServer,
	}
	for _, dir := range []string{env.ClaudeDir, env.HotlineHome, env.ProjectDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out HOTLINE_* variables and sets:
//   - HOTLINE_HOME to the temp directory
//   - HOTLINE_DEBUG to empty string (disables debug logging)
//   - HOTLINE_SERVER_URL to the test server, or an unreachable address
//   - CLAUDE_CONFIG_DIR to the temp agent directory
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+4)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HOTLINE_") || key == "CLAUDE_CONFIG_DIR" {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOTLINE_HOME="+e.HotlineHome,
		"HOTLINE_DEBUG=",
		"HOTLINE_SERVER_URL="+e.ServerURL,
		"CLAUDE_CONFIG_DIR="+e.ClaudeDir,
	)

	return env
}

// DBPath returns the path to the test ledger database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.HotlineHome, "hooks.db")
}

// GlobalSettingsPath returns the agent settings.json written by the global target.
func (e *TestEnvironment) GlobalSettingsPath() string {
	return filepath.Join(e.ClaudeDir, "settings.json")
}

// SettingsPath returns hotline's own settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.HotlineHome, "settings.json")
}
