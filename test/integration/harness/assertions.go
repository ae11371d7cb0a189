package harness

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// AssertSuccess verifies the command succeeded with exit code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected success (exit 0), got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command failed with non-zero exit code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"Expected stdout to contain %q.\nActual stdout: %s",
		expected, result.Stdout)
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"Expected stderr to contain %q.\nActual stderr: %s",
		expected, result.Stderr)
}

// AssertStdoutEmpty verifies stdout is empty.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout),
		"Expected empty stdout, got: %s", result.Stdout)
}

// ReadJSONFile reads a JSON document and fails the test when it is missing
// or malformed.
func ReadJSONFile(tb testing.TB, path string) gjson.Result {
	tb.Helper()
	data, err := os.ReadFile(path)
	require.NoError(tb, err, "Expected %s to exist", path)
	require.True(tb, gjson.ValidBytes(data), "Expected %s to hold valid JSON:\n%s", path, data)
	return gjson.ParseBytes(data)
}

// StdoutJSON parses stdout as JSON for path lookups.
func StdoutJSON(tb testing.TB, result CommandResult) gjson.Result {
	tb.Helper()
	require.True(tb, gjson.Valid(result.Stdout), "Expected valid JSON.\nStdout: %s\nStderr: %s", result.Stdout, result.Stderr)
	return gjson.Parse(result.Stdout)
}
