package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/test/integration/harness"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestSounds_UploadListDelete(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)
	src := t.TempDir()

	result := harness.RunCommand(t, env, "sounds")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No sounds uploaded.")

	ding := writeFile(t, src, "My Ding.mp3", []byte("ID3 fake mp3"))
	notes := writeFile(t, src, "notes.txt", []byte("not audio"))

	result = harness.RunCommand(t, env, "sounds", "upload", ding, notes)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "My_Ding.mp3")
	harness.AssertStdoutContains(t, result, "notes.txt")

	result = harness.RunCommand(t, env, "sounds", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	sounds := harness.StdoutJSON(t, result).Array()
	require.Len(t, sounds, 1)
	assert.Equal(t, "My_Ding.mp3", sounds[0].Get("filename").String())
	assert.Equal(t, int64(len("ID3 fake mp3")), sounds[0].Get("sizeBytes").Int())
	assert.FileExists(t, filepath.Join(env.HotlineHome, "sounds", "My_Ding.mp3"))

	result = harness.RunCommand(t, env, "sounds", "delete", "My_Ding.mp3")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "sounds", "delete", "My_Ding.mp3")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not found")
}

func TestSounds_UploadAllRejected(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.StartServer(t, env)

	notes := writeFile(t, t.TempDir(), "notes.txt", []byte("not audio"))
	result := harness.RunCommand(t, env, "sounds", "upload", notes)
	harness.AssertFailure(t, result)
	harness.AssertStdoutContains(t, result, "notes.txt")
}

func TestSounds_UploadMissingFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sounds", "upload", filepath.Join(t.TempDir(), "missing.mp3"))
	harness.AssertFailure(t, result)
}
