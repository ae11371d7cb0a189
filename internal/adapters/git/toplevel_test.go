package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestRepoRoot_FromSubdirectory(t *testing.T) {
	repo := initRepo(t)
	sub := filepath.Join(repo, "pkg", "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))

	root, err := RepoRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, repo, root)
	assert.Equal(t, repo, ProjectDir(sub))
}

func TestProjectDir_OutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := RepoRoot(dir)
	assert.Error(t, err)
	assert.Equal(t, dir, ProjectDir(dir))
}
