package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/renato0307/hotline/internal/logging"
)

// RepoRoot returns the top level directory of the work tree containing dir
func RepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get repository root: %w", err)
	}
	return filepath.Clean(strings.TrimSpace(string(output))), nil
}

// ProjectDir picks the directory whose .claude/settings.json is the project
// target: the repository root when dir is inside a work tree, dir otherwise.
func ProjectDir(dir string) string {
	root, err := RepoRoot(dir)
	if err != nil {
		logging.Logger.Debug("Not inside a git work tree, using directory as project", "dir", dir, "error", err)
		return dir
	}
	return root
}
