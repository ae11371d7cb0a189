package config

import (
	"os"
	"path/filepath"

	"github.com/renato0307/hotline/internal/domain"
)

// DefaultPort is the port the server listens on when nothing else is set
const DefaultPort = 3001

// DefaultServerURL is where CLI commands and hooks find the server
const DefaultServerURL = "http://localhost:3001"

// GetHotlineHome returns HOTLINE_HOME or ~/.hotline default
func GetHotlineHome() string {
	home := os.Getenv("HOTLINE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".hotline"
		}
		return filepath.Join(homeDir, ".hotline")
	}
	return ExpandPath(home)
}

// GetDBPath returns $HOTLINE_HOME/hooks.db
func GetDBPath() string {
	return filepath.Join(GetHotlineHome(), "hooks.db")
}

// GetSoundsDir returns $HOTLINE_HOME/sounds
func GetSoundsDir() string {
	return filepath.Join(GetHotlineHome(), "sounds")
}

// GetSoundCacheDir returns $HOTLINE_HOME/cache/sounds, where listeners keep
// downloaded copies of server sounds
func GetSoundCacheDir() string {
	return filepath.Join(GetHotlineHome(), "cache", "sounds")
}

// GetUIConfigPath returns $HOTLINE_HOME/hook-ui-config.json
func GetUIConfigPath() string {
	return filepath.Join(GetHotlineHome(), "hook-ui-config.json")
}

// GetSettingsPath returns $HOTLINE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHotlineHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// DefaultClaudeDir returns the agent's configuration directory.
// Checks CLAUDE_CONFIG_DIR environment variable first, then falls back to ~/.claude
func DefaultClaudeDir() string {
	if envDir := os.Getenv("CLAUDE_CONFIG_DIR"); envDir != "" {
		return ExpandPath(envDir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".claude"
	}
	return filepath.Join(homeDir, ".claude")
}

// ResolveClaudeDir determines the agent directory with precedence:
// 1. User override (flag or settings.json)
// 2. CLAUDE_CONFIG_DIR
// 3. ~/.claude
func ResolveClaudeDir(userOverride string) string {
	if userOverride != "" {
		return ExpandPath(userOverride)
	}
	return DefaultClaudeDir()
}

// ConsumerSettingsPath returns the settings.json receiving compiled hooks.
// Global targets live in the agent directory, project targets under
// projectDir/.claude.
func ConsumerSettingsPath(target domain.ConfigTarget, claudeDir, projectDir string) string {
	if target == domain.TargetProject {
		return filepath.Join(projectDir, ".claude", "settings.json")
	}
	return filepath.Join(claudeDir, "settings.json")
}

// EnsureDirs creates the hotline home and sounds directories
func EnsureDirs() error {
	for _, dir := range []string{GetHotlineHome(), GetSoundsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
