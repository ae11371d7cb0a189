package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hotline/internal/adapters/apiclient"
	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/logging"
)

// defaultMaxLogFiles mirrors the MaxLogFiles flag default
const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Home        string           `help:"Hotline data directory (default ~/.hotline)" env:"HOTLINE_HOME" placeholder:"DIR"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Server      string           `help:"URL of the hotline server used by client commands" env:"HOTLINE_SERVER_URL" placeholder:"URL"`

	Serve    ServeCmd    `cmd:"serve" help:"Run the hotline server (API, realtime channel and web UI)"`
	Listen   ListenCmd   `cmd:"listen" help:"Play sounds and show notifications for incoming hook events"`
	Log      LogCmd      `cmd:"log" help:"Record a hook event (run by the agent's hooks)" hidden:""`
	Logs     LogsCmd     `cmd:"logs" help:"Browse, export and clear the event log"`
	Hooks    HooksCmd    `cmd:"hooks" help:"Configure hook rules and apply them to the agent"`
	Sounds   SoundsCmd   `cmd:"sounds" help:"Manage the sound library"`
	TestHook TestHookCmd `cmd:"test-hook" help:"Record a test Notification event"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings"`

	// Internal fields (not flags)
	Container *Container        `kong:"-"`
	client    *apiclient.Client `kong:"-"`
	settings  *config.Settings  `kong:"-"`
	version   string            `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersion records the build version reported by the server
func (c *CLI) SetVersion(version string) {
	c.version = version
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(ctx *kong.Context) error {
	// A different home means a different settings.json
	if c.Home != "" {
		home := config.ExpandPath(c.Home)
		if home != config.GetHotlineHome() || c.settings == nil {
			os.Setenv("HOTLINE_HOME", home)
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			c.settings = settings
		}
	}
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.MaxLogFiles == defaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("HOTLINE_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("HOTLINE_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.Server == "" {
		c.Server = c.settings.ServerURL
	}
	if c.Server == "" {
		c.Server = config.DefaultServerURL
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
		Service:     serviceName(ctx),
	})
	if err != nil {
		return err
	}

	// Hook subprocesses started by the agent inherit the debug settings
	if c.Debug || c.DebugFile != "" {
		os.Setenv("HOTLINE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("HOTLINE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("HOTLINE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	logging.Logger.Debug("CLI initialized",
		"command", commandPath(ctx),
		"home", config.GetHotlineHome(),
		"server", c.Server)
	return nil
}

// serviceName returns the log file name of long running commands, "" for
// the rest
func serviceName(ctx *kong.Context) string {
	switch commandPath(ctx) {
	case "serve", "listen":
		return commandPath(ctx)
	}
	return ""
}

func commandPath(ctx *kong.Context) string {
	if ctx == nil {
		return ""
	}
	fields := strings.Fields(ctx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Client returns the API client for the configured server
func (c *CLI) Client() (*apiclient.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	client, err := apiclient.New(c.Server)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// Local opens the on-disk stores directly. Only the server and the offline
// fallback of `hotline log` need it.
func (c *CLI) Local(opts ContainerOptions) (*Container, error) {
	if c.Container != nil {
		return c.Container, nil
	}

	container, err := NewContainer(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return container, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
