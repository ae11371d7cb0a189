package cmd

import (
	"os"
	"path/filepath"

	adapterclaude "github.com/renato0307/hotline/internal/adapters/claude"
	adaptergit "github.com/renato0307/hotline/internal/adapters/git"
	adapterrealtime "github.com/renato0307/hotline/internal/adapters/realtime"
	adaptersoundstore "github.com/renato0307/hotline/internal/adapters/soundstore"
	adapterstorage "github.com/renato0307/hotline/internal/adapters/storage"
	adapteruiconfig "github.com/renato0307/hotline/internal/adapters/uiconfig"
	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/hookconfig"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
	"github.com/renato0307/hotline/internal/services"
)

// ContainerOptions locate the agent configuration and describe how compiled
// hooks call back into hotline
type ContainerOptions struct {
	ClaudeDir      string
	HookBinary     string
	OriginPatterns []string
	ProjectDir     string
	// ServerURL is embedded in compiled hook commands; "" means the default
	ServerURL string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	HookConfigService *services.HookConfigService
	LedgerService     *services.LedgerService
	SoundService      *services.SoundService

	// Realtime broadcaster shared by the ledger and the /ws endpoint
	Hub *adapterrealtime.Hub

	// Internal - for cleanup only
	ledger ports.Ledger
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Create adapters
	ledger, err := adapterstorage.NewSQLiteLedger(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	soundStore, err := adaptersoundstore.NewFileStore(config.GetSoundsDir())
	if err != nil {
		ledger.Close()
		return nil, err
	}

	claudeDir := config.ResolveClaudeDir(opts.ClaudeDir)
	projectDir := opts.ProjectDir
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			ledger.Close()
			return nil, err
		}
		projectDir = adaptergit.ProjectDir(cwd)
	}
	settingsStore := adapterclaude.NewSettingsStore(claudeDir, projectDir)
	uiStore := adapteruiconfig.NewFileStore(config.GetUIConfigPath())

	var hubOpts []adapterrealtime.HubOption
	if len(opts.OriginPatterns) > 0 {
		hubOpts = append(hubOpts, adapterrealtime.WithOriginPatterns(opts.OriginPatterns...))
	}
	hub := adapterrealtime.NewHub(hubOpts...)

	binary := resolveHookBinary(opts.HookBinary)
	logging.Logger.Info("Container wired",
		"claude_dir", claudeDir,
		"hook_binary", binary,
		"project_dir", projectDir)

	// Create services
	hookConfigService := services.NewHookConfigService(
		uiStore,
		settingsStore,
		hookconfig.DefaultCommand(binary, opts.ServerURL),
	)
	ledgerService := services.NewLedgerService(ledger, hub)
	soundService := services.NewSoundService(soundStore)

	return &Container{
		HookConfigService: hookConfigService,
		Hub:               hub,
		LedgerService:     ledgerService,
		SoundService:      soundService,
		ledger:            ledger,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.ledger != nil {
		return c.ledger.Close()
	}
	return nil
}

// resolveHookBinary picks the executable compiled hooks run. An explicit
// override wins, then the running binary, then "hotline" from PATH.
func resolveHookBinary(override string) string {
	if override != "" {
		return config.ExpandPath(override)
	}

	exe, err := os.Executable()
	if err != nil {
		logging.Logger.Warn("Failed to resolve executable, hooks will use PATH", "error", err)
		return "hotline"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	// `go run` builds into a temp dir that disappears on exit
	if filepath.Base(exe) != "hotline" && filepath.Base(exe) != "hotline.exe" {
		return "hotline"
	}
	return exe
}
