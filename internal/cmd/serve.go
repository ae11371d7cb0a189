package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/renato0307/hotline/internal/adapters/httpapi"
	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/theme"
)

const defaultHost = "0.0.0.0"

// ServeCmd runs the HTTP API, the realtime channel and the optional web UI
type ServeCmd struct {
	ClaudeDir  string   `help:"Agent configuration directory (default $CLAUDE_CONFIG_DIR or ~/.claude)" placeholder:"DIR"`
	HookBinary string   `help:"Executable compiled hooks run (default: this binary)" placeholder:"PATH"`
	Host       string   `help:"Interface to listen on" default:"0.0.0.0" env:"HOTLINE_HOST"`
	Origins    []string `help:"Extra browser origin patterns trusted by the API and websocket, e.g. app.example:* or * (localhost is always trusted)" placeholder:"PATTERN"`
	Port       int      `help:"Port to listen on" default:"3001" env:"HOTLINE_PORT"`
	ProjectDir string   `help:"Project whose .claude/settings.json is the project target (default: repository root of the working directory)" placeholder:"DIR"`
	StaticDir  string   `help:"Directory with the built web UI" env:"HOTLINE_STATIC_DIR" placeholder:"DIR"`
}

// Run starts the server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	container, err := cli.Local(ContainerOptions{
		ClaudeDir:      s.ClaudeDir,
		HookBinary:     s.HookBinary,
		OriginPatterns: s.Origins,
		ProjectDir:     s.ProjectDir,
		ServerURL:      advertisedURL(s.Host, s.Port),
	})
	if err != nil {
		return err
	}

	server := httpapi.NewServer(httpapi.Deps{
		HookConfig: container.HookConfigService,
		Hub:        container.Hub,
		Ledger:     container.LedgerService,
		Sounds:     container.SoundService,
	}, httpapi.Options{
		StaticDir: s.StaticDir,
		Version:   cli.version,
	})

	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "%s %s\n", theme.AppNameStyle.Render("hotline"), theme.VersionStyle.Render(cli.version))
	fmt.Fprintf(stdout, "%s %s\n", theme.LabelStyle.Render("API:     "), "http://"+displayHost(s.Host, s.Port)+"/api")
	fmt.Fprintf(stdout, "%s %s\n", theme.LabelStyle.Render("Realtime:"), "ws://"+displayHost(s.Host, s.Port)+"/ws")
	fmt.Fprintf(stdout, "%s %s\n", theme.LabelStyle.Render("Data:    "), config.GetHotlineHome())
	if s.StaticDir != "" {
		fmt.Fprintf(stdout, "%s %s\n", theme.LabelStyle.Render("Web UI:  "), s.StaticDir)
	}

	logging.Logger.Info("Starting server", "addr", addr, "static_dir", s.StaticDir)
	return server.Run(ctx, ln)
}

// applySettings fills flags left at their defaults from settings.json,
// unless the matching environment variable is set
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if s.Host == defaultHost {
		if _, hasEnv := os.LookupEnv("HOTLINE_HOST"); !hasEnv && settings.Host != "" {
			s.Host = settings.Host
		}
	}
	if s.Port == config.DefaultPort {
		if _, hasEnv := os.LookupEnv("HOTLINE_PORT"); !hasEnv && settings.Port != nil {
			s.Port = *settings.Port
		}
	}
	if s.StaticDir == "" {
		s.StaticDir = settings.StaticDir
	}
	if s.ClaudeDir == "" {
		s.ClaudeDir = settings.ClaudeDir
	}
	if s.HookBinary == "" {
		s.HookBinary = settings.HookBinary
	}
}

// advertisedURL is the address hooks use to reach this server. It is ""
// when that is the default, so compiled commands stay short.
func advertisedURL(host string, port int) string {
	url := "http://" + displayHost(host, port)
	if url == config.DefaultServerURL {
		return ""
	}
	return url
}

// displayHost maps wildcard listen addresses onto localhost
func displayHost(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::", "[::]":
		host = "localhost"
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
