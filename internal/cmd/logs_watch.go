package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hotline/internal/adapters/apiclient"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ui"
)

// LogsWatchCmd opens the live event viewer
type LogsWatchCmd struct {
	ExportDir string `help:"Directory for CSV exports (default: current directory)" type:"path"`
	HookType  string `help:"Start filtered to this hook type" short:"t"`
	Keyword   string `help:"Start filtered to this keyword" short:"k"`
	Limit     int    `help:"Maximum number of events kept on screen" default:"100" short:"l"`
	SessionID string `help:"Only events of this session" short:"s"`
}

// Run executes the watch command
func (w *LogsWatchCmd) Run(cli *CLI) error {
	opts := ui.Options{
		ExportDir: w.ExportDir,
		Keyword:   w.Keyword,
		Limit:     w.Limit,
		SessionID: w.SessionID,
	}
	if w.HookType != "" {
		hookType, err := domain.ParseHookType(w.HookType)
		if err != nil {
			return err
		}
		opts.HookType = hookType
	}

	client, err := cli.Client()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		ui.NewModel(ctx, client, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Listen(gctx, func(_ context.Context, msg domain.Message) {
			p.Send(ui.EventMsg{Message: msg})
		}, apiclient.ListenOptions{
			OnConnect: func() { p.Send(ui.ConnectedMsg{}) },
			OnDisconnect: func(err error, retryIn time.Duration) {
				p.Send(ui.DisconnectedMsg{Err: err, RetryIn: retryIn})
			},
		})
	})
	g.Go(func() error {
		// Leaving the viewer stops the listener
		defer cancel()
		logging.Logger.Info("Starting event viewer", "server", client.BaseURL())
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			logging.Logger.Error("Event viewer error", "error", err)
			return fmt.Errorf("error running viewer: %w", err)
		}
		logging.Logger.Info("Event viewer exited normally")
		return nil
	})
	return g.Wait()
}
