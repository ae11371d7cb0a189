package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/theme"
)

// LogsCmd groups the event log commands
type LogsCmd struct {
	List  LogsListCmd  `cmd:"list" help:"List recorded events, newest first" default:"1"`
	Clear LogsClearCmd `cmd:"clear" help:"Delete every recorded event"`
	Watch LogsWatchCmd `cmd:"watch" help:"Browse events live in an interactive viewer"`
}

// LogsListCmd lists ledger entries
type LogsListCmd struct {
	Format    string `help:"Output format" enum:"table,json,csv" default:"table" short:"f"`
	HookType  string `help:"Only events of this hook type" short:"t"`
	Keyword   string `help:"Case-insensitive match on message or tool name" short:"k"`
	Limit     int    `help:"Maximum number of events" default:"100" short:"l"`
	Offset    int    `help:"Number of events to skip"`
	SessionID string `help:"Only events of this session" short:"s"`
}

func (l *LogsListCmd) filter() (domain.LogFilter, error) {
	filter := domain.LogFilter{
		Keyword:   l.Keyword,
		Limit:     l.Limit,
		Offset:    l.Offset,
		SessionID: l.SessionID,
	}
	if l.HookType != "" {
		hookType, err := domain.ParseHookType(l.HookType)
		if err != nil {
			return filter, err
		}
		filter.HookType = hookType
	}
	return filter, nil
}

// Run executes the list command
func (l *LogsListCmd) Run(cli *CLI) error {
	filter, err := l.filter()
	if err != nil {
		return err
	}
	client, err := cli.Client()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if l.Format == "csv" {
		return client.ExportLogs(ctx, filter, stdout)
	}

	entries, err := client.Logs(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if l.Format == "json" {
		if entries == nil {
			entries = []domain.LogEntry{}
		}
		return printJSON(entries)
	}

	renderLogTable(entries)
	return nil
}

func renderLogTable(entries []domain.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(stdout, theme.MutedStyle.Render("No events found."))
		return
	}

	t := newTable("ID", "WHEN", "HOOK TYPE", "TOOL", "SESSION", "MESSAGE")
	for _, e := range entries {
		t.Row(
			fmt.Sprintf("%d", e.ID),
			relativeTime(e.Timestamp),
			theme.HookTypeStyle(e.HookType).Render(string(e.HookType)),
			e.ToolNameOr("-"),
			shortSessionID(e.SessionID),
			truncate(e.MessageOr("-"), 60),
		)
	}
	fmt.Fprintln(stdout, t.String())
	fmt.Fprintln(stdout, theme.MutedStyle.Render(humanize.Comma(int64(len(entries)))+" events"))
}

// LogsClearCmd deletes all ledger entries
type LogsClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the clear command
func (l *LogsClearCmd) Run(cli *CLI) error {
	if !l.Yes {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to clear without confirmation; pass --yes")
		}
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete every recorded event?").
					Description("Connected listeners are told to clear their view. This cannot be undone.").
					Value(&confirmed).
					Affirmative("Delete").
					Negative("Keep"),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(stdout, theme.MutedStyle.Render("Nothing deleted."))
			return nil
		}
	}

	client, err := cli.Client()
	if err != nil {
		return err
	}
	deleted, err := client.ClearLogs(context.Background())
	if err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	success("Deleted %s events", humanize.Comma(deleted))
	return nil
}
