package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/theme"
)

// stdout is where command output goes; tests swap it
var stdout io.Writer = os.Stdout

// printJSON writes v as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

// newTable returns a borderless table styled like the rest of the CLI
func newTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(theme.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeaderStyle
			}
			return theme.TableCellStyle
		})
}

// relativeTime renders t as "3 minutes ago", with the absolute time for
// anything older than a day
func relativeTime(t time.Time) string {
	if time.Since(t) > 24*time.Hour {
		return t.Local().Format("2006-01-02 15:04:05")
	}
	return humanize.Time(t)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}

func shortSessionID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// logLine renders one ledger entry as a single live line
func logLine(entry domain.LogEntry) string {
	parts := []string{
		theme.MutedStyle.Render(entry.Timestamp.Local().Format("15:04:05")),
		theme.HookTypeStyle(entry.HookType).Render(fmt.Sprintf("%-13s", entry.HookType)),
	}
	if entry.ToolName != nil {
		parts = append(parts, theme.LabelStyle.Render(*entry.ToolName))
	}
	if entry.Message != nil {
		parts = append(parts, theme.NormalStyle.Render(truncate(*entry.Message, 80)))
	}
	if entry.SessionID != "" {
		parts = append(parts, theme.MutedStyle.Render("["+shortSessionID(entry.SessionID)+"]"))
	}
	return strings.Join(parts, " ")
}

func success(format string, args ...any) {
	fmt.Fprintln(stdout, theme.SuccessStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}
