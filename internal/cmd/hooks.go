package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
	"github.com/renato0307/hotline/internal/theme"
)

// HooksCmd groups the hook configuration commands
type HooksCmd struct {
	Config HooksConfigCmd `cmd:"config" help:"Show the hook rules (sounds, notifications, matchers)" default:"1"`
	Show   HooksShowCmd   `cmd:"show" help:"Show the hooks currently in the agent's settings.json"`
	Add    HooksAddCmd    `cmd:"add" help:"Add a disabled rule to a hook type"`
	Remove HooksRemoveCmd `cmd:"remove" help:"Remove a rule"`
	Set    HooksSetCmd    `cmd:"set" help:"Change one field of a rule"`
	Apply  HooksApplyCmd  `cmd:"apply" help:"Write the enabled rules into the agent's settings.json"`
}

// HooksConfigCmd prints the UI hook configuration
type HooksConfigCmd struct {
	Format string `help:"Output format" enum:"table,json" default:"table" short:"f"`
}

// Run executes the config command
func (h *HooksConfigCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	cfg, err := client.HookConfig(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load hook config: %w", err)
	}

	if h.Format == "json" {
		data, err := hookconfig.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	t := newTable("HOOK TYPE", "#", "ENABLED", "SOUNDS", "NOTIFY", "TIMEOUT", "MATCHER")
	for _, hookType := range domain.AllHookTypes() {
		entries, ok := cfg[hookType]
		if !ok {
			continue
		}
		if len(entries) == 0 {
			t.Row(theme.HookTypeStyle(hookType).Render(string(hookType)), "-", "", "", "", "", "")
			continue
		}
		for i, entry := range entries {
			t.Row(entryRow(hookType, i, entry)...)
		}
	}
	fmt.Fprintln(stdout, t.String())
	return nil
}

func entryRow(hookType domain.HookType, index int, entry domain.HookEntry) []string {
	sounds := strings.Join(entry.AvailableSounds(), ", ")
	if sounds == "" {
		sounds = "-"
	}
	matcher := "-"
	if hookType.SupportsMatcher() && entry.Matcher != "" {
		matcher = entry.Matcher
	}
	return []string{
		theme.HookTypeStyle(hookType).Render(string(hookType)),
		strconv.Itoa(index),
		yesNo(entry.Enabled),
		sounds,
		yesNo(entry.Notifications),
		fmt.Sprintf("%ds", entry.TimeoutSeconds),
		matcher,
	}
}

func yesNo(b bool) string {
	if b {
		return theme.SuccessStyle.Render("yes")
	}
	return theme.MutedStyle.Render("no")
}

// HooksShowCmd prints the agent's compiled hooks
type HooksShowCmd struct {
	Format string `help:"Output format" enum:"table,json" default:"table" short:"f"`
	Target string `help:"Which settings.json to read" enum:"global,project" default:"global"`
}

// Run executes the show command
func (h *HooksShowCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	rsp, err := client.ConsumerHooks(context.Background(), domain.ConfigTarget(h.Target))
	if err != nil {
		return fmt.Errorf("failed to read agent hooks: %w", err)
	}

	if h.Format == "json" {
		return printJSON(rsp.Hooks)
	}
	renderConsumerDocument(rsp.Hooks)
	return nil
}

func renderConsumerDocument(doc domain.ConsumerDocument) {
	if len(doc) == 0 {
		fmt.Fprintln(stdout, theme.MutedStyle.Render("No hooks configured."))
		return
	}

	t := newTable("HOOK TYPE", "MATCHER", "COMMAND", "TIMEOUT")
	for _, hookType := range domain.AllHookTypes() {
		for _, rule := range doc[hookType] {
			matcher := rule.Matcher
			if matcher == "" {
				matcher = "-"
			}
			for _, hook := range rule.Hooks {
				timeout := "-"
				if hook.Timeout > 0 {
					timeout = fmt.Sprintf("%ds", hook.Timeout)
				}
				t.Row(theme.HookTypeStyle(hookType).Render(string(hookType)), matcher, hook.Command, timeout)
			}
		}
	}
	fmt.Fprintln(stdout, t.String())
}

// HooksAddCmd appends an entry
type HooksAddCmd struct {
	HookType string `arg:"" help:"Hook type"`
}

// Run executes the add command
func (h *HooksAddCmd) Run(cli *CLI) error {
	hookType, err := domain.ParseHookType(h.HookType)
	if err != nil {
		return err
	}
	client, err := cli.Client()
	if err != nil {
		return err
	}
	entries, err := client.AddEntry(context.Background(), hookType)
	if err != nil {
		return fmt.Errorf("failed to add rule: %w", err)
	}
	success("Added rule %d to %s (disabled)", len(entries)-1, hookType)
	return nil
}

// HooksRemoveCmd drops an entry
type HooksRemoveCmd struct {
	HookType string `arg:"" help:"Hook type"`
	Index    int    `arg:"" help:"Rule index (see 'hotline hooks config')"`
}

// Run executes the remove command
func (h *HooksRemoveCmd) Run(cli *CLI) error {
	hookType, err := domain.ParseHookType(h.HookType)
	if err != nil {
		return err
	}
	client, err := cli.Client()
	if err != nil {
		return err
	}
	entries, err := client.RemoveEntry(context.Background(), hookType, h.Index)
	if err != nil {
		return fmt.Errorf("failed to remove rule: %w", err)
	}
	success("%s now has %d rules", hookType, len(entries))
	return nil
}

// HooksSetCmd changes one field of an entry
type HooksSetCmd struct {
	HookType string `arg:"" help:"Hook type"`
	Index    int    `arg:"" help:"Rule index (see 'hotline hooks config')"`
	Field    string `arg:"" help:"enabled, notifications, sounds, timeoutSeconds or matcher"`
	Value    string `arg:"" help:"New value; sounds are comma separated (a.mp3,,b.wav)"`
}

// Run executes the set command
func (h *HooksSetCmd) Run(cli *CLI) error {
	hookType, err := domain.ParseHookType(h.HookType)
	if err != nil {
		return err
	}
	field, err := hookconfig.ParseField(h.Field)
	if err != nil {
		return err
	}
	value, err := hookconfig.ParseFieldValue(field, h.Value)
	if err != nil {
		return err
	}

	client, err := cli.Client()
	if err != nil {
		return err
	}
	entries, err := client.UpdateField(context.Background(), hookType, h.Index, field, value)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	if h.Index < 0 || h.Index >= len(entries) {
		return fmt.Errorf("%s has no rule %d", hookType, h.Index)
	}

	t := newTable("HOOK TYPE", "#", "ENABLED", "SOUNDS", "NOTIFY", "TIMEOUT", "MATCHER")
	t.Row(entryRow(hookType, h.Index, entries[h.Index])...)
	fmt.Fprintln(stdout, t.String())
	return nil
}

// HooksApplyCmd compiles the rules into the agent's settings.json
type HooksApplyCmd struct {
	Target string `help:"Which settings.json to write" enum:"global,project" default:"global"`
}

// Run executes the apply command
func (h *HooksApplyCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	rsp, err := client.ApplyHooks(context.Background(), domain.ConfigTarget(h.Target))
	if err != nil {
		return fmt.Errorf("failed to apply hooks: %w", err)
	}

	success("Wrote %d hook types to %s", len(rsp.Hooks), rsp.Path)
	renderConsumerDocument(rsp.Hooks)
	return nil
}
