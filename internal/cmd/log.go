package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/tidwall/gjson"

	"github.com/renato0307/hotline/internal/adapters/apiclient"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
)

const (
	// defaultHookMessage is recorded when the payload carries no message
	defaultHookMessage = "Hook triggered"
	maxHookPayload     = 1 << 20
	logTimeout         = 5 * time.Second
)

// LogCmd records one hook event. The agent runs it with the hook payload on
// stdin; explicit flags win over payload fields.
type LogCmd struct {
	HookType  string `help:"Hook type of the event" required:"" enum:"PreToolUse,PostToolUse,Notification,Stop,SubagentStop,PreCompact"`
	Message   string `help:"Message to record (default: payload message)"`
	SessionID string `help:"Agent session id (default: payload session_id)"`
	ToolName  string `help:"Tool name (default: payload tool_name)"`

	stdin io.Reader `kong:"-"`
}

// hookPayload holds the fields read from the agent's hook JSON
type hookPayload struct {
	Message   string
	SessionID string
	ToolName  string
}

// parseHookPayload extracts the ledger fields from the agent's hook JSON.
// Invalid JSON yields an empty payload.
func parseHookPayload(data []byte) hookPayload {
	if !gjson.ValidBytes(data) {
		return hookPayload{}
	}
	fields := gjson.GetManyBytes(data, "session_id", "tool_name", "message")
	return hookPayload{
		SessionID: fields[0].String(),
		ToolName:  fields[1].String(),
		Message:   fields[2].String(),
	}
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	hookType, err := domain.ParseHookType(l.HookType)
	if err != nil {
		return err
	}

	payload := l.readPayload()
	input := domain.LogInput{
		HookType:  hookType,
		SessionID: firstNonEmpty(l.SessionID, payload.SessionID),
	}
	if tool := firstNonEmpty(l.ToolName, payload.ToolName); tool != "" {
		input.ToolName = &tool
	}
	message := firstNonEmpty(l.Message, payload.Message, defaultHookMessage)
	input.Message = &message

	logging.Logger.Info("Hook event",
		"hook_type", hookType,
		"session_id", input.SessionID,
		"tool_name", input.ToolName,
		"pid", os.Getpid(),
		"ppid", os.Getppid())

	ctx, cancel := context.WithTimeout(context.Background(), logTimeout)
	defer cancel()

	client, err := cli.Client()
	if err != nil {
		return err
	}
	entry, err := client.RecordLog(ctx, input)
	if err == nil {
		logging.Logger.Debug("Hook event recorded", "id", entry.ID)
		return nil
	}
	if !apiclient.IsUnreachable(err) {
		return fmt.Errorf("failed to record hook event: %w", err)
	}

	// No server: keep the event in the local ledger, nobody is listening
	logging.Logger.Warn("Server unreachable, recording locally", "server", client.BaseURL(), "error", err)
	container, err := cli.Local(ContainerOptions{})
	if err != nil {
		return err
	}
	entry, err = container.LedgerService.Record(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to record hook event: %w", err)
	}
	logging.Logger.Debug("Hook event recorded locally", "id", entry.ID)
	return nil
}

// readPayload reads the hook JSON when stdin is piped
func (l *LogCmd) readPayload() hookPayload {
	in := l.stdin
	if in == nil {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return hookPayload{}
		}
		in = os.Stdin
	}

	data, err := io.ReadAll(io.LimitReader(in, maxHookPayload))
	if err != nil {
		logging.Logger.Warn("Failed to read hook payload", "error", err)
		return hookPayload{}
	}
	return parseHookPayload(data)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
