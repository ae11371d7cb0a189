package cmd

import (
	"context"
	"fmt"
)

// TestHookCmd records a synthetic Notification event so listeners can be
// checked end to end
type TestHookCmd struct{}

// Run executes the test-hook command
func (t *TestHookCmd) Run(cli *CLI) error {
	client, err := cli.Client()
	if err != nil {
		return err
	}
	entry, err := client.TestHook(context.Background())
	if err != nil {
		return fmt.Errorf("failed to trigger test hook: %w", err)
	}
	success("Recorded test event %d", entry.ID)
	fmt.Fprintln(stdout, logLine(entry))
	return nil
}
