package hookconfig

import (
	"fmt"
	"strings"

	"github.com/renato0307/hotline/internal/domain"
)

// CommandBuilder renders the logging command the agent runs for a hook type
type CommandBuilder func(hookType domain.HookType) string

// CompileOptions controls how the consumer document is rendered
type CompileOptions struct {
	Command CommandBuilder
}

// Compile renders the consumer "hooks" document: one rule per enabled entry,
// each running the logging command only. Sounds and notifications are not
// compiled; listeners resolve them when the logged event reaches them.
// Hook types without an enabled entry are left out.
func Compile(cfg domain.HookConfig, opts CompileOptions) domain.ConsumerDocument {
	command := opts.Command
	if command == nil {
		command = DefaultCommand("hotline", "")
	}

	doc := make(domain.ConsumerDocument)
	for _, hookType := range domain.AllHookTypes() {
		var rules []domain.ConsumerRule
		for _, entry := range cfg[hookType] {
			if !entry.Enabled {
				continue
			}

			timeout := entry.TimeoutSeconds
			if timeout == 0 {
				timeout = domain.DefaultTimeoutSeconds
			}

			rule := domain.ConsumerRule{
				Hooks: []domain.CommandHook{{
					Type:    "command",
					Command: command(hookType),
					Timeout: domain.ClampTimeout(timeout),
				}},
			}
			if hookType.SupportsMatcher() && entry.Matcher != "" {
				rule.Matcher = entry.Matcher
			}
			rules = append(rules, rule)
		}
		if len(rules) > 0 {
			doc[hookType] = rules
		}
	}
	return doc
}

// DefaultCommand builds commands that pipe the hook payload into
// `hotline log`, which forwards it to the server at serverURL.
func DefaultCommand(binary, serverURL string) CommandBuilder {
	return func(hookType domain.HookType) string {
		args := []string{shellQuote(binary), "log"}
		if serverURL != "" {
			args = append(args, "--server", shellQuote(serverURL))
		}
		args = append(args, "--hook-type", string(hookType))
		return strings.Join(args, " ")
	}
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?[]{}!#~") {
		return s
	}
	return fmt.Sprintf("'%s'", strings.ReplaceAll(s, "'", `'\''`))
}
