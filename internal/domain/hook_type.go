package domain

import "fmt"

// HookType identifies a lifecycle event raised by the coding agent.
// The set is fixed by the agent's settings.json contract.
type HookType string

const (
	HookPreToolUse   HookType = "PreToolUse"
	HookPostToolUse  HookType = "PostToolUse"
	HookNotification HookType = "Notification"
	HookStop         HookType = "Stop"
	HookSubagentStop HookType = "SubagentStop"
	HookPreCompact   HookType = "PreCompact"
)

// AllHookTypes returns every hook type in display order
func AllHookTypes() []HookType {
	return []HookType{
		HookPreToolUse,
		HookPostToolUse,
		HookNotification,
		HookStop,
		HookSubagentStop,
		HookPreCompact,
	}
}

// ParseHookType validates s against the known hook types
func ParseHookType(s string) (HookType, error) {
	for _, t := range AllHookTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHookType, s)
}

// Valid reports whether t is one of the known hook types
func (t HookType) Valid() bool {
	_, err := ParseHookType(string(t))
	return err == nil
}

// SupportsMatcher reports whether the agent honours a tool matcher for t
func (t HookType) SupportsMatcher() bool {
	return t == HookPreToolUse || t == HookPostToolUse
}

// Description returns the human readable explanation shown in listings
func (t HookType) Description() string {
	switch t {
	case HookPreToolUse:
		return "Runs before tool execution"
	case HookPostToolUse:
		return "Runs after tool execution"
	case HookNotification:
		return "Runs on agent notifications"
	case HookStop:
		return "Runs when the agent stops responding"
	case HookSubagentStop:
		return "Runs when a subagent stops"
	case HookPreCompact:
		return "Runs before context compaction"
	default:
		return ""
	}
}
