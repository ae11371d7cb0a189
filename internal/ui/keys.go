package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/hotline/internal/theme"
)

// KeyDefinition defines the metadata for a key binding.
// AllKeyDefinitions is the single source of truth for names, defaults and help.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all key bindings of the event viewer
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit viewer"},

	// Filter keys
	{Name: "clear_filter", Defaults: []string{"esc"}, Help: "clear hook type and keyword filters"},
	{Name: "filter", Defaults: []string{"/"}, Help: "search message and tool name", TipFormat: "press %s to search messages and tool names"},
	{Name: "next_hook_type", Defaults: []string{"tab"}, Help: "next hook type filter", TipFormat: "press %s to show a single hook type"},
	{Name: "prev_hook_type", Defaults: []string{"shift+tab"}, Help: "previous hook type filter"},

	// Log actions
	{Name: "clear_logs", Defaults: []string{"C"}, Help: "clear all events", TipFormat: "press %s to clear the event log"},
	{Name: "export", Defaults: []string{"e"}, Help: "export visible events as CSV", TipFormat: "press %s to export the filtered events as CSV"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "reload events from the server"},
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	for i := range AllKeyDefinitions {
		if AllKeyDefinitions[i].Name == name {
			return &AllKeyDefinitions[i]
		}
	}
	return nil
}

// KeyWithTip wraps a key.Binding with an optional tip shown in the footer
type KeyWithTip struct {
	Binding key.Binding
	Tip     Tip
}

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// Render formats a tip with highlighted keys and muted text
func (t Tip) Render() string {
	if t.Format == "" {
		return ""
	}
	parts := strings.Split(t.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(t.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(t.Keys[i]))
		}
	}
	return b.String()
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// KeyMap contains all keyboard shortcuts of the viewer
type KeyMap struct {
	ClearFilter  KeyWithTip
	ClearLogs    KeyWithTip
	Export       KeyWithTip
	Filter       KeyWithTip
	ForceQuit    KeyWithTip
	Help         KeyWithTip
	NextHookType KeyWithTip
	PrevHookType KeyWithTip
	Quit         KeyWithTip
	Refresh      KeyWithTip
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		ClearFilter:  buildBinding("clear_filter"),
		ClearLogs:    buildBinding("clear_logs"),
		Export:       buildBinding("export"),
		Filter:       buildBinding("filter"),
		ForceQuit:    buildBinding("force_quit"),
		Help:         buildBinding("help"),
		NextHookType: buildBinding("next_hook_type"),
		PrevHookType: buildBinding("prev_hook_type"),
		Quit:         buildBinding("quit"),
		Refresh:      buildBinding("refresh"),
	}
}

// Tips returns the tips of every binding that has one, in definition order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, b := range []KeyWithTip{k.Help, k.Filter, k.NextHookType, k.ClearLogs, k.Export} {
		if b.Tip.Format != "" {
			tips = append(tips, b.Tip)
		}
	}
	return tips
}

// buildBinding creates a KeyWithTip from its definition
func buildBinding(name string) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(def.Defaults...),
			key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
		),
	}
	if def.TipFormat != "" {
		result.Tip = Tip{Format: def.TipFormat, Keys: def.Defaults[:1]}
	}
	return result
}
