package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: vp,
	}
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderShortcut("↑/k ↓/j", "select previous/next event"))
	b.WriteString(renderShortcut("pgup/pgdn", "scroll a page"))
	b.WriteString(renderShortcut("g/G", "jump to newest/oldest"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Filters") + "\n")
	b.WriteString(renderBinding(keys.Filter.Binding))
	b.WriteString(renderBinding(keys.NextHookType.Binding))
	b.WriteString(renderBinding(keys.PrevHookType.Binding))
	b.WriteString(renderBinding(keys.ClearFilter.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Events") + "\n")
	b.WriteString(renderBinding(keys.Refresh.Binding))
	b.WriteString(renderBinding(keys.Export.Binding))
	b.WriteString(renderBinding(keys.ClearLogs.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Help.Binding))
	b.WriteString(renderBinding(keys.Quit.Binding))
	b.WriteString(renderBinding(keys.ForceQuit.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Hook types") + "\n")
	for _, hookType := range domain.AllHookTypes() {
		b.WriteString(theme.HookTypeStyle(hookType).Width(14).Render(string(hookType)) +
			theme.HelpDescStyle.Render(hookType.Description()) + "\n")
	}

	return b.String()
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-2, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Quit.Binding, h.keys.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
