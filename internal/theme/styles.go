package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/hotline/internal/domain"
)

// Main CLI styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				Padding(0, 1)
)

// AlertStyle frames the terminal fallback for notifications
var AlertStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorNotification).
	Padding(0, 1)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

var hookTypeColors = map[domain.HookType]Color{
	domain.HookNotification: ColorNotification,
	domain.HookPostToolUse:  ColorPostToolUse,
	domain.HookPreCompact:   ColorPreCompact,
	domain.HookPreToolUse:   ColorPreToolUse,
	domain.HookStop:         ColorStop,
	domain.HookSubagentStop: ColorSubagentStop,
}

// HookTypeStyle returns the style used to render a hook type name
func HookTypeStyle(hookType domain.HookType) lipgloss.Style {
	color, ok := hookTypeColors[hookType]
	if !ok {
		color = ColorNormal
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Interactive viewer styles
var (
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(ColorNotification).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Width(14)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	OfflineStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
