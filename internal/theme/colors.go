package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Hook type colors
const (
	ColorNotification Color = "214" // Orange - needs attention
	ColorPostToolUse  Color = "2"   // Green - tool finished
	ColorPreCompact   Color = "141" // Purple
	ColorPreToolUse   Color = "33"  // Blue - tool about to run
	ColorStop         Color = "3"   // Yellow - agent idle
	ColorSubagentStop Color = "178" // Gold
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "46"  // Bright green
	ColorVersion   Color = "240" // Dark gray
)
