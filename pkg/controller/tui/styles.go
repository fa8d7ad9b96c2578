package tui

import "github.com/charmbracelet/lipgloss"

var (
	blurple = lipgloss.Color("#5865F2")
	red     = lipgloss.Color("#DC2626")
	green   = lipgloss.Color("#16A34A")
	muted   = lipgloss.Color("#6B7280")
	text    = lipgloss.Color("#E5E7EB")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(blurple).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(blurple).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(blurple).
			Padding(0, 1)

	activeVariantStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(blurple).
				Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(12)

	focusedLabelStyle = labelStyle.
				Foreground(blurple).
				Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blurple).
			Padding(1, 3)

	valueStyle = lipgloss.NewStyle().Foreground(text)
)

// swatch renders a small block in hex, or nothing when hex is not a color
func swatch(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
