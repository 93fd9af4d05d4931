package cmd

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#7C3AED") // Purple
	secondary = lipgloss.Color("#10B981") // Green
	muted     = lipgloss.Color("#6B7280") // Gray
	warning   = lipgloss.Color("#F59E0B") // Amber
	danger    = lipgloss.Color("#EF4444") // Red

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	successStyle = lipgloss.NewStyle().
			Foreground(secondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	dirtyBadge = lipgloss.NewStyle().
			Foreground(warning).
			Bold(true).
			Render("dirty")

	cleanBadge = lipgloss.NewStyle().
			Foreground(secondary).
			Render("clean")
)

func badge(dirty bool) string {
	if dirty {
		return dirtyBadge
	}
	return cleanBadge
}
