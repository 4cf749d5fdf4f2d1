package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int
	hints string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{
		hints: "q:quit a:add d:delete j/k:nav",
	}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetHints replaces the key hints shown in the bar
func (sb *StatusBar) SetHints(hints string) {
	sb.hints = hints
}

// View renders the status bar
func (sb *StatusBar) View() string {
	hints := sb.hints

	// Truncate if too long
	if len(hints) > sb.width-2 && sb.width > 5 {
		hints = hints[:sb.width-5] + "..."
	}

	return statusBarStyle.Width(sb.width).Render(hints)
}
