package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/fabricctl/internal/fabric"
)

var (
	// Ok: green
	okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AF78E"))

	// Warning: light yellow, shared with warning notes
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE763"))

	// Error: light red/pink
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4473"))

	// Verbose notes are dimmed
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	labelStyle = lipgloss.NewStyle().Bold(true)
)

// healthCell colors a health state for table output.
func healthCell(h fabric.HealthState) string {
	switch h {
	case fabric.HealthStateOk:
		return okStyle.Render(string(h))
	case fabric.HealthStateWarning:
		return warningStyle.Render(string(h))
	case fabric.HealthStateError:
		return errorStyle.Render(string(h))
	case "":
		return "-"
	}
	return string(h)
}
