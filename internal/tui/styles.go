package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecount/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	accentStyle     lipgloss.Style
	sequentialStyle lipgloss.Style
	parallelStyle   lipgloss.Style
	barStyle        lipgloss.Style
	barEmptyStyle   lipgloss.Style
	successStyle    lipgloss.Style
	warningStyle    lipgloss.Style
	errorStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	accentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	sequentialStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Sequential)
	parallelStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Parallel)
	barStyle = lipgloss.NewStyle().Foreground(t.Accent)
	barEmptyStyle = lipgloss.NewStyle().Foreground(t.Dim)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
}
