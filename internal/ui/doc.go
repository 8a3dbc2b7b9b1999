// Package ui holds the colour themes shared by the console output and the
// dashboard: ANSI escape sequences for the CLI and lipgloss colours for the
// TUI. Colours are disabled by --no-color or the NO_COLOR variable.
package ui
