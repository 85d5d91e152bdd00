// Package ui renders the scaffolder's terminal output: status lines,
// the framework banner, and the final next-steps block. Styling degrades
// to plain text when stdout is not a terminal or NO_COLOR is set.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand colors shared with the wizard theme.
const (
	ColorPrimary = "#38BDF8"
	ColorSuccess = "#34D399"
	ColorWarning = "#FBBF24"
	ColorError   = "#F87171"
	ColorMuted   = "#94A3B8"
)

// Theme bundles the lipgloss styles used for terminal output.
type Theme struct {
	NoColor bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// NewTheme creates a Theme. Colors are disabled when noColor is true.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Success, t.Warning, t.Error, t.Muted, t.Accent = plain, plain, plain, plain, plain, plain
		return t
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))
	return t
}

// DetectNoColor reports whether styled output should be disabled:
// NO_COLOR set, or stdout not attached to a terminal.
func DetectNoColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
