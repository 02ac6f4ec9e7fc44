// Package color provides color detection and theming for CLI output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Enabled reports whether color output should be used.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
func Enabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits int
}

// Theme holds lipgloss styles for profile listings.
type Theme struct {
	OK       lipgloss.Style
	Missing  lipgloss.Style
	Skip     lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		Missing:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Skip:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
