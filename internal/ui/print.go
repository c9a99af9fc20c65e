// Package ui holds terminal output helpers for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// Header prints a bold section header.
func Header(w io.Writer, text string) {
	fmt.Fprintln(w, headerStyle.Render(text))
}

// CategoryLine prints a category label.
func CategoryLine(w io.Writer, name string) {
	fmt.Fprintln(w, categoryStyle.Render(name)+":")
}

// HintLine prints one edge-case hint as a bullet.
func HintLine(w io.Writer, hint string) {
	fmt.Fprintln(w, "  "+hintStyle.Render("•")+" "+hint)
}
