// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vexlabs/vex-tui/internal/ui/styles"
)

// Welcome renders the empty-state screen shown when no chat is selected.
type Welcome struct {
	version   string
	modelName string
	width     int
	height    int
	theme     *styles.Theme
}

// NewWelcome creates the welcome screen.
func NewWelcome(theme *styles.Theme, version, modelName string) Welcome {
	return Welcome{theme: theme, version: version, modelName: modelName}
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// SetTheme swaps the theme.
func (w *Welcome) SetTheme(theme *styles.Theme) {
	w.theme = theme
}

// View renders the centered welcome block.
func (w *Welcome) View() string {
	var b strings.Builder
	b.WriteString(w.theme.WelcomeTitle.Render("VEX AI"))
	b.WriteString("  ")
	b.WriteString(w.theme.WelcomeHint.Render(w.version))
	b.WriteString("\n\n")
	b.WriteString(w.theme.WelcomeHint.Render("model: " + w.modelName))
	b.WriteString("\n\n")
	for _, line := range []string{
		"ctrl+n  new chat",
		"ctrl+b  toggle sidebar",
		"/help   all commands",
	} {
		b.WriteString(w.theme.WelcomeHint.Render(line))
		b.WriteString("\n")
	}

	if w.width > 0 && w.height > 0 {
		return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}
