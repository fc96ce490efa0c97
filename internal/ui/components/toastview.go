// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package components provides the building blocks of the vex TUI:
// toast rendering, the sidebar, and the welcome screen.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vexlabs/vex-tui/internal/toast"
	"github.com/vexlabs/vex-tui/internal/ui/styles"
)

// RenderToast renders a single toast notification box.
func RenderToast(t toast.Toast, theme *styles.Theme, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 24 {
		maxWidth = 24
	}

	kind := t.Kind.String()
	accent := theme.ToastColor(kind)
	icon := styles.ToastIcon(kind)

	iconStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	messageStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(maxWidth - 8)

	content := iconStyle.Render(icon+" ") + messageStyle.Render(t.Message)
	if t.Description != "" {
		descStyle := lipgloss.NewStyle().Foreground(theme.TextMuted).Width(maxWidth - 8)
		content += "\n" + descStyle.Render(t.Description)
	}

	box := lipgloss.NewStyle().
		Background(theme.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		MaxWidth(maxWidth)

	return box.Render(content)
}

// RenderToastStack renders the visible toasts stacked in the bottom-right
// corner, newest at the top of the stack.
func RenderToastStack(toasts []toast.Toast, theme *styles.Theme, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(t, theme, width))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	positioned := lipgloss.NewStyle().
		MarginRight(2).
		MarginBottom(1).
		Render(stack)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, positioned)
	}
	return positioned
}
