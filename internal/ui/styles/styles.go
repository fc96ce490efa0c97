// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package styles provides the visual styling system for the vex TUI.
// A Theme is built from the user's theme setting rather than terminal
// detection, so switching themes at runtime restyles everything.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vexlabs/vex-tui/internal/model"
)

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII-safe markers used in toasts and the status
// bar. Kept plain so they survive limited terminal fonts.
var StatusIndicators = struct {
	Success string
	Error   string
	Warning string
	Info    string
}{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}

// =============================================================================
// THEME
// =============================================================================

// Theme bundles every style the UI draws with, resolved for one color
// scheme.
type Theme struct {
	Name model.Theme

	// Core palette
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Info      lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color

	// Prepared styles
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	Timestamp      lipgloss.Style
	StatusBar      lipgloss.Style
	InputBorder    lipgloss.Style

	SidebarBorder   lipgloss.Style
	SidebarTitle    lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style
	SidebarPreview  lipgloss.Style

	WelcomeTitle lipgloss.Style
	WelcomeHint  lipgloss.Style
}

// ForSettings resolves the theme for the user's current settings. The
// system theme follows the terminal's detected background.
func ForSettings(s model.UserSettings) *Theme {
	switch s.Theme {
	case model.ThemeLight:
		return lightTheme()
	case model.ThemeSystem:
		if !termenv.HasDarkBackground() {
			return lightTheme()
		}
		return darkTheme()
	default:
		return darkTheme()
	}
}

func darkTheme() *Theme {
	t := &Theme{
		Name:      model.ThemeDark,
		Accent:    lipgloss.Color("#A78BFA"),
		Success:   lipgloss.Color("#34D399"),
		Warning:   lipgloss.Color("#FBBF24"),
		Danger:    lipgloss.Color("#FB7185"),
		Info:      lipgloss.Color("#22D3EE"),
		Text:      lipgloss.Color("#CDD6F4"),
		TextMuted: lipgloss.Color("#6C7086"),
		Surface:   lipgloss.Color("#181825"),
		Border:    lipgloss.Color("#45475A"),
	}
	t.build()
	return t
}

func lightTheme() *Theme {
	t := &Theme{
		Name:      model.ThemeLight,
		Accent:    lipgloss.Color("#7C3AED"),
		Success:   lipgloss.Color("#059669"),
		Warning:   lipgloss.Color("#D97706"),
		Danger:    lipgloss.Color("#E11D48"),
		Info:      lipgloss.Color("#0891B2"),
		Text:      lipgloss.Color("#1F2937"),
		TextMuted: lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#F5F5F5"),
		Border:    lipgloss.Color("#D4D4D4"),
	}
	t.build()
	return t
}

func (t *Theme) build() {
	t.UserLabel = lipgloss.NewStyle().Foreground(t.Info).Bold(true)
	t.AssistantLabel = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Timestamp = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	t.SidebarBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(t.Border)
	t.SidebarTitle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.SidebarItem = lipgloss.NewStyle().Foreground(t.Text)
	t.SidebarSelected = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.SidebarPreview = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.WelcomeTitle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.WelcomeHint = lipgloss.NewStyle().Foreground(t.TextMuted)
}

// ToastColor returns the accent color for a toast kind name.
func (t *Theme) ToastColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return t.Success
	case "warning":
		return t.Warning
	case "error":
		return t.Danger
	case "info":
		return t.Info
	default:
		return t.Accent
	}
}

// ToastIcon returns the status marker for a toast kind name.
func ToastIcon(kind string) string {
	switch kind {
	case "success":
		return StatusIndicators.Success
	case "warning":
		return StatusIndicators.Warning
	case "error":
		return StatusIndicators.Error
	case "info":
		return StatusIndicators.Info
	default:
		return StatusIndicators.Info
	}
}
